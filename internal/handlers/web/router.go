// Package web serves the game to browsers as JSON over HTTP
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vadim010975/retro-tactics/internal/engine"
	"github.com/vadim010975/retro-tactics/internal/errors"
	"github.com/vadim010975/retro-tactics/internal/orchestrators/game"
)

// Config holds dependencies for the HTTP gateway
type Config struct {
	GameService game.Service
	// AllowOrigin is sent as Access-Control-Allow-Origin when set
	AllowOrigin string
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

type gateway struct {
	games game.Service
}

type cellRequest struct {
	Index *int `json:"index" binding:"required"`
}

type newGameRequest struct {
	GameID string `json:"game_id"`
}

type gameResponse struct {
	GameID   string        `json:"game_id"`
	Action   string        `json:"action,omitempty"`
	View     *engine.View  `json:"view,omitempty"`
	Frames   []game.Frame  `json:"frames,omitempty"`
	Messages []string      `json:"messages,omitempty"`
	Hover    *engine.Hover `json:"hover,omitempty"`
	SavedAt  *time.Time    `json:"saved_at,omitempty"`
}

// NewRouter builds the gin engine with every game route
func NewRouter(cfg *Config) (*gin.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &gateway{games: cfg.GameService}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	if cfg.AllowOrigin != "" {
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.AllowOrigin)
			c.Next()
		})
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/games")
	{
		api.POST("", g.newGame)
		api.GET("/:id", g.getState)
		api.POST("/:id/new", g.newGame)
		api.POST("/:id/click", g.click)
		api.POST("/:id/commit", g.commit)
		api.POST("/:id/enter", g.enter)
		api.POST("/:id/leave", g.leave)
		api.POST("/:id/save", g.save)
		api.POST("/:id/load", g.load)
	}

	return r, nil
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (g *gateway) newGame(c *gin.Context) {
	req := newGameRequest{GameID: c.Param("id")}
	if req.GameID == "" && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, errors.InvalidArgument(err.Error()))
			return
		}
	}

	out, err := g.games.NewGame(c.Request.Context(), &game.NewGameInput{GameID: req.GameID})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gameResponse{
		GameID:   out.GameID,
		View:     out.View,
		Frames:   out.Frames,
		Messages: out.Messages,
	})
}

func (g *gateway) getState(c *gin.Context) {
	out, err := g.games.GetState(c.Request.Context(), &game.GetStateInput{GameID: c.Param("id")})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gameResponse{GameID: c.Param("id"), View: out.View, Messages: out.Messages})
}

func (g *gateway) click(c *gin.Context) {
	index, ok := bindCell(c)
	if !ok {
		return
	}

	out, err := g.games.Click(c.Request.Context(), &game.ClickInput{GameID: c.Param("id"), Index: index})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gameResponse{
		GameID:   c.Param("id"),
		Action:   string(out.Action),
		View:     out.View,
		Frames:   out.Frames,
		Messages: out.Messages,
	})
}

func (g *gateway) commit(c *gin.Context) {
	index, ok := bindCell(c)
	if !ok {
		return
	}

	out, err := g.games.Commit(c.Request.Context(), &game.CommitInput{GameID: c.Param("id"), Index: index})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gameResponse{
		GameID:   c.Param("id"),
		View:     out.View,
		Frames:   out.Frames,
		Messages: out.Messages,
	})
}

func (g *gateway) enter(c *gin.Context) {
	g.hover(c, g.games.Enter)
}

func (g *gateway) leave(c *gin.Context) {
	g.hover(c, g.games.Leave)
}

func (g *gateway) hover(c *gin.Context, call func(ctx context.Context, input *game.HoverInput) (*game.HoverOutput, error)) {
	index, ok := bindCell(c)
	if !ok {
		return
	}

	out, err := call(c.Request.Context(), &game.HoverInput{GameID: c.Param("id"), Index: index})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gameResponse{GameID: c.Param("id"), Hover: &out.Hover})
}

func (g *gateway) save(c *gin.Context) {
	out, err := g.games.Save(c.Request.Context(), &game.SaveInput{GameID: c.Param("id")})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gameResponse{GameID: c.Param("id"), SavedAt: &out.SavedAt})
}

func (g *gateway) load(c *gin.Context) {
	out, err := g.games.Load(c.Request.Context(), &game.LoadInput{GameID: c.Param("id")})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gameResponse{
		GameID:   c.Param("id"),
		View:     out.View,
		Frames:   out.Frames,
		Messages: out.Messages,
		SavedAt:  &out.SavedAt,
	})
}

func bindCell(c *gin.Context) (int, bool) {
	var req cellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, errors.InvalidArgument("body must be {\"index\": <cell>}"))
		return 0, false
	}
	return *req.Index, true
}

// fail writes err with the HTTP status of its code
func fail(c *gin.Context, err error) {
	code := errors.GetCode(err)
	body := gin.H{
		"code":  code,
		"error": errors.GetMessage(err),
	}
	if meta := errors.GetMeta(err); len(meta) > 0 {
		body["meta"] = meta
	}
	if code == errors.CodeInternal {
		slog.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(code.HTTPStatus(), body)
}
