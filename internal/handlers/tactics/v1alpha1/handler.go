// Package v1alpha1 handles the tactics game gRPC service interface
package v1alpha1

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vadim010975/retro-tactics/internal/engine"
	"github.com/vadim010975/retro-tactics/internal/errors"
	"github.com/vadim010975/retro-tactics/internal/orchestrators/game"
)

// Request fields
const (
	FieldGameID = "game_id"
	FieldIndex  = "index"
)

// HandlerConfig holds dependencies for the game handler
type HandlerConfig struct {
	GameService game.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

// Handler implements the tactics game gRPC service
type Handler struct {
	UnimplementedGameServiceServer
	gameService game.Service
}

var _ GameServiceServer = (*Handler)(nil)

// NewHandler creates a new game handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		gameService: cfg.GameService,
	}, nil
}

// Response is the document every method answers with. Empty parts are
// left out.
type Response struct {
	GameID   string        `json:"game_id,omitempty"`
	Action   string        `json:"action,omitempty"`
	View     *engine.View  `json:"view,omitempty"`
	Frames   []game.Frame  `json:"frames,omitempty"`
	Messages []string      `json:"messages,omitempty"`
	Hover    *engine.Hover `json:"hover,omitempty"`
	SavedAt  string        `json:"saved_at,omitempty"`
}

// NewGame starts or restarts a game. game_id is optional.
func (h *Handler) NewGame(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.gameService.NewGame(ctx, &game.NewGameInput{
		GameID: stringField(req, FieldGameID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return encode(&Response{
		GameID:   output.GameID,
		View:     output.View,
		Frames:   output.Frames,
		Messages: output.Messages,
	})
}

// Click activates a cell
func (h *Handler) Click(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	gameID, index, err := cellRequest(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.gameService.Click(ctx, &game.ClickInput{GameID: gameID, Index: index})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return encode(&Response{
		GameID:   gameID,
		Action:   string(output.Action),
		View:     output.View,
		Frames:   output.Frames,
		Messages: output.Messages,
	})
}

// Commit makes the selected character attack the enemy on a cell every turn
func (h *Handler) Commit(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	gameID, index, err := cellRequest(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.gameService.Commit(ctx, &game.CommitInput{GameID: gameID, Index: index})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return encode(&Response{
		GameID:   gameID,
		View:     output.View,
		Frames:   output.Frames,
		Messages: output.Messages,
	})
}

// Enter describes the hovered cell
func (h *Handler) Enter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.hover(ctx, req, h.gameService.Enter)
}

// Leave clears the hover of a cell
func (h *Handler) Leave(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.hover(ctx, req, h.gameService.Leave)
}

func (h *Handler) hover(
	ctx context.Context,
	req *structpb.Struct,
	call func(context.Context, *game.HoverInput) (*game.HoverOutput, error),
) (*structpb.Struct, error) {
	gameID, index, err := cellRequest(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := call(ctx, &game.HoverInput{GameID: gameID, Index: index})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return encode(&Response{GameID: gameID, Hover: &output.Hover})
}

// Save stores a snapshot of a game
func (h *Handler) Save(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	gameID, err := requiredGameID(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.gameService.Save(ctx, &game.SaveInput{GameID: gameID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return encode(&Response{GameID: gameID, SavedAt: formatTime(output.SavedAt)})
}

// Load replaces a game with its saved snapshot
func (h *Handler) Load(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	gameID, err := requiredGameID(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.gameService.Load(ctx, &game.LoadInput{GameID: gameID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return encode(&Response{
		GameID:   gameID,
		View:     output.View,
		Frames:   output.Frames,
		Messages: output.Messages,
		SavedAt:  formatTime(output.SavedAt),
	})
}

// GetState returns the board and recent messages of a game
func (h *Handler) GetState(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	gameID, err := requiredGameID(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.gameService.GetState(ctx, &game.GetStateInput{GameID: gameID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return encode(&Response{GameID: gameID, View: output.View, Messages: output.Messages})
}

func stringField(req *structpb.Struct, name string) string {
	if req == nil {
		return ""
	}
	return strings.TrimSpace(req.GetFields()[name].GetStringValue())
}

func requiredGameID(req *structpb.Struct) (string, error) {
	gameID := stringField(req, FieldGameID)
	if gameID == "" {
		return "", errors.InvalidArgument("game_id is required")
	}
	return gameID, nil
}

func cellRequest(req *structpb.Struct) (string, int, error) {
	gameID, err := requiredGameID(req)
	if err != nil {
		return "", 0, err
	}

	v, ok := req.GetFields()[FieldIndex]
	if !ok {
		return "", 0, errors.InvalidArgument("index is required")
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > math.MaxInt32 {
		return "", 0, errors.InvalidArgument("index must be an integer")
	}
	return gameID, int(n.NumberValue), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// encode converts resp into a Struct through its JSON form
func encode(resp *Response) (*structpb.Struct, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}

	out, err := structpb.NewStruct(payload)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return out, nil
}
