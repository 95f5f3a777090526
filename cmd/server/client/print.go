package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"
)

type printedCharacter struct {
	Character struct {
		ID        int     `json:"id"`
		Archetype string  `json:"archetype"`
		Level     int     `json:"level"`
		Attack    float64 `json:"attack"`
		Defence   float64 `json:"defence"`
		Health    float64 `json:"health"`
	} `json:"character"`
	Position int `json:"position"`
}

type printedResponse struct {
	GameID  string `json:"game_id"`
	Action  string `json:"action"`
	SavedAt string `json:"saved_at"`
	View    *struct {
		Round    int                `json:"round"`
		Score    float64            `json:"score"`
		MaxScore float64            `json:"max_score"`
		Theme    string             `json:"theme"`
		Phase    string             `json:"phase"`
		Own      []printedCharacter `json:"own"`
		Enemy    []printedCharacter `json:"enemy"`
		Selected *int               `json:"selected"`
	} `json:"view"`
	Hover *struct {
		Index   int    `json:"index"`
		Tooltip string `json:"tooltip"`
		Cursor  string `json:"cursor"`
		Color   string `json:"color"`
	} `json:"hover"`
	Messages []string `json:"messages"`
}

func printResponse(resp *structpb.Struct) error {
	data, err := json.Marshal(resp.AsMap())
	if err != nil {
		return err
	}
	var r printedResponse
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("unexpected response: %w", err)
	}

	fmt.Printf("Game: %s\n", r.GameID)
	if r.Action != "" {
		fmt.Printf("Action: %s\n", r.Action)
	}
	if r.SavedAt != "" {
		fmt.Printf("Saved at: %s\n", r.SavedAt)
	}
	if v := r.View; v != nil {
		fmt.Printf("Round %d  score %g  best %g  theme %s  phase %s\n\n", v.Round, v.Score, v.MaxScore, v.Theme, v.Phase)
		fmt.Print(drawBoard(v.Own, v.Enemy, v.Selected))
		fmt.Println()
		for _, pc := range append(append([]printedCharacter(nil), v.Own...), v.Enemy...) {
			c := pc.Character
			fmt.Printf("  cell %2d  %-9s #%d  lvl %d  atk %g  def %g  hp %g\n",
				pc.Position, c.Archetype, c.ID, c.Level, c.Attack, c.Defence, c.Health)
		}
	}
	if h := r.Hover; h != nil {
		fmt.Printf("Cell %d: cursor %s", h.Index, h.Cursor)
		if h.Color != "" {
			fmt.Printf(", %s", h.Color)
		}
		if h.Tooltip != "" {
			fmt.Printf(", %s", h.Tooltip)
		}
		fmt.Println()
	}
	for _, m := range r.Messages {
		fmt.Printf("> %s\n", m)
	}
	return nil
}

// drawBoard marks own characters in upper case and enemies in lower case
func drawBoard(own, enemy []printedCharacter, selected *int) string {
	cells := make([]string, boardSize*boardSize)
	for i := range cells {
		cells[i] = "."
	}
	mark := func(list []printedCharacter, upper bool) {
		for _, pc := range list {
			if pc.Position < 0 || pc.Position >= len(cells) || pc.Character.Archetype == "" {
				continue
			}
			letter := pc.Character.Archetype[:1]
			if upper {
				letter = strings.ToUpper(letter)
			}
			cells[pc.Position] = letter
		}
	}
	mark(own, true)
	mark(enemy, false)
	if selected != nil && *selected >= 0 && *selected < len(cells) {
		cells[*selected] = "[" + cells[*selected] + "]"
	}

	var b strings.Builder
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			fmt.Fprintf(&b, "%4s", cells[row*boardSize+col])
		}
		b.WriteString("\n")
	}
	return b.String()
}
