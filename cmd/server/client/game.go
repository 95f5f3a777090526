package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/vadim010975/retro-tactics/internal/handlers/tactics/v1alpha1"
)

var newGameCmd = &cobra.Command{
	Use:   "new-game [game-id]",
	Short: "Start a new game, or restart an existing one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := map[string]any{}
		if len(args) == 1 {
			fields[v1alpha1.FieldGameID] = args[0]
		}
		return call(v1alpha1.GameServiceClient.NewGame, fields)
	},
}

var stateCmd = &cobra.Command{
	Use:   "state [game-id]",
	Short: "Print the board and recent messages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(v1alpha1.GameServiceClient.GetState, map[string]any{v1alpha1.FieldGameID: args[0]})
	},
}

var saveCmd = &cobra.Command{
	Use:   "save [game-id]",
	Short: "Save the game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(v1alpha1.GameServiceClient.Save, map[string]any{v1alpha1.FieldGameID: args[0]})
	},
}

var loadCmd = &cobra.Command{
	Use:   "load [game-id]",
	Short: "Load the saved game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(v1alpha1.GameServiceClient.Load, map[string]any{v1alpha1.FieldGameID: args[0]})
	},
}

func cellCommand(name, short string, method rpc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [game-id] [cell]",
		Short: short,
		Long: fmt.Sprintf(`%s. Cells are numbered row by row from 0. Example:

  %s game_1 10`, short, name),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("cell must be a number: %w", err)
			}
			return call(method, map[string]any{
				v1alpha1.FieldGameID: args[0],
				v1alpha1.FieldIndex:  index,
			})
		},
	}
}
