package cmd

import (
	"github.com/spf13/cobra"

	"github.com/they4kman/sweeper/game"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [DIFFICULTY]",
	Short: "Show the scoreboard",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		keeper, release, err := openKeeper(logger)
		if err != nil {
			return err
		}
		defer release()

		difficulties := game.Difficulties
		if len(args) == 1 {
			difficulty, err := game.LookupDifficulty(args[0])
			if err != nil {
				return err
			}
			difficulties = []game.Difficulty{difficulty}
		}

		for _, difficulty := range difficulties {
			renderScores(cmd.OutOrStdout(), difficulty.Name, keeper.Top(difficulty.Name))
		}
		return nil
	},
}
