package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var nameCmd = &cobra.Command{
	Use:   "name [NAME]",
	Short: "Show or set the name recorded on the scoreboard",
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

		if len(args) == 1 {
			keeper.SetName(strings.TrimSpace(args[0]))
		}

		name := keeper.Name()
		if name == "" {
			name = "(not set)"
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}
