package cli

import (
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-viewer/internal/tui"
)

const browseCmdName = "browse"

func newBrowseCmd(a *app) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   browseCmdName,
		Short: "Browse players interactively",
		Long: `Browse opens the terminal player list.

Keys: j/k or arrows move, enter opens the player, t opens the player's team,
r refreshes, R retries a failed load, esc goes back, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vm, closeSession, err := a.newSession(search)
			if err != nil {
				return err
			}
			defer closeSession()
			return tui.Run(cmd.Context(), vm, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "only list players whose name matches")
	return cmd
}
