package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	playersapp "github.com/preston-bernstein/nba-viewer/internal/app/players"
	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-viewer/internal/paging"
)

const tabPadding = 2

func newPlayersCmd(a *app) *cobra.Command {
	var (
		pages  int
		search string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Print the first pages of players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pages < 1 {
				return fmt.Errorf("--pages must be at least 1, got %d", pages)
			}
			vm, closeSession, err := a.newSession(search)
			if err != nil {
				return err
			}
			defer closeSession()

			list := collectPages(cmd, vm.Players, pages)
			snap := vm.Players.Snapshot()
			if err := loadError(snap); err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), playersapp.NewItems(list))
			}
			return printPlayers(cmd, list)
		},
	}
	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to print")
	cmd.Flags().StringVar(&search, "search", "", "only list players whose name matches")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

// collectPages ranges the pager lazily and stops at the last item of page n so no
// extra page is requested.
func collectPages(cmd *cobra.Command, pager *paging.Pager[int, players.Player], n int) []players.Player {
	var out []players.Player
	for p := range pager.All(cmd.Context()) {
		out = append(out, p)
		st := pager.State()
		if len(st.Pages) >= n && len(out) >= itemsInFirst(st.Pages, n) {
			break
		}
	}
	return out
}

func itemsInFirst(pages []paging.Page[int, players.Player], n int) int {
	total := 0
	for _, p := range pages[:min(n, len(pages))] {
		total += len(p.Items)
	}
	return total
}

func loadError(snap paging.Snapshot[players.Player]) error {
	return errors.Join(snap.Refresh.Err, snap.Append.Err)
}

func printPlayers(cmd *cobra.Command, list []players.Player) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tPosition\tTeam")
	fmt.Fprintln(w, "--\t----\t--------\t----")
	for _, p := range list {
		item := playersapp.NewItem(p)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", item.ID, p.FullName(), item.Position, item.Team)
	}
	return w.Flush()
}
