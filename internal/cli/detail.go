package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	playersapp "github.com/preston-bernstein/nba-viewer/internal/app/players"
	teamsapp "github.com/preston-bernstein/nba-viewer/internal/app/teams"
	"github.com/preston-bernstein/nba-viewer/internal/detail"
)

func newPlayerCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "player ID",
		Short: "Show one player's detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			vm, closeSession, err := a.newSession("")
			if err != nil {
				return err
			}
			defer closeSession()

			vm.Details.LoadPlayer(id)
			vm.Details.Wait()
			slot := vm.Details.Player()
			if slot.Kind == detail.SlotError {
				return fmt.Errorf("player %d: %w", id, slot.Err)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), slot.Value)
			}
			return printPlayer(cmd.OutOrStdout(), slot.Value, vm.Details.PlayerDetailImageURL())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newTeamCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "team ID",
		Short: "Show one team's detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			vm, closeSession, err := a.newSession("")
			if err != nil {
				return err
			}
			defer closeSession()

			vm.Details.LoadTeam(id)
			vm.Details.Wait()
			slot := vm.Details.Team()
			if slot.Kind == detail.SlotError {
				return fmt.Errorf("team %d: %w", id, slot.Err)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), slot.Value)
			}
			return printTeam(cmd.OutOrStdout(), slot.Value, vm.Details.TeamDetailImageURL())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", raw)
	}
	return id, nil
}

func printPlayer(out io.Writer, d playersapp.Detail, image string) error {
	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", d.FullName())
	fmt.Fprintf(w, "Position:\t%s\n", d.Position)
	fmt.Fprintf(w, "Height:\t%s ft %s in\n", d.HeightFeet, d.HeightInches)
	fmt.Fprintf(w, "Weight:\t%s lb\n", d.WeightPounds)
	fmt.Fprintf(w, "Team:\t%s (%d)\n", d.Team, d.TeamID)
	fmt.Fprintf(w, "Image:\t%s\n", image)
	return w.Flush()
}

func printTeam(out io.Writer, d teamsapp.Detail, image string) error {
	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", d.FullName)
	fmt.Fprintf(w, "Abbreviation:\t%s\n", d.Abbreviation)
	fmt.Fprintf(w, "City:\t%s\n", d.City)
	fmt.Fprintf(w, "Conference:\t%s\n", d.Conference)
	fmt.Fprintf(w, "Division:\t%s\n", d.Division)
	fmt.Fprintf(w, "Image:\t%s\n", image)
	return w.Flush()
}

func writeJSON(out io.Writer, v any) error {
	enc := sonic.ConfigStd.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
