package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	playersapp "github.com/preston-bernstein/nba-viewer/internal/app/players"
	"github.com/preston-bernstein/nba-viewer/internal/detail"
	"github.com/preston-bernstein/nba-viewer/internal/paging"
)

// View renders the current screen.
func (m Model) View() string {
	switch m.screen {
	case ScreenPlayer:
		return m.renderPlayer()
	case ScreenTeam:
		return m.renderTeam()
	default:
		return m.renderList()
	}
}

func (m Model) renderList() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("NBA Players"))
	b.WriteString("\n")

	items := m.snap.Items
	switch {
	case len(items) == 0 && m.snap.Refresh.Status == paging.StatusLoading:
		b.WriteString(fmt.Sprintf(" %s Loading players...\n", m.spinner.View()))
	case len(items) == 0 && m.snap.Refresh.Status != paging.StatusError:
		b.WriteString(MutedStyle.Render("No players loaded."))
		b.WriteString("\n")
	}

	end := min(m.offset+m.visibleRows(), len(items))
	for i := m.offset; i < end; i++ {
		p := items[i]
		row := fmt.Sprintf("%-5d %-26s %-4s %s",
			p.ID,
			truncate(p.FullName(), 26),
			p.Position,
			p.Team.Abbreviation,
		)
		if i == m.cursor {
			b.WriteString(SelectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderListStatus())
	b.WriteString("\n")
	b.WriteString(m.renderHelp(m.keys.listHelp()))
	return b.String()
}

func (m Model) renderListStatus() string {
	s := m.snap
	switch {
	case s.Refresh.Status == paging.StatusError:
		return CriticalStyle.Render(fmt.Sprintf("Refresh failed: %v (R to retry)", s.Refresh.Err))
	case s.Append.Status == paging.StatusError:
		return CriticalStyle.Render(fmt.Sprintf("Loading more failed: %v (R to retry)", s.Append.Err))
	case s.Append.Status == paging.StatusLoading:
		return fmt.Sprintf("%s Loading more...", m.spinner.View())
	case s.Refresh.Status == paging.StatusLoading && len(s.Items) > 0:
		return fmt.Sprintf("%s Refreshing...", m.spinner.View())
	case s.Append.EndOfPagination:
		return MutedStyle.Render(fmt.Sprintf("%d players, end of list", len(s.Items)))
	default:
		return MutedStyle.Render(fmt.Sprintf("%d players", len(s.Items)))
	}
}

func (m Model) renderPlayer() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Player"))
	b.WriteString("\n")

	slot := m.player
	switch {
	case slot.Kind == detail.SlotEmpty || slot.ID != m.wantPlayer:
		b.WriteString(fmt.Sprintf(" %s Loading player...\n", m.spinner.View()))
	case slot.Kind == detail.SlotError:
		b.WriteString(CriticalStyle.Render(fmt.Sprintf("Could not load player %d: %v", slot.ID, slot.Err)))
		b.WriteString("\n")
	case slot.Kind == detail.SlotLoaded:
		d := slot.Value
		body := lipgloss.JoinVertical(lipgloss.Left,
			HeaderStyle.Render(d.FullName()),
			field("Position", d.Position),
			field("Height", height(d.HeightFeet, d.HeightInches)),
			field("Weight", withUnit(d.WeightPounds, "lb")),
			field("Team", d.Team),
			field("Image", MutedStyle.Render(m.vm.Details.PlayerDetailImageURL())),
		)
		b.WriteString(BoxStyle.Width(m.boxWidth()).Render(body))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp(m.keys.playerHelp()))
	return b.String()
}

func (m Model) renderTeam() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Team"))
	b.WriteString("\n")

	slot := m.team
	switch {
	case slot.Kind == detail.SlotEmpty || slot.ID != m.wantTeam:
		b.WriteString(fmt.Sprintf(" %s Loading team...\n", m.spinner.View()))
	case slot.Kind == detail.SlotError:
		b.WriteString(CriticalStyle.Render(fmt.Sprintf("Could not load team %d: %v", slot.ID, slot.Err)))
		b.WriteString("\n")
	case slot.Kind == detail.SlotLoaded:
		d := slot.Value
		body := lipgloss.JoinVertical(lipgloss.Left,
			HeaderStyle.Render(d.FullName),
			field("Abbrev", d.Abbreviation),
			field("City", d.City),
			field("Conference", d.Conference),
			field("Division", d.Division),
			field("Image", MutedStyle.Render(m.vm.Details.TeamDetailImageURL())),
		)
		b.WriteString(BoxStyle.Width(m.boxWidth()).Render(body))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp(m.keys.teamHelp()))
	return b.String()
}

func (m Model) renderHelp(bindings []key.Binding) string {
	return m.help.ShortHelpView(bindings)
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, 72), 20)
}

// height joins feet and inches, dropping the unit of any part that is Unknown.
func height(feet, inches string) string {
	if feet == playersapp.Unknown && inches == playersapp.Unknown {
		return playersapp.Unknown
	}
	return withUnit(feet, "ft") + " " + withUnit(inches, "in")
}

func withUnit(v, unit string) string {
	if v == playersapp.Unknown {
		return v
	}
	return v + " " + unit
}

func field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), ValueStyle.Render(value))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
