// Package tui renders the player list and detail views in the terminal.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	playersapp "github.com/preston-bernstein/nba-viewer/internal/app/players"
	teamsapp "github.com/preston-bernstein/nba-viewer/internal/app/teams"
	"github.com/preston-bernstein/nba-viewer/internal/app/viewer"
	"github.com/preston-bernstein/nba-viewer/internal/detail"
	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-viewer/internal/paging"
)

// Screen is the view currently on display.
type Screen int

const (
	ScreenList Screen = iota
	ScreenPlayer
	ScreenTeam
)

// prefetchDistance is how close to the last loaded row the cursor may get before
// the next page is requested.
const prefetchDistance = 5

type snapshotMsg paging.Snapshot[players.Player]

type playerSlotMsg detail.Slot[playersapp.Detail]

type teamSlotMsg detail.Slot[teamsapp.Detail]

// Model is the Bubble Tea model for the browse command.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View.
type Model struct {
	vm  *viewer.ViewModel
	ctx context.Context

	snapshots   <-chan paging.Snapshot[players.Player]
	playerSlots <-chan detail.Slot[playersapp.Detail]
	teamSlots   <-chan detail.Slot[teamsapp.Detail]

	screen Screen
	cursor int
	offset int
	width  int
	height int

	snap   paging.Snapshot[players.Player]
	player detail.Slot[playersapp.Detail]
	team   detail.Slot[teamsapp.Detail]

	// ids last opened on the detail screens
	wantPlayer int
	wantTeam   int

	keys    keyMap
	help    help.Model
	spinner spinner.Model
}

// NewModel subscribes to vm for the lifetime of ctx. Canceling ctx ends the subscriptions.
func NewModel(ctx context.Context, vm *viewer.ViewModel) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SelectedStyle

	return Model{
		vm:          vm,
		ctx:         ctx,
		snapshots:   vm.Players.Subscribe(ctx),
		playerSlots: vm.Details.SubscribePlayer(ctx),
		teamSlots:   vm.Details.SubscribeTeam(ctx),
		width:       defaultWidth,
		height:      defaultHeight,
		keys:        defaultKeys(),
		help:        help.New(),
		spinner:     sp,
	}
}

// Init starts the first page load and the subscription pumps.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.refreshCmd(),
		waitFor(m.snapshots, func(s paging.Snapshot[players.Player]) tea.Msg { return snapshotMsg(s) }),
		waitFor(m.playerSlots, func(s detail.Slot[playersapp.Detail]) tea.Msg { return playerSlotMsg(s) }),
		waitFor(m.teamSlots, func(s detail.Slot[teamsapp.Detail]) tea.Msg { return teamSlotMsg(s) }),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampOffset()
		return m, nil
	case snapshotMsg:
		m.snap = paging.Snapshot[players.Player](msg)
		if m.cursor >= len(m.snap.Items) {
			m.cursor = max(len(m.snap.Items)-1, 0)
		}
		m.clampOffset()
		return m, waitFor(m.snapshots, func(s paging.Snapshot[players.Player]) tea.Msg { return snapshotMsg(s) })
	case playerSlotMsg:
		m.player = detail.Slot[playersapp.Detail](msg)
		return m, waitFor(m.playerSlots, func(s detail.Slot[playersapp.Detail]) tea.Msg { return playerSlotMsg(s) })
	case teamSlotMsg:
		m.team = detail.Slot[teamsapp.Detail](msg)
		return m, waitFor(m.teamSlots, func(s detail.Slot[teamsapp.Detail]) tea.Msg { return teamSlotMsg(s) })
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	switch m.screen {
	case ScreenPlayer:
		return m.handlePlayerKey(msg)
	case ScreenTeam:
		if key.Matches(msg, m.keys.Back) {
			m.screen = ScreenPlayer
		}
		return m, nil
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.clampOffset()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snap.Items)-1 {
			m.cursor++
		}
		m.clampOffset()
		return m, m.prefetchCmd()
	case key.Matches(msg, m.keys.Open):
		if m.cursor >= len(m.snap.Items) {
			return m, nil
		}
		m.wantPlayer = m.snap.Items[m.cursor].ID
		m.vm.Details.LoadPlayer(m.wantPlayer)
		m.screen = ScreenPlayer
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		m.vm.Players.SetAnchor(m.cursor)
		return m, m.refreshCmd()
	case key.Matches(msg, m.keys.Retry):
		return m, m.retryCmd()
	}
	return m, nil
}

func (m Model) handlePlayerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = ScreenList
	case key.Matches(msg, m.keys.Team):
		if m.player.Loaded() && m.player.ID == m.wantPlayer {
			m.wantTeam = m.player.Value.TeamID
			m.vm.Details.LoadTeam(m.wantTeam)
			m.screen = ScreenTeam
		}
	}
	return m, nil
}

// prefetchCmd appends when the cursor nears the end of the loaded rows.
func (m Model) prefetchCmd() tea.Cmd {
	if len(m.snap.Items)-1-m.cursor > prefetchDistance {
		return nil
	}
	a := m.snap.Append
	if a.Status == paging.StatusLoading || a.Status == paging.StatusError || a.EndOfPagination {
		return nil
	}
	return m.loadCmd(m.vm.Players.Append)
}

func (m Model) refreshCmd() tea.Cmd { return m.loadCmd(m.vm.Players.Refresh) }

func (m Model) retryCmd() tea.Cmd { return m.loadCmd(m.vm.Players.Retry) }

// loadCmd runs a pager load off the UI goroutine. Its outcome reaches the model
// through the snapshot subscription, so the command itself yields no message.
func (m Model) loadCmd(load func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		_ = load(ctx)
		return nil
	}
}

// visibleRows is how many list rows fit on screen.
func (m Model) visibleRows() int {
	return max(m.height-chromeLines, 1)
}

func (m *Model) clampOffset() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = max(m.offset, 0)
}

func waitFor[T any](ch <-chan T, wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return wrap(v)
	}
}
