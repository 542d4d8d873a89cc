package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-viewer/internal/domain/teams"
)

// ListRequest records the arguments of a ListPlayers call.
type ListRequest struct {
	Page    int
	PerPage int
	Search  string
}

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Pages      map[int]players.Page // keyed by page number
	PageErrs   map[int]error        // keyed by page number
	Page       players.Page         // fallback when Pages has no entry
	Player     players.Player
	Team       teams.Team
	PlayerFunc func(id int) (players.Player, error)
	TeamFunc   func(id int) (teams.Team, error)
	Err        error
	Block      chan struct{} // calls wait until closed or ctx done
	Notify     chan struct{} // closed on first call

	ListCalls   atomic.Int32
	PlayerCalls atomic.Int32
	TeamCalls   atomic.Int32

	mu       sync.Mutex
	requests []ListRequest
}

// ListPlayers returns the configured page for the requested page number.
func (s *StubProvider) ListPlayers(ctx context.Context, page, perPage int, search string) (players.Page, error) {
	s.ListCalls.Add(1)
	s.mu.Lock()
	s.requests = append(s.requests, ListRequest{Page: page, PerPage: perPage, Search: search})
	s.mu.Unlock()
	s.notify()
	if err := s.wait(ctx); err != nil {
		return players.Page{}, err
	}
	if err, ok := s.PageErrs[page]; ok && err != nil {
		return players.Page{}, err
	}
	if s.Err != nil {
		return players.Page{}, s.Err
	}
	if p, ok := s.Pages[page]; ok {
		return p, nil
	}
	return s.Page, nil
}

// GetPlayer returns the configured player or delegates to PlayerFunc.
func (s *StubProvider) GetPlayer(ctx context.Context, id int) (players.Player, error) {
	s.PlayerCalls.Add(1)
	s.notify()
	if err := s.wait(ctx); err != nil {
		return players.Player{}, err
	}
	if s.PlayerFunc != nil {
		return s.PlayerFunc(id)
	}
	return s.Player, s.Err
}

// GetTeam returns the configured team or delegates to TeamFunc.
func (s *StubProvider) GetTeam(ctx context.Context, id int) (teams.Team, error) {
	s.TeamCalls.Add(1)
	s.notify()
	if err := s.wait(ctx); err != nil {
		return teams.Team{}, err
	}
	if s.TeamFunc != nil {
		return s.TeamFunc(id)
	}
	return s.Team, s.Err
}

// ListRequests returns a copy of the recorded ListPlayers arguments.
func (s *StubProvider) ListRequests() []ListRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ListRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *StubProvider) wait(ctx context.Context) error {
	if s.Block == nil {
		return nil
	}
	select {
	case <-s.Block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *StubProvider) notify() {
	if s.Notify == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.Notify:
	default:
		close(s.Notify)
	}
}

// PageOf builds a page with players for the given ids and an optional next page.
func PageOf(current int, next *int, ids ...int) players.Page {
	items := make([]players.Player, 0, len(ids))
	for _, id := range ids {
		items = append(items, players.Player{ID: id})
	}
	return players.Page{
		Players: items,
		Meta: players.PageMeta{
			CurrentPage: current,
			NextPage:    next,
			PerPage:     35,
		},
	}
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
