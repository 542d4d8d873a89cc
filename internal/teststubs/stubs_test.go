package teststubs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
)

func TestStubProviderServesPagesByNumber(t *testing.T) {
	s := &StubProvider{
		Pages:    map[int]players.Page{1: PageOf(1, IntPtr(2), 1, 2)},
		PageErrs: map[int]error{2: errors.New("boom")},
	}

	p, err := s.ListPlayers(context.Background(), 1, 35, "")
	if err != nil || len(p.Players) != 2 {
		t.Fatalf("expected page 1, got %+v err=%v", p, err)
	}
	if _, err := s.ListPlayers(context.Background(), 2, 35, "q"); err == nil {
		t.Fatal("expected page 2 error")
	}
	reqs := s.ListRequests()
	if len(reqs) != 2 || reqs[1].Search != "q" || reqs[0].PerPage != 35 {
		t.Fatalf("unexpected requests %+v", reqs)
	}
}

func TestStubProviderBlockHonorsContext(t *testing.T) {
	s := &StubProvider{Block: make(chan struct{})}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	if _, err := s.GetTeam(ctx, 1); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestStubProviderNotifyClosesOnce(t *testing.T) {
	s := &StubProvider{Notify: make(chan struct{})}
	_, _ = s.GetPlayer(context.Background(), 1)
	_, _ = s.GetPlayer(context.Background(), 2)

	select {
	case <-s.Notify:
	default:
		t.Fatal("expected notify channel closed")
	}
}
