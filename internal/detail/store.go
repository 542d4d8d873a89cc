package detail

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	playersapp "github.com/preston-bernstein/nba-viewer/internal/app/players"
	teamsapp "github.com/preston-bernstein/nba-viewer/internal/app/teams"
	"github.com/preston-bernstein/nba-viewer/internal/providers"
	"github.com/preston-bernstein/nba-viewer/internal/state"
)

// ErrClosed marks lookups rejected because the store was closed.
var ErrClosed = errors.New("detail store closed")

// tracked pairs a slot cell with a request counter. Only the result of the most
// recently started request may write the cell, and starting a request cancels the
// one it replaces.
type tracked[T any] struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	cell   *state.Cell[Slot[T]]
}

func newTracked[T any]() *tracked[T] {
	return &tracked[T]{cell: state.New(Slot[T]{})}
}

func (t *tracked[T]) begin(parent context.Context) (uint64, context.Context) {
	ctx, cancel := context.WithCancel(parent)
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
	t.seq++
	t.cancel = cancel
	return t.seq, ctx
}

// invalidate cancels the current request and makes every outstanding token stale.
func (t *tracked[T]) invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.seq++
}

func (t *tracked[T]) finish(token uint64, s Slot[T]) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if token != t.seq {
		return false
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.cell.Set(s)
	return true
}

// Store fetches player and team details off the caller's goroutine and exposes the
// latest outcome of each as an observable slot.
type Store struct {
	players providers.PlayerProvider
	teams   providers.TeamProvider
	opts    options

	pool   *ants.Pool
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool

	player *tracked[playersapp.Detail]
	team   *tracked[teamsapp.Detail]
}

// NewStore builds a store with empty slots.
func NewStore(playerProvider providers.PlayerProvider, teamProvider providers.TeamProvider, opts ...Option) (*Store, error) {
	o := options{
		poolSize:       defaultPoolSize,
		playerImageURL: DefaultPlayerImageURL,
		teamImageURL:   DefaultTeamImageURL,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.poolSize < minPoolSize {
		o.poolSize = minPoolSize
	}

	pool, err := ants.NewPool(o.poolSize)
	if err != nil {
		return nil, fmt.Errorf("create detail worker pool: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Store{
		players: playerProvider,
		teams:   teamProvider,
		opts:    o,
		pool:    pool,
		ctx:     ctx,
		cancel:  cancel,
		player:  newTracked[playersapp.Detail](),
		team:    newTracked[teamsapp.Detail](),
	}, nil
}

// LoadPlayer starts a lookup for player id and returns once it is scheduled. The player
// slot becomes Loaded on success or Error on any failure, unless a newer LoadPlayer
// started first. Starting a lookup cancels the one it replaces.
func (s *Store) LoadPlayer(id int) {
	token, ctx := s.player.begin(s.ctx)
	s.submit(SlotPlayer, func() {
		if s.players == nil {
			s.player.finish(token, failed[playersapp.Detail](id, providers.ErrProviderUnavailable))
			return
		}
		start := time.Now()
		p, err := s.players.GetPlayer(ctx, id)
		s.observe(SlotPlayer, start, err)
		if err != nil {
			s.player.finish(token, failed[playersapp.Detail](id, err))
			return
		}
		s.player.finish(token, loaded(id, playersapp.NewDetail(p)))
	}, func(err error) {
		s.player.finish(token, failed[playersapp.Detail](id, err))
	})
}

// LoadTeam starts a lookup for team id; see LoadPlayer.
func (s *Store) LoadTeam(id int) {
	token, ctx := s.team.begin(s.ctx)
	s.submit(SlotTeam, func() {
		if s.teams == nil {
			s.team.finish(token, failed[teamsapp.Detail](id, providers.ErrProviderUnavailable))
			return
		}
		start := time.Now()
		t, err := s.teams.GetTeam(ctx, id)
		s.observe(SlotTeam, start, err)
		if err != nil {
			s.team.finish(token, failed[teamsapp.Detail](id, err))
			return
		}
		s.team.finish(token, loaded(id, teamsapp.NewDetail(t)))
	}, func(err error) {
		s.team.finish(token, failed[teamsapp.Detail](id, err))
	})
}

// Player returns the current player slot.
func (s *Store) Player() Slot[playersapp.Detail] { return s.player.cell.Get() }

// Team returns the current team slot.
func (s *Store) Team() Slot[teamsapp.Detail] { return s.team.cell.Get() }

// SubscribePlayer streams the player slot, starting with its current value.
func (s *Store) SubscribePlayer(ctx context.Context) <-chan Slot[playersapp.Detail] {
	return s.player.cell.Subscribe(ctx)
}

// SubscribeTeam streams the team slot, starting with its current value.
func (s *Store) SubscribeTeam(ctx context.Context) <-chan Slot[teamsapp.Detail] {
	return s.team.cell.Subscribe(ctx)
}

// PlayerDetailImageURL returns the configured player header image.
func (s *Store) PlayerDetailImageURL() string { return s.opts.playerImageURL }

// TeamDetailImageURL returns the configured team header image.
func (s *Store) TeamDetailImageURL() string { return s.opts.teamImageURL }

// Wait blocks until every lookup started so far has settled.
func (s *Store) Wait() { s.wg.Wait() }

// Close cancels outstanding lookups, waits for them to return and releases the pool.
// Results arriving after Close never reach the slots.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.player.invalidate()
	s.team.invalidate()
	s.cancel()
	s.wg.Wait()
	s.pool.Release()
	s.player.cell.Close()
	s.team.cell.Close()
}

// submit blocks while every worker is busy. Replaced lookups are cancelled, so a
// busy pool drains as soon as their providers return.
func (s *Store) submit(slot string, task func(), reject func(error)) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return
	}
	s.wg.Add(1)
	s.mu.RUnlock()

	err := s.pool.Submit(func() {
		defer s.wg.Done()
		task()
	})
	if err != nil {
		s.wg.Done()
		if errors.Is(err, ants.ErrPoolClosed) {
			err = ErrClosed
		}
		s.observe(slot, time.Now(), err)
		reject(fmt.Errorf("schedule %s lookup: %w", slot, err))
	}
}

func (s *Store) observe(slot string, start time.Time, err error) {
	if s.opts.hook != nil {
		s.opts.hook(slot, time.Since(start), err)
	}
}
