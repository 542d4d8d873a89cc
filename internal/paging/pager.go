package paging

import (
	"context"
	"errors"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-viewer/internal/state"
)

// ErrClosed is returned by loads started or finished after Close.
var ErrClosed = errors.New("pager closed")

const defaultPageSize = 20

// Pager accumulates pages from a Source into one append-only collection.
// It allows at most one in-flight load per direction and never retries on its own.
type Pager[K comparable, V any] struct {
	source   Source[K, V]
	pageSize int
	hook     LoadHook

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	pages      []Page[K, V]
	items      []V
	anchor     *int
	cursor     int
	generation int
	refreshing bool
	appending  bool
	closed     bool

	out *state.Cell[Snapshot[V]]
}

// New returns an idle pager with no items. Nothing loads until Refresh, Append or All.
func New[K comparable, V any](source Source[K, V], opts ...Option) *Pager[K, V] {
	o := options{pageSize: defaultPageSize}
	for _, opt := range opts {
		opt(&o)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pager[K, V]{
		source:   source,
		pageSize: o.pageSize,
		hook:     o.hook,
		ctx:      ctx,
		cancel:   cancel,
		out:      state.New(Snapshot[V]{}),
	}
}

// Refresh reloads from the source's refresh key. On success the loaded pages and items are
// replaced; on failure they are kept and the refresh status becomes StatusError.
// A refresh already in flight makes this a no-op.
func (p *Pager[K, V]) Refresh(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.refreshing {
		p.mu.Unlock()
		return nil
	}
	key := p.source.RefreshKey(p.stateLocked())
	p.refreshing = true
	p.publishLocked(func(s *Snapshot[V]) {
		s.Refresh = LoadState{Status: StatusLoading}
	})
	p.mu.Unlock()

	page, err := p.load(ctx, LoadParams[K]{Key: key, LoadSize: p.pageSize, Direction: DirectionRefresh})

	p.mu.Lock()
	defer p.mu.Unlock()
	p.refreshing = false
	if p.closed {
		return ErrClosed
	}
	if err != nil {
		p.publishLocked(func(s *Snapshot[V]) {
			s.Refresh = LoadState{Status: StatusError, Err: err}
		})
		return err
	}

	end := page.NextKey == nil
	p.generation++
	p.pages = []Page[K, V]{page}
	p.items = slices.Clone(page.Items)
	p.anchor = nil
	p.cursor = 0
	p.publishLocked(func(s *Snapshot[V]) {
		s.Refresh = LoadState{Status: StatusLoaded, EndOfPagination: end}
		s.Append = LoadState{Status: StatusIdle, EndOfPagination: end}
	})
	return nil
}

// Append loads the page after the last loaded one. Before the first successful refresh it
// refreshes instead. It is a no-op at end of pagination, while a refresh is running, or
// when an append is already in flight.
func (p *Pager[K, V]) Append(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if len(p.pages) == 0 {
		p.mu.Unlock()
		return p.Refresh(ctx)
	}
	last := p.pages[len(p.pages)-1]
	if p.appending || p.refreshing || last.NextKey == nil {
		p.mu.Unlock()
		return nil
	}
	key := *last.NextKey
	gen := p.generation
	p.appending = true
	p.publishLocked(func(s *Snapshot[V]) {
		s.Append = LoadState{Status: StatusLoading}
	})
	p.mu.Unlock()

	page, err := p.load(ctx, LoadParams[K]{Key: &key, LoadSize: p.pageSize, Direction: DirectionAppend})

	p.mu.Lock()
	defer p.mu.Unlock()
	p.appending = false
	if p.closed {
		return ErrClosed
	}
	if gen != p.generation {
		// A refresh replaced the collection while this page was loading.
		return nil
	}
	if err != nil {
		p.publishLocked(func(s *Snapshot[V]) {
			s.Append = LoadState{Status: StatusError, Err: err}
		})
		return err
	}

	p.pages = append(p.pages, page)
	p.items = append(p.items, page.Items...)
	end := page.NextKey == nil
	p.publishLocked(func(s *Snapshot[V]) {
		if end {
			s.Append = LoadState{Status: StatusIdle, EndOfPagination: true}
		} else {
			s.Append = LoadState{Status: StatusLoaded}
		}
	})
	return nil
}

// Retry re-runs whichever direction last failed, refresh first.
func (p *Pager[K, V]) Retry(ctx context.Context) error {
	snap := p.out.Get()
	switch {
	case snap.Refresh.Status == StatusError:
		return p.Refresh(ctx)
	case snap.Append.Status == StatusError:
		return p.Append(ctx)
	}
	return nil
}

// SetAnchor records the index of the item the user is looking at; the next Refresh uses it
// to pick a key near that item.
func (p *Pager[K, V]) SetAnchor(pos int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.anchor = &pos
}

// State returns a copy of the loaded pages and anchor.
func (p *Pager[K, V]) State() State[K, V] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

// Snapshot returns the current items and load statuses.
func (p *Pager[K, V]) Snapshot() Snapshot[V] {
	return p.out.Get()
}

// Subscribe streams snapshots, starting with the current one, until ctx is done or the pager closes.
func (p *Pager[K, V]) Subscribe(ctx context.Context) <-chan Snapshot[V] {
	return p.out.Subscribe(ctx)
}

// All returns the collection as a lazy sequence that appends pages as the consumer reaches
// the end of what is loaded. The cursor is shared: ranging again resumes where the last
// range stopped, it never rewinds. Iteration stops at end of pagination or on a load error.
func (p *Pager[K, V]) All(ctx context.Context) iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			if v, ok := p.next(); ok {
				if !yield(v) {
					return
				}
				continue
			}

			before := p.loadedPages()
			if err := p.Append(ctx); err != nil {
				return
			}
			if p.loadedPages() == before && !p.hasBuffered() {
				return
			}
		}
	}
}

// Close cancels in-flight loads and ends subscriptions. Results arriving later are dropped.
func (p *Pager[K, V]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	p.cancel()
	p.out.Close()
}

func (p *Pager[K, V]) load(ctx context.Context, params LoadParams[K]) (Page[K, V], error) {
	loadCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(p.ctx, cancel)
	defer stop()

	start := time.Now()
	page, err := p.source.Load(loadCtx, params)
	if p.hook != nil {
		p.hook(params.Direction, time.Since(start), err)
	}
	return page, err
}

func (p *Pager[K, V]) next() (V, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cursor < len(p.items) {
		v := p.items[p.cursor]
		p.cursor++
		return v, true
	}
	var zero V
	return zero, false
}

func (p *Pager[K, V]) hasBuffered() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor < len(p.items)
}

func (p *Pager[K, V]) loadedPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pages)
}

func (p *Pager[K, V]) stateLocked() State[K, V] {
	var anchor *int
	if p.anchor != nil {
		a := *p.anchor
		anchor = &a
	}
	return State[K, V]{
		Pages:  slices.Clone(p.pages),
		Anchor: anchor,
	}
}

// publishLocked must be called with mu held so snapshots follow load order.
func (p *Pager[K, V]) publishLocked(mutate func(*Snapshot[V])) {
	items := slices.Clip(p.items)
	gen := p.generation
	p.out.Update(func(s Snapshot[V]) Snapshot[V] {
		s.Items = items
		s.Generation = gen
		mutate(&s)
		return s
	})
}
