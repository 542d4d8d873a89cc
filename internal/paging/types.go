// Package paging drives forward page loads from a Source and exposes the accumulated
// items as one growing, observable collection.
package paging

import (
	"context"
	"time"
)

// Status is the load status of one direction.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// LoadState is the observable status of a direction. Err is set only with StatusError.
type LoadState struct {
	Status          Status
	Err             error
	EndOfPagination bool
}

// Direction names which side of the collection a load feeds.
type Direction string

const (
	DirectionRefresh Direction = "refresh"
	DirectionAppend  Direction = "append"
)

// LoadParams is what a Source receives for one load. A nil Key requests the first page.
type LoadParams[K comparable] struct {
	Key       *K
	LoadSize  int
	Direction Direction
}

// Page is one loaded chunk. A nil NextKey ends pagination; PrevKey is nil for forward-only sources.
type Page[K comparable, V any] struct {
	Items   []V
	PrevKey *K
	NextKey *K
}

// Source loads pages and picks the key to reload from on refresh.
type Source[K comparable, V any] interface {
	Load(ctx context.Context, params LoadParams[K]) (Page[K, V], error)
	RefreshKey(state State[K, V]) *K
}

// State is the loaded pages plus the last anchor position reported by the view.
type State[K comparable, V any] struct {
	Pages  []Page[K, V]
	Anchor *int
}

// ItemCount returns the number of items across all pages.
func (s State[K, V]) ItemCount() int {
	n := 0
	for _, p := range s.Pages {
		n += len(p.Items)
	}
	return n
}

// ClosestPageToPosition returns the loaded page holding the item at pos. Positions before
// the first item map to the first page and positions past the end to the last one.
func (s State[K, V]) ClosestPageToPosition(pos int) (Page[K, V], bool) {
	if len(s.Pages) == 0 {
		return Page[K, V]{}, false
	}
	if pos < 0 {
		return s.Pages[0], true
	}
	offset := 0
	for _, p := range s.Pages {
		offset += len(p.Items)
		if pos < offset {
			return p, true
		}
	}
	return s.Pages[len(s.Pages)-1], true
}

// Snapshot is an immutable copy of the pager's observable output.
type Snapshot[V any] struct {
	Items   []V
	Refresh LoadState
	Append  LoadState
	// Generation increments on every successful refresh.
	Generation int
}

// LoadHook observes every completed load. It runs on the loading goroutine.
type LoadHook func(dir Direction, elapsed time.Duration, err error)
