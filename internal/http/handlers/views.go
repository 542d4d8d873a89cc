package handlers

import (
	playersapp "github.com/preston-bernstein/nba-viewer/internal/app/players"
	"github.com/preston-bernstein/nba-viewer/internal/detail"
	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-viewer/internal/paging"
	"github.com/preston-bernstein/nba-viewer/internal/providers"
)

type loadStateView struct {
	Status          string `json:"status"`
	Error           string `json:"error,omitempty"`
	ErrorCategory   string `json:"errorCategory,omitempty"`
	EndOfPagination bool   `json:"endOfPagination"`
}

type playersView struct {
	Items      []playersapp.Item `json:"items"`
	Count      int               `json:"count"`
	Generation int               `json:"generation"`
	Refresh    loadStateView     `json:"refresh"`
	Append     loadStateView     `json:"append"`
}

type slotView[T any] struct {
	State         string `json:"state"`
	ID            int    `json:"id,omitempty"`
	Value         *T     `json:"value,omitempty"`
	Error         string `json:"error,omitempty"`
	ErrorCategory string `json:"errorCategory,omitempty"`
}

type imagesView struct {
	Player string `json:"player"`
	Team   string `json:"team"`
}

func newLoadStateView(s paging.LoadState) loadStateView {
	v := loadStateView{Status: s.Status.String(), EndOfPagination: s.EndOfPagination}
	if s.Err != nil {
		v.Error = s.Err.Error()
		v.ErrorCategory = providers.Category(s.Err)
	}
	return v
}

func newPlayersView(s paging.Snapshot[players.Player]) playersView {
	items := playersapp.NewItems(s.Items)
	return playersView{
		Items:      items,
		Count:      len(items),
		Generation: s.Generation,
		Refresh:    newLoadStateView(s.Refresh),
		Append:     newLoadStateView(s.Append),
	}
}

func newSlotView[T any](s detail.Slot[T]) slotView[T] {
	v := slotView[T]{State: s.Kind.String(), ID: s.ID}
	switch s.Kind {
	case detail.SlotLoaded:
		val := s.Value
		v.Value = &val
	case detail.SlotError:
		if s.Err != nil {
			v.Error = s.Err.Error()
			v.ErrorCategory = providers.Category(s.Err)
		}
	}
	return v
}
