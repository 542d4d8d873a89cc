// Package viewer assembles the player list and detail slots the views render.
package viewer

import (
	"context"
	"time"

	playersapp "github.com/preston-bernstein/nba-viewer/internal/app/players"
	"github.com/preston-bernstein/nba-viewer/internal/detail"
	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-viewer/internal/metrics"
	"github.com/preston-bernstein/nba-viewer/internal/paging"
	"github.com/preston-bernstein/nba-viewer/internal/providers"
)

// Config carries everything a ViewModel needs; there are no package-level singletons.
type Config struct {
	Provider       providers.DataProvider
	Recorder       *metrics.Recorder
	Search         string
	PlayerImageURL string
	TeamImageURL   string
	PoolSize       int
}

// ViewModel owns the paged player list and the detail store for one view session.
type ViewModel struct {
	Players *paging.Pager[int, players.Player]
	Details *detail.Store
}

// New constructs the pager and detail store over cfg.Provider.
func New(cfg Config) (*ViewModel, error) {
	rec := cfg.Recorder

	store, err := detail.NewStore(cfg.Provider, cfg.Provider,
		detail.WithPoolSize(cfg.PoolSize),
		detail.WithImageURLs(cfg.PlayerImageURL, cfg.TeamImageURL),
		detail.WithLoadHook(func(slot string, elapsed time.Duration, err error) {
			rec.RecordDetailLoad(slot, elapsed, err)
		}),
	)
	if err != nil {
		return nil, err
	}

	pager := playersapp.NewPager(cfg.Provider, cfg.Search,
		paging.WithLoadHook(func(dir paging.Direction, elapsed time.Duration, err error) {
			rec.RecordPageLoad(string(dir), elapsed, err)
		}),
	)

	return &ViewModel{Players: pager, Details: store}, nil
}

// Start performs the initial load of the first page.
func (vm *ViewModel) Start(ctx context.Context) error {
	return vm.Players.Refresh(ctx)
}

// Items returns the loaded players as list rows.
func (vm *ViewModel) Items() []playersapp.Item {
	return playersapp.NewItems(vm.Players.Snapshot().Items)
}

// Close stops both components; in-flight work is canceled.
func (vm *ViewModel) Close() {
	vm.Players.Close()
	vm.Details.Close()
}
