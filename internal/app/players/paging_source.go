package players

import (
	"context"

	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-viewer/internal/paging"
	"github.com/preston-bernstein/nba-viewer/internal/providers"
)

// PageSize is the page size the player list always requests.
const PageSize = 35

// PagingSource loads player pages forward from page 1.
type PagingSource struct {
	Provider providers.PlayerProvider
	// Search filters players by name when set.
	Search string
}

// NewPagingSource returns a source reading from provider.
func NewPagingSource(provider providers.PlayerProvider) *PagingSource {
	return &PagingSource{Provider: provider}
}

// NewPager returns a pager over the player list.
func NewPager(provider providers.PlayerProvider, search string, opts ...paging.Option) *paging.Pager[int, players.Player] {
	src := &PagingSource{Provider: provider, Search: search}
	opts = append([]paging.Option{paging.WithPageSize(PageSize)}, opts...)
	return paging.New[int, players.Player](src, opts...)
}

// Load fetches one page. A nil key is page 1. Paging is forward only, so PrevKey is
// always nil and NextKey is the upstream next page.
func (s *PagingSource) Load(ctx context.Context, params paging.LoadParams[int]) (paging.Page[int, players.Player], error) {
	if s.Provider == nil {
		return paging.Page[int, players.Player]{}, providers.ErrProviderUnavailable
	}
	page := 1
	if params.Key != nil {
		page = *params.Key
	}

	resp, err := s.Provider.ListPlayers(ctx, page, PageSize, s.Search)
	if err != nil {
		return paging.Page[int, players.Player]{}, err
	}

	var next *int
	if resp.Meta.NextPage != nil {
		n := *resp.Meta.NextPage
		next = &n
	}
	return paging.Page[int, players.Player]{
		Items:   resp.Players,
		PrevKey: nil,
		NextKey: next,
	}, nil
}

// RefreshKey picks the page to reload so the anchored item stays near its position:
// the closest page's PrevKey+1, else its NextKey-1, else nil for page 1.
func (s *PagingSource) RefreshKey(st paging.State[int, players.Player]) *int {
	if st.Anchor == nil {
		return nil
	}
	page, ok := st.ClosestPageToPosition(*st.Anchor)
	if !ok {
		return nil
	}
	switch {
	case page.PrevKey != nil:
		k := *page.PrevKey + 1
		return &k
	case page.NextKey != nil:
		k := *page.NextKey - 1
		return &k
	}
	return nil
}
