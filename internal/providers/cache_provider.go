package providers

import (
	"context"
	"strconv"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-viewer/internal/domain/teams"
)

const defaultCacheTTL = 5 * time.Minute

// CachingProvider memoizes single-player and single-team lookups for a TTL.
// Concurrent misses for the same id share one upstream call.
// Player pages are never cached so a refresh always reaches the upstream.
type CachingProvider struct {
	next    DataProvider
	players *ttlcache.Cache[int, players.Player]
	teams   *ttlcache.Cache[int, teams.Team]
	flight  singleflight.Group
}

// NewCachingProvider wraps next with TTL caches. Call Close to stop the expiry janitors.
func NewCachingProvider(next DataProvider, ttl time.Duration) *CachingProvider {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	playerCache := ttlcache.New[int, players.Player](
		ttlcache.WithTTL[int, players.Player](ttl),
		ttlcache.WithDisableTouchOnHit[int, players.Player](),
	)
	teamCache := ttlcache.New[int, teams.Team](
		ttlcache.WithTTL[int, teams.Team](ttl),
		ttlcache.WithDisableTouchOnHit[int, teams.Team](),
	)
	go playerCache.Start()
	go teamCache.Start()

	return &CachingProvider{
		next:    next,
		players: playerCache,
		teams:   teamCache,
	}
}

// ListPlayers always delegates.
func (c *CachingProvider) ListPlayers(ctx context.Context, page, perPage int, search string) (players.Page, error) {
	if c.next == nil {
		return players.Page{}, ErrProviderUnavailable
	}
	return c.next.ListPlayers(ctx, page, perPage, search)
}

// GetPlayer serves from cache when possible.
func (c *CachingProvider) GetPlayer(ctx context.Context, id int) (players.Player, error) {
	if item := c.players.Get(id); item != nil {
		return item.Value(), nil
	}
	if c.next == nil {
		return players.Player{}, ErrProviderUnavailable
	}
	v, err, _ := c.flight.Do("player:"+strconv.Itoa(id), func() (any, error) {
		p, err := c.next.GetPlayer(ctx, id)
		if err != nil {
			return nil, err
		}
		c.players.Set(id, p, ttlcache.DefaultTTL)
		return p, nil
	})
	if err != nil {
		return players.Player{}, err
	}
	return v.(players.Player), nil
}

// GetTeam serves from cache when possible.
func (c *CachingProvider) GetTeam(ctx context.Context, id int) (teams.Team, error) {
	if item := c.teams.Get(id); item != nil {
		return item.Value(), nil
	}
	if c.next == nil {
		return teams.Team{}, ErrProviderUnavailable
	}
	v, err, _ := c.flight.Do("team:"+strconv.Itoa(id), func() (any, error) {
		t, err := c.next.GetTeam(ctx, id)
		if err != nil {
			return nil, err
		}
		c.teams.Set(id, t, ttlcache.DefaultTTL)
		return t, nil
	})
	if err != nil {
		return teams.Team{}, err
	}
	return v.(teams.Team), nil
}

// Close stops the cache janitors.
func (c *CachingProvider) Close() {
	c.players.Stop()
	c.teams.Stop()
}
