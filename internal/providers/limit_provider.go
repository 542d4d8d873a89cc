package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-viewer/internal/domain/teams"
)

const defaultRatePerMinute = 30

// rateLimitedProvider wraps a DataProvider and enforces a token-bucket quota across all calls.
type rateLimitedProvider struct {
	next    DataProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that allows perMinute upstream calls with a burst of one.
// Calls block until a token is available or the context is done.
func NewRateLimitedProvider(next DataProvider, perMinute int, logger *slog.Logger) DataProvider {
	if perMinute <= 0 {
		perMinute = defaultRatePerMinute
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) ListPlayers(ctx context.Context, page, perPage int, search string) (players.Page, error) {
	if err := p.wait(ctx, "list_players"); err != nil {
		return players.Page{}, err
	}
	return p.next.ListPlayers(ctx, page, perPage, search)
}

func (p *rateLimitedProvider) GetPlayer(ctx context.Context, id int) (players.Player, error) {
	if err := p.wait(ctx, "get_player"); err != nil {
		return players.Player{}, err
	}
	return p.next.GetPlayer(ctx, id)
}

func (p *rateLimitedProvider) GetTeam(ctx context.Context, id int) (teams.Team, error) {
	if err := p.wait(ctx, "get_team"); err != nil {
		return teams.Team{}, err
	}
	return p.next.GetTeam(ctx, id)
}

func (p *rateLimitedProvider) wait(ctx context.Context, op string) error {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited call canceled", slog.String("op", op))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}
