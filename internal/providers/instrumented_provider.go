package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-viewer/internal/domain/teams"
	"github.com/preston-bernstein/nba-viewer/internal/logging"
	"github.com/preston-bernstein/nba-viewer/internal/metrics"
)

// instrumentedProvider records metrics and logs failures for every upstream call.
type instrumentedProvider struct {
	name     string
	next     DataProvider
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewInstrumentedProvider wraps next so each call is timed and counted under name.
// Failures are logged at warn with their taxonomy category; nothing is retried.
func NewInstrumentedProvider(name string, next DataProvider, recorder *metrics.Recorder, logger *slog.Logger) DataProvider {
	return &instrumentedProvider{
		name:     name,
		next:     next,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *instrumentedProvider) ListPlayers(ctx context.Context, page, perPage int, search string) (players.Page, error) {
	if p.next == nil {
		return players.Page{}, ErrProviderUnavailable
	}
	start := p.now()
	out, err := p.next.ListPlayers(ctx, page, perPage, search)
	p.observe(ctx, "list_players", start, err, slog.Int(logging.FieldPage, page))
	if err == nil {
		logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "players page fetched",
			slog.Int(logging.FieldPage, page),
			slog.Int(logging.FieldCount, len(out.Players)),
		)
	}
	return out, err
}

func (p *instrumentedProvider) GetPlayer(ctx context.Context, id int) (players.Player, error) {
	if p.next == nil {
		return players.Player{}, ErrProviderUnavailable
	}
	start := p.now()
	out, err := p.next.GetPlayer(ctx, id)
	p.observe(ctx, "get_player", start, err, slog.Int(logging.FieldPlayerID, id))
	return out, err
}

func (p *instrumentedProvider) GetTeam(ctx context.Context, id int) (teams.Team, error) {
	if p.next == nil {
		return teams.Team{}, ErrProviderUnavailable
	}
	start := p.now()
	out, err := p.next.GetTeam(ctx, id)
	p.observe(ctx, "get_team", start, err, slog.Int(logging.FieldTeamID, id))
	return out, err
}

func (p *instrumentedProvider) observe(ctx context.Context, op string, start time.Time, err error, attrs ...any) {
	elapsed := p.now().Sub(start)
	p.recorder.RecordProviderAttempt(p.name, elapsed, err)
	if err == nil {
		return
	}

	if rl, ok := AsRateLimitError(err); ok {
		p.recorder.RecordRateLimit(p.name, rl.RetryAfter)
	}

	attrs = append(attrs,
		slog.String(logging.FieldOperation, op),
		slog.String(logging.FieldCategory, Category(err)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		slog.Any("err", err),
	)
	logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider call failed", attrs...)
}
