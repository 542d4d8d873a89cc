package metrics

import (
	"sync"
	"time"
)

type loadStats struct {
	loads  int
	errors int
}

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and view loads,
// and forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	loads map[string]*loadStats
	otel  *otelInstruments
}

// NewRecorder returns an in-memory Recorder with no exporters.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		loads: make(map[string]*loadStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.withStats(provider, func(stats *providerStats) {
		stats.calls++
		stats.lastCallLatency = duration
		if err != nil {
			stats.errors++
		}
	})
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.withStats(provider, func(stats *providerStats) {
		stats.rateLimitHits++
		if retryAfter > 0 {
			stats.lastRetryAfter = retryAfter
		}
	})
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot is a copy of the current stats for a provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current stats for the provider.
func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPageLoad tracks a paged-list load for a direction (refresh or append).
func (r *Recorder) RecordPageLoad(direction string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.recordLoad("page:"+direction, err)
	if r.otel != nil {
		r.otel.recordPageLoad(direction, duration, err)
	}
}

// RecordDetailLoad tracks a detail lookup for a slot (player or team).
func (r *Recorder) RecordDetailLoad(slot string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.recordLoad("detail:"+slot, err)
	if r.otel != nil {
		r.otel.recordDetailLoad(slot, duration, err)
	}
}

// PageLoads returns total and failed loads recorded for a direction.
func (r *Recorder) PageLoads(direction string) (total, failed int) {
	return r.loadCounts("page:" + direction)
}

// DetailLoads returns total and failed loads recorded for a slot.
func (r *Recorder) DetailLoads(slot string) (total, failed int) {
	return r.loadCounts("detail:" + slot)
}

func (r *Recorder) recordLoad(key string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.loads[key]
	if !ok {
		stats = &loadStats{}
		r.loads[key] = stats
	}
	stats.loads++
	if err != nil {
		stats.errors++
	}
}

func (r *Recorder) loadCounts(key string) (int, int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.loads[key]; ok {
		return stats.loads, stats.errors
	}
	return 0, 0
}

func (r *Recorder) withStats(provider string, fn func(*providerStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	fn(stats)
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
