package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("balldontlie", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("balldontlie", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("balldontlie"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("balldontlie"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("balldontlie"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("balldontlie")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("balldontlie", 5*time.Second)
	rec.RecordRateLimit("balldontlie", 0)

	if got := rec.RateLimitHits("balldontlie"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("balldontlie"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksPageAndDetailLoads(t *testing.T) {
	rec := NewRecorder()
	rec.RecordPageLoad("refresh", time.Millisecond, nil)
	rec.RecordPageLoad("append", time.Millisecond, errors.New("boom"))
	rec.RecordPageLoad("append", time.Millisecond, nil)
	rec.RecordDetailLoad("player", time.Millisecond, nil)

	if total, failed := rec.PageLoads("append"); total != 2 || failed != 1 {
		t.Fatalf("expected 2 append loads with 1 failure, got %d/%d", total, failed)
	}
	if total, failed := rec.PageLoads("refresh"); total != 1 || failed != 0 {
		t.Fatalf("expected 1 refresh load, got %d/%d", total, failed)
	}
	if total, _ := rec.DetailLoads("player"); total != 1 {
		t.Fatalf("expected 1 player detail load, got %d", total)
	}
	if total, _ := rec.DetailLoads("team"); total != 0 {
		t.Fatalf("expected no team loads, got %d", total)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("p", time.Millisecond, nil)
	rec.RecordRateLimit("p", time.Second)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordPageLoad("refresh", time.Millisecond, nil)
	rec.RecordDetailLoad("team", time.Millisecond, nil)

	if rec.ProviderCalls("p") != 0 {
		t.Fatal("expected zero calls on nil recorder")
	}
	if total, _ := rec.PageLoads("refresh"); total != 0 {
		t.Fatal("expected zero loads on nil recorder")
	}
}
