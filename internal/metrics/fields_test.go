package metrics

import (
	"errors"
	"testing"
)

func TestMetricFieldKeysAreStable(t *testing.T) {
	if AttrMethod == "" || AttrPath == "" || AttrStatus == "" || AttrProvider == "" {
		t.Fatalf("expected metric attribute keys to be non-empty")
	}
	if AttrDirection == "" || AttrSlot == "" || AttrOutcome == "" {
		t.Fatalf("expected load attribute keys to be non-empty")
	}
}

func TestOutcome(t *testing.T) {
	if outcome(nil) != "ok" {
		t.Fatal("expected ok outcome for nil error")
	}
	if outcome(errors.New("boom")) != "error" {
		t.Fatal("expected error outcome")
	}
}
