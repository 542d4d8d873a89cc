package testutil

import (
	"testing"

	"github.com/preston-bernstein/nba-viewer/internal/app/viewer"
	"github.com/preston-bernstein/nba-viewer/internal/providers"
)

// NewViewModel builds a view model over provider and closes it when the test ends.
func NewViewModel(t *testing.T, provider providers.DataProvider) *viewer.ViewModel {
	t.Helper()
	vm, err := viewer.New(viewer.Config{Provider: provider, PoolSize: 4})
	if err != nil {
		t.Fatalf("failed to build view model: %v", err)
	}
	t.Cleanup(vm.Close)
	return vm
}
