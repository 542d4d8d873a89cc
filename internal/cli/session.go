package cli

import (
	"github.com/preston-bernstein/nba-viewer/internal/app/viewer"
	"github.com/preston-bernstein/nba-viewer/internal/metrics"
	"github.com/preston-bernstein/nba-viewer/internal/server"
)

// newSession builds the provider chain and a view model over it. close releases both.
func (a *app) newSession(search string) (*viewer.ViewModel, func(), error) {
	rec := metrics.NewRecorder()
	provider, release, err := server.NewProvider(a.cfg, a.logger, rec)
	if err != nil {
		return nil, nil, err
	}
	vm, err := viewer.New(viewer.Config{
		Provider:       provider,
		Recorder:       rec,
		Search:         search,
		PlayerImageURL: a.cfg.Viewer.PlayerImageURL,
		TeamImageURL:   a.cfg.Viewer.TeamImageURL,
	})
	if err != nil {
		release()
		return nil, nil, err
	}
	return vm, func() {
		vm.Close()
		release()
	}, nil
}
