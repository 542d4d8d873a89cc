package handlers

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/preston-bernstein/nba-viewer/internal/app/viewer"
)

// heartbeatInterval keeps idle event streams from being cut by proxies.
var heartbeatInterval = 15 * time.Second

// Handler wires HTTP routes to one view model session.
type Handler struct {
	vm     *viewer.ViewModel
	logger *slog.Logger
}

// NewHandler constructs a Handler over vm.
func NewHandler(vm *viewer.ViewModel, logger *slog.Logger) *Handler {
	return &Handler{vm: vm, logger: logger}
}

// Health reports liveness; it fails only while the request is being torn down.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, loggerFromContext(r, h.logger))
}

// Ready reports 200 once the player list has loaded at least once.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	snap := h.vm.Players.Snapshot()
	if snap.Generation > 0 {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, loggerFromContext(r, h.logger))
		return
	}
	body := map[string]string{"status": "not ready", "refresh": snap.Refresh.Status.String()}
	if snap.Refresh.Err != nil {
		body["error"] = snap.Refresh.Err.Error()
	}
	writeJSON(w, nethttp.StatusServiceUnavailable, body, loggerFromContext(r, h.logger))
}
