package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	"github.com/preston-bernstein/nba-viewer/internal/logging"
	"github.com/preston-bernstein/nba-viewer/internal/paging"
)

// Players returns the current list snapshot without triggering a load.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, newPlayersView(h.vm.Players.Snapshot()), loggerFromContext(r, h.logger))
}

// AppendPlayers loads the next page and returns the resulting snapshot.
func (h *Handler) AppendPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.runLoad(w, r, paging.DirectionAppend, h.vm.Players.Append)
}

// RefreshPlayers reloads around the optional anchor query parameter.
func (h *Handler) RefreshPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	if raw := r.URL.Query().Get("anchor"); raw != "" {
		anchor, err := strconv.Atoi(raw)
		if err != nil || anchor < 0 {
			writeError(w, r, nethttp.StatusBadRequest, "anchor must be a non-negative integer", h.logger)
			return
		}
		h.vm.Players.SetAnchor(anchor)
	}
	h.runLoad(w, r, paging.DirectionRefresh, h.vm.Players.Refresh)
}

// RetryPlayers re-runs the failed direction, if any.
func (h *Handler) RetryPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.runLoad(w, r, "retry", h.vm.Players.Retry)
}

// PlayerEvents streams list snapshots as server-sent events until the client disconnects.
func (h *Handler) PlayerEvents(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	rc := nethttp.NewResponseController(w)
	// Streams outlive the server write timeout.
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(nethttp.StatusOK)
	if err := rc.Flush(); err != nil {
		logging.Warn(logger, "event stream unsupported", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	snapshots := h.vm.Players.Subscribe(ctx)
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := w.Write([]byte(": keepalive\n\n")); err != nil {
				return
			}
		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			data, err := sonic.Marshal(newPlayersView(snap))
			if err != nil {
				logging.Error(logger, "failed to encode snapshot", err)
				return
			}
			if _, err := w.Write([]byte("event: snapshot\ndata: ")); err != nil {
				return
			}
			if _, err := w.Write(append(data, '\n', '\n')); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}

func (h *Handler) runLoad(w nethttp.ResponseWriter, r *nethttp.Request, op paging.Direction, load func(context.Context) error) {
	logger := loggerFromContext(r, h.logger)
	err := load(r.Context())
	view := newPlayersView(h.vm.Players.Snapshot())
	switch {
	case err == nil:
		writeJSON(w, nethttp.StatusOK, view, logger)
	case errors.Is(err, paging.ErrClosed):
		writeError(w, r, nethttp.StatusServiceUnavailable, "player list closed", h.logger)
	default:
		logging.Warn(logger, "player page load failed",
			slog.String(logging.FieldDirection, string(op)),
			slog.String("error", err.Error()),
		)
		writeJSON(w, nethttp.StatusBadGateway, view, logger)
	}
}
