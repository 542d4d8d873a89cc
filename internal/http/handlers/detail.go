package handlers

import (
	nethttp "net/http"
	"strconv"
)

// LoadPlayer starts a player lookup and answers with the slot as it stands now.
func (h *Handler) LoadPlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	h.vm.Details.LoadPlayer(id)
	writeJSON(w, nethttp.StatusAccepted, newSlotView(h.vm.Details.Player()), loggerFromContext(r, h.logger))
}

// LoadTeam starts a team lookup and answers with the slot as it stands now.
func (h *Handler) LoadTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	h.vm.Details.LoadTeam(id)
	writeJSON(w, nethttp.StatusAccepted, newSlotView(h.vm.Details.Team()), loggerFromContext(r, h.logger))
}

func (h *Handler) PlayerDetail(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, newSlotView(h.vm.Details.Player()), loggerFromContext(r, h.logger))
}

func (h *Handler) TeamDetail(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, newSlotView(h.vm.Details.Team()), loggerFromContext(r, h.logger))
}

// DetailImages returns the image URLs the detail views display.
func (h *Handler) DetailImages(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, imagesView{
		Player: h.vm.Details.PlayerDetailImageURL(),
		Team:   h.vm.Details.TeamDetailImageURL(),
	}, loggerFromContext(r, h.logger))
}

func (h *Handler) pathID(w nethttp.ResponseWriter, r *nethttp.Request) (int, bool) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid id "+strconv.Quote(raw), h.logger)
		return 0, false
	}
	return id, true
}
