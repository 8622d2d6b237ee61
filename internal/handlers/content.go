package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"uniportal/internal/storage"
)

// ContentHandler serves the public, unauthenticated content surface: active
// notifications for the alert bar and active resource cards for the landing
// page.
type ContentHandler struct {
	store  storage.Storage
	logger *zap.Logger
}

func NewContentHandler(store storage.Storage, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{store: store, logger: logger}
}

func (h *ContentHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ContentHandler) ActiveNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.store.GetActiveNotifications(r.Context())
	if err != nil {
		h.logger.Error("fetching active notifications", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *ContentHandler) ActiveResourceCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.store.GetActiveResourceCards(r.Context())
	if err != nil {
		h.logger.Error("fetching active resource cards", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch resource cards")
		return
	}
	writeJSON(w, http.StatusOK, cards)
}
