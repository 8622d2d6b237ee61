package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"uniportal/internal/middleware"
	"uniportal/internal/models"
	"uniportal/internal/storage"
)

type AuthHandler struct {
	store  storage.Storage
	logger *zap.Logger
}

func NewAuthHandler(store storage.Storage, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{store: store, logger: logger}
}

// GetUser returns the caller's row, refreshing the profile fields from the
// identity provider's claims on the way. The upsert is idempotent, so the
// first call of a session creates the row and every later call is a no-op
// apart from updated_at.
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.store.UpsertUser(r.Context(), models.UpsertUser{
		ID:              ident.ID,
		Email:           ident.Email,
		FirstName:       ident.FirstName,
		LastName:        ident.LastName,
		ProfileImageURL: ident.ProfileImageURL,
	})
	if err != nil {
		h.logger.Error("fetching user", zap.String("user_id", ident.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
