package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"uniportal/internal/middleware"
	"uniportal/internal/models"
	"uniportal/internal/storage"
)

type AdminHandler struct {
	store    storage.Storage
	validate *validator.Validate
	logger   *zap.Logger
}

func NewAdminHandler(store storage.Storage, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{store: store, validate: validator.New(), logger: logger}
}

// requireAdmin is the single authorization gate for admin routes: resolve the
// identity, load the caller's row fresh, check the flag. Order matters -- 401
// before 403, and a missing row is 403, never a hint that the user table was
// consulted.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) (middleware.Identity, bool) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return ident, false
	}
	user, err := h.store.GetUser(r.Context(), ident.ID)
	if err != nil {
		h.logger.Error("checking admin status", zap.String("user_id", ident.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to check admin status")
		return ident, false
	}
	if user == nil || !user.IsAdmin {
		writeError(w, http.StatusForbidden, "Admin access required")
		return ident, false
	}
	return ident, true
}

// Check godoc
// @Summary Confirm the caller has admin privileges
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Failure 403 {object} errorResponse
// @Router /admin/check [get]
func (h *AdminHandler) Check(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"isAdmin": true})
}

func (h *AdminHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	notifications, err := h.store.GetNotifications(r.Context())
	if err != nil {
		h.logger.Error("fetching notifications", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *AdminHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	var body models.InsertNotification
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	notification, err := h.store.CreateNotification(r.Context(), body)
	if err != nil {
		h.logger.Error("creating notification", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create notification")
		return
	}
	writeJSON(w, http.StatusOK, notification)
}

func (h *AdminHandler) UpdateNotification(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "id")
	var body models.NotificationUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	notification, err := h.store.UpdateNotification(r.Context(), id, body)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Notification not found")
			return
		}
		h.logger.Error("updating notification", zap.String("notification_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to update notification")
		return
	}
	writeJSON(w, http.StatusOK, notification)
}

func (h *AdminHandler) ListResourceCards(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	cards, err := h.store.GetResourceCards(r.Context())
	if err != nil {
		h.logger.Error("fetching resource cards", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch resource cards")
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *AdminHandler) UpdateResourceCard(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "id")
	var body models.ResourceCardUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	card, err := h.store.UpdateResourceCard(r.Context(), id, body)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Resource card not found")
			return
		}
		h.logger.Error("updating resource card", zap.String("card_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to update resource card")
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// CreatePost lets an admin publish (or draft) a blog post authored as
// themselves.
func (h *AdminHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ident, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}
	var body models.InsertBlogPost
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	body.AuthorID = &ident.ID
	post, err := h.store.CreateBlogPost(r.Context(), body)
	if err != nil {
		h.logger.Error("creating blog post", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create blog post")
		return
	}
	writeJSON(w, http.StatusOK, post)
}
