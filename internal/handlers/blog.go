package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"uniportal/internal/middleware"
	"uniportal/internal/models"
	"uniportal/internal/storage"
)

type BlogHandler struct {
	store    storage.Storage
	validate *validator.Validate
	logger   *zap.Logger
}

func NewBlogHandler(store storage.Storage, logger *zap.Logger) *BlogHandler {
	return &BlogHandler{store: store, validate: validator.New(), logger: logger}
}

// ListPosts returns published posts only, newest first.
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.GetBlogPosts(r.Context())
	if err != nil {
		h.logger.Error("fetching blog posts", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch blog posts")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	post, err := h.store.GetBlogPost(r.Context(), id)
	if err != nil {
		h.logger.Error("fetching blog post", zap.String("post_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch blog post")
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "Blog post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// RatePost records the caller's 1-5 rating for a post. A second submission by
// the same caller replaces the first; the store guarantees a single row per
// (post, user).
func (h *BlogHandler) RatePost(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var body struct {
		Rating int `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rating := models.InsertBlogRating{
		PostID: chi.URLParam(r, "id"),
		UserID: ident.ID,
		Rating: body.Rating,
	}
	if err := h.validate.Struct(rating); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result, err := h.store.RateBlogPost(r.Context(), rating)
	if err != nil {
		h.logger.Error("rating blog post", zap.String("post_id", rating.PostID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to rate blog post")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *BlogHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment := models.InsertBlogComment{
		PostID:  chi.URLParam(r, "id"),
		UserID:  ident.ID,
		Content: body.Content,
	}
	if err := h.validate.Struct(comment); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result, err := h.store.AddBlogComment(r.Context(), comment)
	if err != nil {
		h.logger.Error("adding blog comment", zap.String("post_id", comment.PostID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to add comment")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *BlogHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	comments, err := h.store.GetBlogComments(r.Context(), id)
	if err != nil {
		h.logger.Error("fetching blog comments", zap.String("post_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}
	writeJSON(w, http.StatusOK, comments)
}
