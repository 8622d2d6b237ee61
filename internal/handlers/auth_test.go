package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"uniportal/internal/middleware"
	"uniportal/internal/models"
)

func TestGetUser(t *testing.T) {
	t.Run("unauthenticated is 401", func(t *testing.T) {
		h := NewAuthHandler(&fakeStorage{}, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		rr := httptest.NewRecorder()
		h.GetUser(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("profile claims flow into the upsert", func(t *testing.T) {
		var got models.UpsertUser
		store := &fakeStorage{
			upsertUser: func(ctx context.Context, user models.UpsertUser) (*models.User, error) {
				got = user
				return &models.User{ID: user.ID, Email: user.Email, FirstName: user.FirstName}, nil
			},
		}
		h := NewAuthHandler(store, zap.NewNop())

		email := "jo@uni.edu"
		first := "Jo"
		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		ctx := context.WithValue(req.Context(), middleware.IdentityKey, middleware.Identity{
			ID:        "u1",
			Email:     &email,
			FirstName: &first,
		})
		rr := httptest.NewRecorder()
		h.GetUser(rr, req.WithContext(ctx))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "u1", got.ID)
		require.NotNil(t, got.Email)
		assert.Equal(t, email, *got.Email)

		var user models.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
		assert.Equal(t, "u1", user.ID)
	})
}

func TestPublicContent(t *testing.T) {
	t.Run("active notifications pass through", func(t *testing.T) {
		store := &fakeStorage{
			getActiveNotifications: func(ctx context.Context) ([]models.Notification, error) {
				return []models.Notification{{ID: "n1", Content: "deadline moved", IsActive: true}}, nil
			},
		}
		h := NewContentHandler(store, zap.NewNop())

		rr := httptest.NewRecorder()
		h.ActiveNotifications(rr, httptest.NewRequest(http.MethodGet, "/api/notifications/active", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var notifications []models.Notification
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &notifications))
		require.Len(t, notifications, 1)
		assert.True(t, notifications[0].IsActive)
	})

	t.Run("active resource cards pass through", func(t *testing.T) {
		store := &fakeStorage{
			getActiveResourceCards: func(ctx context.Context) ([]models.ResourceCard, error) {
				return []models.ResourceCard{{ID: "c1", Title: "Library Portal", Category: "resources", IsActive: true}}, nil
			},
		}
		h := NewContentHandler(store, zap.NewNop())

		rr := httptest.NewRecorder()
		h.ActiveResourceCards(rr, httptest.NewRequest(http.MethodGet, "/api/resource-cards", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var cards []models.ResourceCard
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cards))
		require.Len(t, cards, 1)
		assert.Equal(t, "Library Portal", cards[0].Title)
	})

	t.Run("health", func(t *testing.T) {
		h := NewContentHandler(&fakeStorage{}, zap.NewNop())
		rr := httptest.NewRecorder()
		h.Health(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
