package storage

import (
	"context"
	"errors"

	"uniportal/internal/models"
)

// ErrNotFound is returned by update operations when the target row is absent.
// Reads return (nil, nil) instead so callers can distinguish "no such row"
// from a failed store call.
var ErrNotFound = errors.New("not found")

// Storage is the data-access contract: one method per operation, each a
// single query or one atomic conditional write. No method retries, caches or
// holds state between calls.
type Storage interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpsertUser(ctx context.Context, user models.UpsertUser) (*models.User, error)

	GetBlogPosts(ctx context.Context) ([]models.BlogPost, error)
	GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error)
	CreateBlogPost(ctx context.Context, post models.InsertBlogPost) (*models.BlogPost, error)
	RateBlogPost(ctx context.Context, rating models.InsertBlogRating) (*models.BlogRating, error)
	AddBlogComment(ctx context.Context, comment models.InsertBlogComment) (*models.BlogComment, error)
	GetBlogComments(ctx context.Context, postID string) ([]models.BlogComment, error)

	GetNotifications(ctx context.Context) ([]models.Notification, error)
	CreateNotification(ctx context.Context, notification models.InsertNotification) (*models.Notification, error)
	UpdateNotification(ctx context.Context, id string, updates models.NotificationUpdate) (*models.Notification, error)
	GetActiveNotifications(ctx context.Context) ([]models.Notification, error)

	GetResourceCards(ctx context.Context) ([]models.ResourceCard, error)
	UpdateResourceCard(ctx context.Context, id string, updates models.ResourceCardUpdate) (*models.ResourceCard, error)
	GetActiveResourceCards(ctx context.Context) ([]models.ResourceCard, error)
}
