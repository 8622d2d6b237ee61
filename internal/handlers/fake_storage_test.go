package handlers

import (
	"context"

	"uniportal/internal/models"
	"uniportal/internal/storage"
)

// fakeStorage implements storage.Storage with per-method funcs. A method
// invoked without a func set panics, which is exactly what the "no storage
// call on early rejection" tests rely on.
type fakeStorage struct {
	getUser                func(ctx context.Context, id string) (*models.User, error)
	upsertUser             func(ctx context.Context, user models.UpsertUser) (*models.User, error)
	getBlogPosts           func(ctx context.Context) ([]models.BlogPost, error)
	getBlogPost            func(ctx context.Context, id string) (*models.BlogPost, error)
	createBlogPost         func(ctx context.Context, post models.InsertBlogPost) (*models.BlogPost, error)
	rateBlogPost           func(ctx context.Context, rating models.InsertBlogRating) (*models.BlogRating, error)
	addBlogComment         func(ctx context.Context, comment models.InsertBlogComment) (*models.BlogComment, error)
	getBlogComments        func(ctx context.Context, postID string) ([]models.BlogComment, error)
	getNotifications       func(ctx context.Context) ([]models.Notification, error)
	createNotification     func(ctx context.Context, n models.InsertNotification) (*models.Notification, error)
	updateNotification     func(ctx context.Context, id string, u models.NotificationUpdate) (*models.Notification, error)
	getActiveNotifications func(ctx context.Context) ([]models.Notification, error)
	getResourceCards       func(ctx context.Context) ([]models.ResourceCard, error)
	updateResourceCard     func(ctx context.Context, id string, u models.ResourceCardUpdate) (*models.ResourceCard, error)
	getActiveResourceCards func(ctx context.Context) ([]models.ResourceCard, error)
}

var _ storage.Storage = (*fakeStorage)(nil)

func (f *fakeStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	return f.getUser(ctx, id)
}

func (f *fakeStorage) UpsertUser(ctx context.Context, user models.UpsertUser) (*models.User, error) {
	return f.upsertUser(ctx, user)
}

func (f *fakeStorage) GetBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	return f.getBlogPosts(ctx)
}

func (f *fakeStorage) GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error) {
	return f.getBlogPost(ctx, id)
}

func (f *fakeStorage) CreateBlogPost(ctx context.Context, post models.InsertBlogPost) (*models.BlogPost, error) {
	return f.createBlogPost(ctx, post)
}

func (f *fakeStorage) RateBlogPost(ctx context.Context, rating models.InsertBlogRating) (*models.BlogRating, error) {
	return f.rateBlogPost(ctx, rating)
}

func (f *fakeStorage) AddBlogComment(ctx context.Context, comment models.InsertBlogComment) (*models.BlogComment, error) {
	return f.addBlogComment(ctx, comment)
}

func (f *fakeStorage) GetBlogComments(ctx context.Context, postID string) ([]models.BlogComment, error) {
	return f.getBlogComments(ctx, postID)
}

func (f *fakeStorage) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	return f.getNotifications(ctx)
}

func (f *fakeStorage) CreateNotification(ctx context.Context, n models.InsertNotification) (*models.Notification, error) {
	return f.createNotification(ctx, n)
}

func (f *fakeStorage) UpdateNotification(ctx context.Context, id string, u models.NotificationUpdate) (*models.Notification, error) {
	return f.updateNotification(ctx, id, u)
}

func (f *fakeStorage) GetActiveNotifications(ctx context.Context) ([]models.Notification, error) {
	return f.getActiveNotifications(ctx)
}

func (f *fakeStorage) GetResourceCards(ctx context.Context) ([]models.ResourceCard, error) {
	return f.getResourceCards(ctx)
}

func (f *fakeStorage) UpdateResourceCard(ctx context.Context, id string, u models.ResourceCardUpdate) (*models.ResourceCard, error) {
	return f.updateResourceCard(ctx, id, u)
}

func (f *fakeStorage) GetActiveResourceCards(ctx context.Context) ([]models.ResourceCard, error) {
	return f.getActiveResourceCards(ctx)
}
