package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"uniportal/internal/models"
)

const (
	userColumns         = `id, email, first_name, last_name, profile_image_url, is_admin, created_at, updated_at`
	postColumns         = `id, title, content, excerpt, author_id, published, created_at, updated_at`
	ratingColumns       = `id, post_id, user_id, rating, created_at`
	commentColumns      = `id, post_id, user_id, content, created_at, updated_at`
	notificationColumns = `id, content, is_active, created_at, updated_at`
	cardColumns         = `id, title, description, icon, category, redirect_url, is_active, sort_order, created_at, updated_at`
)

// Postgres implements Storage over a relational store via sqlx. Every method
// is a single round trip; persistence failures are wrapped and propagated,
// never retried.
type Postgres struct {
	db *sqlx.DB
}

func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// UpsertUser inserts the row or refreshes its profile fields when the id
// already exists. is_admin is never written here. Repeating the same input
// yields the same row.
func (s *Postgres) UpsertUser(ctx context.Context, user models.UpsertUser) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowxContext(ctx, `INSERT INTO users (id, email, first_name, last_name, profile_image_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = NOW()
		RETURNING `+userColumns,
		user.ID, user.Email, user.FirstName, user.LastName, user.ProfileImageURL).StructScan(&u)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return &u, nil
}

func (s *Postgres) GetBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	posts := []models.BlogPost{}
	err := s.db.SelectContext(ctx, &posts, `SELECT `+postColumns+` FROM blog_posts WHERE published=true ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("get blog posts: %w", err)
	}
	return posts, nil
}

func (s *Postgres) GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error) {
	var p models.BlogPost
	err := s.db.GetContext(ctx, &p, `SELECT `+postColumns+` FROM blog_posts WHERE id=$1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return &p, nil
}

func (s *Postgres) CreateBlogPost(ctx context.Context, post models.InsertBlogPost) (*models.BlogPost, error) {
	var p models.BlogPost
	err := s.db.QueryRowxContext(ctx, `INSERT INTO blog_posts (id, title, content, excerpt, author_id, published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+postColumns,
		uuid.New().String(), post.Title, post.Content, post.Excerpt, post.AuthorID, post.Published).StructScan(&p)
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return &p, nil
}

// RateBlogPost stores one rating per (post, user). The conflict target is the
// table's uniqueness constraint, so a repeat submission overwrites the value
// in one atomic statement instead of a racy lookup-then-write.
func (s *Postgres) RateBlogPost(ctx context.Context, rating models.InsertBlogRating) (*models.BlogRating, error) {
	var r models.BlogRating
	err := s.db.QueryRowxContext(ctx, `INSERT INTO blog_ratings (id, post_id, user_id, rating)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (post_id, user_id) DO UPDATE SET rating = EXCLUDED.rating
		RETURNING `+ratingColumns,
		uuid.New().String(), rating.PostID, rating.UserID, rating.Rating).StructScan(&r)
	if err != nil {
		return nil, fmt.Errorf("rate blog post: %w", err)
	}
	return &r, nil
}

func (s *Postgres) AddBlogComment(ctx context.Context, comment models.InsertBlogComment) (*models.BlogComment, error) {
	var c models.BlogComment
	err := s.db.QueryRowxContext(ctx, `INSERT INTO blog_comments (id, post_id, user_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING `+commentColumns,
		uuid.New().String(), comment.PostID, comment.UserID, comment.Content).StructScan(&c)
	if err != nil {
		return nil, fmt.Errorf("add blog comment: %w", err)
	}
	return &c, nil
}

func (s *Postgres) GetBlogComments(ctx context.Context, postID string) ([]models.BlogComment, error) {
	comments := []models.BlogComment{}
	err := s.db.SelectContext(ctx, &comments, `SELECT `+commentColumns+` FROM blog_comments WHERE post_id=$1 ORDER BY created_at DESC`, postID)
	if err != nil {
		return nil, fmt.Errorf("get blog comments: %w", err)
	}
	return comments, nil
}

func (s *Postgres) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := s.db.SelectContext(ctx, &notifications, `SELECT `+notificationColumns+` FROM notifications ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("get notifications: %w", err)
	}
	return notifications, nil
}

func (s *Postgres) CreateNotification(ctx context.Context, notification models.InsertNotification) (*models.Notification, error) {
	isActive := true
	if notification.IsActive != nil {
		isActive = *notification.IsActive
	}
	var n models.Notification
	err := s.db.QueryRowxContext(ctx, `INSERT INTO notifications (id, content, is_active)
		VALUES ($1, $2, $3)
		RETURNING `+notificationColumns,
		uuid.New().String(), notification.Content, isActive).StructScan(&n)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return &n, nil
}

func (s *Postgres) UpdateNotification(ctx context.Context, id string, updates models.NotificationUpdate) (*models.Notification, error) {
	set := []string{}
	args := []interface{}{}
	argIdx := 1
	if updates.Content != nil {
		set = append(set, fmt.Sprintf("content=$%d", argIdx))
		args = append(args, *updates.Content)
		argIdx++
	}
	if updates.IsActive != nil {
		set = append(set, fmt.Sprintf("is_active=$%d", argIdx))
		args = append(args, *updates.IsActive)
		argIdx++
	}
	set = append(set, "updated_at=NOW()")

	query := fmt.Sprintf(`UPDATE notifications SET %s WHERE id=$%d RETURNING %s`,
		strings.Join(set, ", "), argIdx, notificationColumns)
	args = append(args, id)

	var n models.Notification
	if err := s.db.QueryRowxContext(ctx, query, args...).StructScan(&n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update notification: %w", err)
	}
	return &n, nil
}

func (s *Postgres) GetActiveNotifications(ctx context.Context) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := s.db.SelectContext(ctx, &notifications, `SELECT `+notificationColumns+` FROM notifications WHERE is_active=true ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("get active notifications: %w", err)
	}
	return notifications, nil
}

func (s *Postgres) GetResourceCards(ctx context.Context) ([]models.ResourceCard, error) {
	cards := []models.ResourceCard{}
	err := s.db.SelectContext(ctx, &cards, `SELECT `+cardColumns+` FROM resource_cards ORDER BY sort_order ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("get resource cards: %w", err)
	}
	return cards, nil
}

func (s *Postgres) UpdateResourceCard(ctx context.Context, id string, updates models.ResourceCardUpdate) (*models.ResourceCard, error) {
	set := []string{}
	args := []interface{}{}
	argIdx := 1
	if updates.Title != nil {
		set = append(set, fmt.Sprintf("title=$%d", argIdx))
		args = append(args, *updates.Title)
		argIdx++
	}
	if updates.Description != nil {
		set = append(set, fmt.Sprintf("description=$%d", argIdx))
		args = append(args, *updates.Description)
		argIdx++
	}
	if updates.Icon != nil {
		set = append(set, fmt.Sprintf("icon=$%d", argIdx))
		args = append(args, *updates.Icon)
		argIdx++
	}
	if updates.Category != nil {
		set = append(set, fmt.Sprintf("category=$%d", argIdx))
		args = append(args, *updates.Category)
		argIdx++
	}
	if updates.RedirectURL != nil {
		set = append(set, fmt.Sprintf("redirect_url=$%d", argIdx))
		args = append(args, *updates.RedirectURL)
		argIdx++
	}
	if updates.IsActive != nil {
		set = append(set, fmt.Sprintf("is_active=$%d", argIdx))
		args = append(args, *updates.IsActive)
		argIdx++
	}
	if updates.SortOrder != nil {
		set = append(set, fmt.Sprintf("sort_order=$%d", argIdx))
		args = append(args, *updates.SortOrder)
		argIdx++
	}
	set = append(set, "updated_at=NOW()")

	query := fmt.Sprintf(`UPDATE resource_cards SET %s WHERE id=$%d RETURNING %s`,
		strings.Join(set, ", "), argIdx, cardColumns)
	args = append(args, id)

	var c models.ResourceCard
	if err := s.db.QueryRowxContext(ctx, query, args...).StructScan(&c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update resource card: %w", err)
	}
	return &c, nil
}

func (s *Postgres) GetActiveResourceCards(ctx context.Context) ([]models.ResourceCard, error) {
	cards := []models.ResourceCard{}
	err := s.db.SelectContext(ctx, &cards, `SELECT `+cardColumns+` FROM resource_cards WHERE is_active=true ORDER BY sort_order ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("get active resource cards: %w", err)
	}
	return cards, nil
}
