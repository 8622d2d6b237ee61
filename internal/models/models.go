package models

import "time"

type User struct {
	ID              string    `db:"id" json:"id"`
	Email           *string   `db:"email" json:"email,omitempty"`
	FirstName       *string   `db:"first_name" json:"firstName,omitempty"`
	LastName        *string   `db:"last_name" json:"lastName,omitempty"`
	ProfileImageURL *string   `db:"profile_image_url" json:"profileImageUrl,omitempty"`
	IsAdmin         bool      `db:"is_admin" json:"isAdmin"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// UpsertUser carries the profile fields the identity provider vouches for.
// is_admin is deliberately absent; it is only ever changed in the database.
type UpsertUser struct {
	ID              string  `validate:"required"`
	Email           *string `validate:"omitempty,email"`
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

type BlogPost struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Excerpt   *string   `db:"excerpt" json:"excerpt,omitempty"`
	AuthorID  *string   `db:"author_id" json:"authorId,omitempty"`
	Published bool      `db:"published" json:"published"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type InsertBlogPost struct {
	Title     string  `json:"title" validate:"required"`
	Content   string  `json:"content" validate:"required"`
	Excerpt   *string `json:"excerpt"`
	AuthorID  *string `json:"-"`
	Published bool    `json:"published"`
}

type BlogRating struct {
	ID        string    `db:"id" json:"id"`
	PostID    string    `db:"post_id" json:"postId"`
	UserID    string    `db:"user_id" json:"userId"`
	Rating    int       `db:"rating" json:"rating"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type InsertBlogRating struct {
	PostID string `validate:"required"`
	UserID string `validate:"required"`
	Rating int    `validate:"required,min=1,max=5"`
}

type BlogComment struct {
	ID        string    `db:"id" json:"id"`
	PostID    string    `db:"post_id" json:"postId"`
	UserID    string    `db:"user_id" json:"userId"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type InsertBlogComment struct {
	PostID  string `validate:"required"`
	UserID  string `validate:"required"`
	Content string `validate:"required"`
}

type Notification struct {
	ID        string    `db:"id" json:"id"`
	Content   string    `db:"content" json:"content"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type InsertNotification struct {
	Content  string `json:"content" validate:"required"`
	IsActive *bool  `json:"isActive"`
}

// NotificationUpdate is a partial update: nil fields are left untouched.
type NotificationUpdate struct {
	Content  *string `json:"content" validate:"omitempty,min=1"`
	IsActive *bool   `json:"isActive"`
}

type ResourceCard struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Icon        string    `db:"icon" json:"icon"`
	Category    string    `db:"category" json:"category"`
	RedirectURL *string   `db:"redirect_url" json:"redirectUrl,omitempty"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	SortOrder   int       `db:"sort_order" json:"sortOrder"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// ResourceCardUpdate is a partial update: nil fields are left untouched.
type ResourceCardUpdate struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Icon        *string `json:"icon" validate:"omitempty,min=1"`
	Category    *string `json:"category" validate:"omitempty,oneof=resources toolbox features"`
	RedirectURL *string `json:"redirectUrl"`
	IsActive    *bool   `json:"isActive"`
	SortOrder   *int    `json:"sortOrder"`
}
