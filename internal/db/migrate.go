package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// RunMigrations applies the schema idempotently on startup. The rating table
// carries a uniqueness constraint on (post_id, user_id) so that rating a post
// twice can never produce two rows.
func RunMigrations(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS users (
    id VARCHAR PRIMARY KEY DEFAULT gen_random_uuid(),
    email VARCHAR UNIQUE,
    first_name VARCHAR,
    last_name VARCHAR,
    profile_image_url VARCHAR,
    is_admin BOOLEAN NOT NULL DEFAULT false,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS blog_posts (
    id VARCHAR PRIMARY KEY DEFAULT gen_random_uuid(),
    title VARCHAR NOT NULL,
    content TEXT NOT NULL,
    excerpt TEXT,
    author_id VARCHAR REFERENCES users(id),
    published BOOLEAN NOT NULL DEFAULT false,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS blog_ratings (
    id VARCHAR PRIMARY KEY DEFAULT gen_random_uuid(),
    post_id VARCHAR NOT NULL REFERENCES blog_posts(id),
    user_id VARCHAR NOT NULL REFERENCES users(id),
    rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE(post_id, user_id)
);

CREATE TABLE IF NOT EXISTS blog_comments (
    id VARCHAR PRIMARY KEY DEFAULT gen_random_uuid(),
    post_id VARCHAR NOT NULL REFERENCES blog_posts(id),
    user_id VARCHAR NOT NULL REFERENCES users(id),
    content TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS notifications (
    id VARCHAR PRIMARY KEY DEFAULT gen_random_uuid(),
    content TEXT NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT true,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS resource_cards (
    id VARCHAR PRIMARY KEY DEFAULT gen_random_uuid(),
    title VARCHAR NOT NULL,
    description TEXT NOT NULL,
    icon VARCHAR NOT NULL,
    category VARCHAR NOT NULL,
    redirect_url VARCHAR,
    is_active BOOLEAN NOT NULL DEFAULT true,
    sort_order INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		return err
	}

	// The admin panel edits cards but never creates them, so a fresh database
	// gets one card per category. Fixed ids keep the seed idempotent.
	seed := `
INSERT INTO resource_cards (id, title, description, icon, category, redirect_url, sort_order) VALUES
    ('seed-card-library', 'Library Portal', 'Search the catalogue, reserve study rooms and access e-journals.', 'book-open', 'resources', '/library', 0),
    ('seed-card-gpa', 'GPA Calculator', 'Estimate your grade point average for the current semester.', 'calculator', 'toolbox', '/tools/gpa', 0),
    ('seed-card-blog', 'Campus Blog', 'News, study tips and announcements from around campus.', 'newspaper', 'features', '/blog', 0)
ON CONFLICT (id) DO NOTHING;
`
	_, err := db.ExecContext(context.Background(), seed)
	return err
}
