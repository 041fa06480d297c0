package database

import (
	"context"
	"fmt"

	"github.com/rpupo63/news-board-backend/models"
	"gorm.io/gorm"
)

// schema is applied statement by statement. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS topics (
    slug VARCHAR PRIMARY KEY,
    description VARCHAR
)`,
	`CREATE TABLE IF NOT EXISTS users (
    username VARCHAR PRIMARY KEY,
    name VARCHAR NOT NULL,
    avatar_url VARCHAR
)`,
	fmt.Sprintf(`CREATE TABLE IF NOT EXISTS articles (
    article_id SERIAL PRIMARY KEY,
    title VARCHAR NOT NULL,
    topic VARCHAR NOT NULL REFERENCES topics(slug),
    author VARCHAR NOT NULL REFERENCES users(username),
    body VARCHAR NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    votes INT NOT NULL DEFAULT 0,
    article_img_url VARCHAR DEFAULT '%s'
)`, models.DefaultArticleImgURL),
	`CREATE TABLE IF NOT EXISTS comments (
    comment_id SERIAL PRIMARY KEY,
    body VARCHAR NOT NULL,
    article_id INT NOT NULL REFERENCES articles(article_id) ON DELETE CASCADE,
    author VARCHAR NOT NULL REFERENCES users(username),
    votes INT NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_topic ON articles(topic)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_article ON comments(article_id)`,
}

// Migrate creates the tables the repositories query. It is meant for
// development and tests; production schemas are managed outside the service.
func Migrate(ctx context.Context, db *gorm.DB) error {
	for _, stmt := range schema {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
