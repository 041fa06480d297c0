package services

import (
	"context"

	"github.com/rpupo63/news-board-backend/models"
	"github.com/rpupo63/news-board-backend/query"
)

// The services depend on these narrow store contracts. The gorm repositories
// in package database satisfy them; tests use in-memory fakes.

type ArticleStore interface {
	List(ctx context.Context, q query.Query) ([]models.Article, error)
	Count(ctx context.Context, q query.Query) (int64, error)
	FindByID(ctx context.Context, id int) (*models.Article, error)
	Add(ctx context.Context, article *models.Article) error
	IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error)
	Delete(ctx context.Context, id int) error
}

type CommentStore interface {
	List(ctx context.Context, q query.Query) ([]models.Comment, error)
	FindByID(ctx context.Context, id int) (*models.Comment, error)
	Add(ctx context.Context, comment *models.Comment) error
	IncrementVotes(ctx context.Context, id, delta int) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

type TopicStore interface {
	FindAll(ctx context.Context) ([]models.Topic, error)
	Add(ctx context.Context, topic *models.Topic) error
}

type UserStore interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type ExistenceChecker interface {
	Exists(ctx context.Context, key query.ParentKey) (bool, error)
}
