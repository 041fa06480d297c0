package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Database struct {
	db            *gorm.DB
	topicRepo     *TopicRepo
	articleRepo   *ArticleRepo
	commentRepo   *CommentRepo
	userRepo      *UserRepo
	existenceRepo *ExistenceRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:            db,
		topicRepo:     NewTopicRepo(db),
		articleRepo:   NewArticleRepo(db),
		commentRepo:   NewCommentRepo(db),
		userRepo:      NewUserRepo(db),
		existenceRepo: NewExistenceRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) TopicRepo() *TopicRepo {
	return d.topicRepo
}

func (d Database) ArticleRepo() *ArticleRepo {
	return d.articleRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ExistenceRepo() *ExistenceRepo {
	return d.existenceRepo
}

// Ping checks that the primary connection is reachable.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool. The Database must not be used afterwards.
func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("get sql handle: %w", err)
	}
	return sqlDB.Close()
}
