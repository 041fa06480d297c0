package seed

import (
	"context"
	"fmt"

	"github.com/rpupo63/news-board-backend/database"
	"github.com/rpupo63/news-board-backend/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Data is a complete fixture set. Articles are inserted in slice order, so
// after a reset the n-th article gets article_id n; comments refer to
// articles by that id.
type Data struct {
	Topics   []models.Topic
	Users    []models.User
	Articles []models.Article
	Comments []models.Comment
}

// Run applies the schema, empties every table, restarts the id sequences
// and inserts data in one transaction.
func Run(ctx context.Context, db *gorm.DB, data Data) error {
	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE").Error; err != nil {
			return fmt.Errorf("truncate: %w", err)
		}
		if err := insert(tx, "topics", data.Topics); err != nil {
			return err
		}
		if err := insert(tx, "users", data.Users); err != nil {
			return err
		}
		if err := insert(tx, "articles", data.Articles); err != nil {
			return err
		}
		return insert(tx, "comments", data.Comments)
	})
	if err != nil {
		return err
	}

	log.Info().
		Int("topics", len(data.Topics)).
		Int("users", len(data.Users)).
		Int("articles", len(data.Articles)).
		Int("comments", len(data.Comments)).
		Msg("database seeded")
	return nil
}

func insert[T any](tx *gorm.DB, table string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	// copy so generated ids are not written back into the caller's fixtures
	batch := make([]T, len(rows))
	copy(batch, rows)
	if err := tx.CreateInBatches(&batch, 100).Error; err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}
