package database

import (
	"context"

	"github.com/rpupo63/news-board-backend/models"
	"github.com/rpupo63/news-board-backend/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// List runs a built comment listing.
func (r *CommentRepo) List(ctx context.Context, q query.Query) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args...).Scan(&comments).Error
	return comments, err
}

func (r *CommentRepo) FindByID(ctx context.Context, id int) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Add inserts a comment. A missing article or author surfaces as a foreign key error.
func (r *CommentRepo) Add(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// IncrementVotes applies votes = votes + delta and returns the updated row.
func (r *CommentRepo) IncrementVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	var comment models.Comment
	res := r.db.WithContext(ctx).
		Model(&comment).
		Clauses(clause.Returning{}).
		Where("comment_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &comment, nil
}

func (r *CommentRepo) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
