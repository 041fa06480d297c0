package database

import (
	"context"

	"github.com/rpupo63/news-board-backend/models"
	"github.com/rpupo63/news-board-backend/query"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type ArticleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{db}
}

// List runs a built article listing.
func (r *ArticleRepo) List(ctx context.Context, q query.Query) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args...).Scan(&articles).Error
	return articles, err
}

// Count runs a built article count.
func (r *ArticleRepo) Count(ctx context.Context, q query.Query) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args...).Scan(&n).Error
	return n, err
}

// FindByID returns one article with its body and comment_count.
func (r *ArticleRepo) FindByID(ctx context.Context, id int) (*models.Article, error) {
	var article models.Article
	res := r.db.WithContext(ctx).Raw(`SELECT articles.*, COUNT(comments.comment_id)::int AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id
WHERE articles.article_id = ?
GROUP BY articles.article_id`, id).Scan(&article)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &article, nil
}

// Add inserts an article, substituting the placeholder image when none is given.
// The returned row always has comment_count 0.
func (r *ArticleRepo) Add(ctx context.Context, article *models.Article) error {
	if article.ArticleImgURL == "" {
		article.ArticleImgURL = models.DefaultArticleImgURL
	}
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return err
	}
	article.CommentCount = 0
	return nil
}

// IncrementVotes applies votes = votes + delta and returns the updated row.
func (r *ArticleRepo) IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	var article models.Article
	res := r.db.WithContext(ctx).Clauses(dbresolver.Write).Raw(`WITH updated AS (
    UPDATE articles SET votes = votes + ? WHERE article_id = ? RETURNING *
)
SELECT updated.*,
    (SELECT COUNT(*) FROM comments WHERE comments.article_id = updated.article_id)::int AS comment_count
FROM updated`, delta, id).Scan(&article)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &article, nil
}

// Delete removes an article; its comments go with it through the cascade.
func (r *ArticleRepo) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&models.Article{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
