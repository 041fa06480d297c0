package database

import (
	"context"

	"github.com/rpupo63/news-board-backend/query"
	"gorm.io/gorm"
)

type ExistenceRepo struct {
	db *gorm.DB
}

func NewExistenceRepo(db *gorm.DB) *ExistenceRepo {
	return &ExistenceRepo{db}
}

// Exists reports whether the parent row is present. Absence is not an error.
func (r *ExistenceRepo) Exists(ctx context.Context, key query.ParentKey) (bool, error) {
	q := key.ExistsQuery()
	var exists bool
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args...).Scan(&exists).Error
	return exists, err
}
