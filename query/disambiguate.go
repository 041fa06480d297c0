package query

import "github.com/rpupo63/news-board-backend/errs"

// Disambiguate reconciles a child listing with the existence of its parent.
// Zero rows under a missing parent is NotFound; zero rows under an existing
// parent is an empty, non-nil slice. Non-empty results pass through.
func Disambiguate[T any](rows []T, parentExists bool, entity string) ([]T, error) {
	if len(rows) > 0 {
		return rows, nil
	}
	if !parentExists {
		return nil, errs.NewNotFound(entity)
	}
	return []T{}, nil
}
