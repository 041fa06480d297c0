package services

import (
	"context"

	"github.com/rpupo63/news-board-backend/errs"
	"github.com/rpupo63/news-board-backend/models"
	"github.com/rpupo63/news-board-backend/query"
	"golang.org/x/sync/errgroup"
)

// NewComment is the insertion payload for a comment; the article comes from
// the route. Unknown fields are ignored.
type NewComment struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

type CommentService struct {
	comments CommentStore
	exists   ExistenceChecker
}

func NewCommentService(comments CommentStore, exists ExistenceChecker) *CommentService {
	return &CommentService{comments: comments, exists: exists}
}

// ListForArticle returns a page of an article's comments, newest first.
// An article without comments yields an empty list; a missing article is NotFound.
func (s *CommentService) ListForArticle(ctx context.Context, articleID int, limit, page string) ([]models.Comment, error) {
	q, err := query.BuildCommentQuery(articleID, limit, page)
	if err != nil {
		return nil, err
	}

	var (
		rows   []models.Comment
		exists bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.comments.List(gctx, q.List())
		return errs.NewDatabaseError("list", "comments", err)
	})
	g.Go(func() error {
		var err error
		exists, err = s.exists.Exists(gctx, q.Parent())
		return errs.NewDatabaseError("check", "article", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return query.Disambiguate(rows, exists, "article")
}

// Create inserts a comment and returns only its body.
func (s *CommentService) Create(ctx context.Context, articleID int, in NewComment) (string, error) {
	if err := validateInput(in); err != nil {
		return "", err
	}

	comment := &models.Comment{
		ArticleID: articleID,
		Author:    in.Username,
		Body:      in.Body,
	}
	if err := s.comments.Add(ctx, comment); err != nil {
		return "", errs.NewDatabaseError("create", "comment", err)
	}
	return comment.Body, nil
}

// Vote adds delta to the comment's votes. A nil delta returns the comment unchanged.
func (s *CommentService) Vote(ctx context.Context, id int, delta *int) (*models.Comment, error) {
	if delta == nil {
		comment, err := s.comments.FindByID(ctx, id)
		if err != nil {
			return nil, errs.NewDatabaseError("find", "comment", err)
		}
		return comment, nil
	}
	comment, err := s.comments.IncrementVotes(ctx, id, *delta)
	if err != nil {
		return nil, errs.NewDatabaseError("update", "comment", err)
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, id int) error {
	return errs.NewDatabaseError("delete", "comment", s.comments.Delete(ctx, id))
}
