package services

import (
	"context"

	"github.com/rpupo63/news-board-backend/errs"
	"github.com/rpupo63/news-board-backend/models"
	"github.com/rpupo63/news-board-backend/query"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// NewArticle is the insertion payload for an article. Unknown fields are ignored.
type NewArticle struct {
	Author        string `json:"author" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Body          string `json:"body" validate:"required"`
	Topic         string `json:"topic" validate:"required"`
	ArticleImgURL string `json:"article_img_url"`
}

// ArticlePage is one page of a listing. TotalCount counts every article
// matching the filter, not just this page.
type ArticlePage struct {
	Articles   []models.Article `json:"articles"`
	TotalCount int64            `json:"total_count"`
}

type ArticleService struct {
	articles ArticleStore
	exists   ExistenceChecker
	logger   zerolog.Logger
}

func NewArticleService(articles ArticleStore, exists ExistenceChecker) *ArticleService {
	return &ArticleService{
		articles: articles,
		exists:   exists,
		logger:   log.With().Str("serviceName", "articleService").Logger(),
	}
}

// List validates the parameters, then runs the page, the total count and,
// when a topic is given, the topic existence check concurrently.
func (s *ArticleService) List(ctx context.Context, params query.ArticleParams) (ArticlePage, error) {
	q, err := query.BuildArticleQuery(params)
	if err != nil {
		return ArticlePage{}, err
	}

	var (
		rows        []models.Article
		total       int64
		topicExists = true
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.articles.List(gctx, q.List())
		return errs.NewDatabaseError("list", "articles", err)
	})
	g.Go(func() error {
		var err error
		total, err = s.articles.Count(gctx, q.Count())
		return errs.NewDatabaseError("count", "articles", err)
	})
	if key, ok := q.TopicFilter(); ok {
		g.Go(func() error {
			var err error
			topicExists, err = s.exists.Exists(gctx, key)
			return errs.NewDatabaseError("check", key.Entity(), err)
		})
	}
	if err := g.Wait(); err != nil {
		return ArticlePage{}, err
	}

	articles, err := query.Disambiguate(rows, topicExists, "topic")
	if err != nil {
		return ArticlePage{}, err
	}

	s.logger.Debug().
		Str("sort_by", q.Sort.String()).
		Str("order", q.Order.String()).
		Str("topic", q.Topic).
		Int("returned", len(articles)).
		Int64("total", total).
		Msg("listed articles")

	return ArticlePage{Articles: articles, TotalCount: total}, nil
}

func (s *ArticleService) Get(ctx context.Context, id int) (*models.Article, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "article", err)
	}
	return article, nil
}

// Create inserts an article. A missing author or topic is reported as NotFound.
func (s *ArticleService) Create(ctx context.Context, in NewArticle) (*models.Article, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	article := &models.Article{
		Author:        in.Author,
		Title:         in.Title,
		Body:          in.Body,
		Topic:         in.Topic,
		ArticleImgURL: in.ArticleImgURL,
	}
	if err := s.articles.Add(ctx, article); err != nil {
		return nil, errs.NewDatabaseError("create", "article", err)
	}
	return article, nil
}

// Vote adds delta to the article's votes. A nil delta returns the article unchanged.
func (s *ArticleService) Vote(ctx context.Context, id int, delta *int) (*models.Article, error) {
	if delta == nil {
		return s.Get(ctx, id)
	}
	article, err := s.articles.IncrementVotes(ctx, id, *delta)
	if err != nil {
		return nil, errs.NewDatabaseError("update", "article", err)
	}
	return article, nil
}

func (s *ArticleService) Delete(ctx context.Context, id int) error {
	return errs.NewDatabaseError("delete", "article", s.articles.Delete(ctx, id))
}
