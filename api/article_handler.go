package api

import (
	"net/http"

	"github.com/rpupo63/news-board-backend/models"
	"github.com/rpupo63/news-board-backend/query"
	"github.com/rpupo63/news-board-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type articleHandler struct {
	responder Responder
	logger    zerolog.Logger
	articles  *services.ArticleService
	comments  *services.CommentService
}

func newArticleHandler(articles *services.ArticleService, comments *services.CommentService) articleHandler {
	logger := log.With().Str("handlerName", "articleHandler").Logger()

	return articleHandler{
		responder: NewResponder(logger),
		logger:    logger,
		articles:  articles,
		comments:  comments,
	}
}

type articleResponse struct {
	Article *models.Article `json:"article"`
}

type commentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

type postedCommentResponse struct {
	Comment string `json:"comment"`
}

// voteRequest carries an optional vote delta. A non-integer inc_votes fails to decode.
type voteRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// getArticles lists articles filtered by the sort_by, order, topic, limit and p query parameters
// @Summary List articles
// @Tags Articles
// @Produce json
// @Success 200 {object} services.ArticlePage
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 404 {object} ErrorResponse "Not Found - topic does not exist"
// @Router /api/articles [get]
func (h articleHandler) getArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page, err := h.articles.List(r.Context(), query.ArticleParams{
			SortBy: q.Get("sort_by"),
			Order:  q.Get("order"),
			Topic:  q.Get("topic"),
			Limit:  q.Get("limit"),
			Page:   q.Get("p"),
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, page)
	}
}

func (h articleHandler) getArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "article_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		article, err := h.articles.Get(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, articleResponse{article})
	}
}

func (h articleHandler) createArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.NewArticle
		if err := decodeJSON(w, r, "article", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		article, err := h.articles.Create(r.Context(), req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Int("article_id", article.ArticleID).Str("topic", article.Topic).Msg("article created")
		h.responder.WriteJSON(w, http.StatusCreated, articleResponse{article})
	}
}

func (h articleHandler) voteArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "article_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req voteRequest
		if err := decodeJSON(w, r, "vote", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		article, err := h.articles.Vote(r.Context(), id, req.IncVotes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, articleResponse{article})
	}
}

func (h articleHandler) deleteArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "article_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.articles.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Int("article_id", id).Msg("article deleted")
		h.responder.WriteNoContent(w)
	}
}

func (h articleHandler) getArticleComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "article_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		q := r.URL.Query()
		comments, err := h.comments.ListForArticle(r.Context(), id, q.Get("limit"), q.Get("p"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, commentsResponse{comments})
	}
}

func (h articleHandler) createArticleComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "article_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req services.NewComment
		if err := decodeJSON(w, r, "comment", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		body, err := h.comments.Create(r.Context(), id, req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, http.StatusCreated, postedCommentResponse{body})
	}
}
