package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public API. Nothing here is authenticated.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/healthz", handlers.apiHandler.health())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.apiHandler.getEndpoints())

		r.Get("/topics", handlers.topicHandler.getTopics())
		r.Post("/topics", handlers.topicHandler.createTopic())

		r.Get("/articles", handlers.articleHandler.getArticles())
		r.Post("/articles", handlers.articleHandler.createArticle())
		r.Get("/articles/{article_id}", handlers.articleHandler.getArticle())
		r.Patch("/articles/{article_id}", handlers.articleHandler.voteArticle())
		r.Delete("/articles/{article_id}", handlers.articleHandler.deleteArticle())
		r.Get("/articles/{article_id}/comments", handlers.articleHandler.getArticleComments())
		r.Post("/articles/{article_id}/comments", handlers.articleHandler.createArticleComment())

		r.Patch("/comments/{comment_id}", handlers.commentHandler.voteComment())
		r.Delete("/comments/{comment_id}", handlers.commentHandler.deleteComment())

		r.Get("/users", handlers.userHandler.getUsers())
		r.Get("/users/{username}", handlers.userHandler.getUser())
	})
}
