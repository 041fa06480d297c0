package api

import (
	"time"

	"github.com/rpupo63/news-board-backend/database"
	"github.com/rpupo63/news-board-backend/services"
)

// Stores groups what the handlers need from persistence. database.Database
// provides it through newStores; tests assemble it from fakes.
type Stores struct {
	Articles services.ArticleStore
	Comments services.CommentStore
	Topics   services.TopicStore
	Users    services.UserStore
	Exists   services.ExistenceChecker
	Health   Pinger
}

func newStores(db database.Database) Stores {
	return Stores{
		Articles: db.ArticleRepo(),
		Comments: db.CommentRepo(),
		Topics:   db.TopicRepo(),
		Users:    db.UserRepo(),
		Exists:   db.ExistenceRepo(),
		Health:   db,
	}
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(stores Stores, startupTime time.Time) *routeHandlers {
	comments := services.NewCommentService(stores.Comments, stores.Exists)

	return &routeHandlers{
		apiHandler:     newAPIHandler(stores.Health, startupTime),
		topicHandler:   newTopicHandler(services.NewTopicService(stores.Topics)),
		articleHandler: newArticleHandler(services.NewArticleService(stores.Articles, stores.Exists), comments),
		commentHandler: newCommentHandler(comments),
		userHandler:    newUserHandler(services.NewUserService(stores.Users)),
	}
}
