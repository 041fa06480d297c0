package api

import (
	"net/http"

	"github.com/rpupo63/news-board-backend/models"
	"github.com/rpupo63/news-board-backend/services"
	"github.com/rs/zerolog/log"
)

type topicHandler struct {
	responder Responder
	topics    *services.TopicService
}

func newTopicHandler(topics *services.TopicService) topicHandler {
	logger := log.With().Str("handlerName", "topicHandler").Logger()
	return topicHandler{responder: NewResponder(logger), topics: topics}
}

type topicsResponse struct {
	Topics []models.Topic `json:"topics"`
}

type topicResponse struct {
	Topic *models.Topic `json:"topic"`
}

func (h topicHandler) getTopics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topics, err := h.topics.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, topicsResponse{topics})
	}
}

func (h topicHandler) createTopic() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.NewTopic
		if err := decodeJSON(w, r, "topic", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		topic, err := h.topics.Create(r.Context(), req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, http.StatusCreated, topicResponse{topic})
	}
}
