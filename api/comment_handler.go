package api

import (
	"net/http"

	"github.com/rpupo63/news-board-backend/models"
	"github.com/rpupo63/news-board-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type commentHandler struct {
	responder Responder
	logger    zerolog.Logger
	comments  *services.CommentService
}

func newCommentHandler(comments *services.CommentService) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		comments:  comments,
	}
}

type commentResponse struct {
	Comment *models.Comment `json:"comment"`
}

func (h commentHandler) voteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "comment_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req voteRequest
		if err := decodeJSON(w, r, "vote", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comment, err := h.comments.Vote(r.Context(), id, req.IncVotes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, commentResponse{comment})
	}
}

func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "comment_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.comments.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Int("comment_id", id).Msg("comment deleted")
		h.responder.WriteNoContent(w)
	}
}
