package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/news-board-backend/models"
	"github.com/rpupo63/news-board-backend/services"
	"github.com/rs/zerolog/log"
)

type userHandler struct {
	responder Responder
	users     *services.UserService
}

func newUserHandler(users *services.UserService) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()
	return userHandler{responder: NewResponder(logger), users: users}
}

type usersResponse struct {
	Users []models.User `json:"users"`
}

type userResponse struct {
	User *models.User `json:"user"`
}

func (h userHandler) getUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.users.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, usersResponse{users})
	}
}

func (h userHandler) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.users.Get(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, userResponse{user})
	}
}
