package services

import (
	"context"

	"github.com/rpupo63/news-board-backend/errs"
	"github.com/rpupo63/news-board-backend/models"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "users", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	return user, nil
}
