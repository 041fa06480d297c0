package services

import (
	"context"

	"github.com/rpupo63/news-board-backend/errs"
	"github.com/rpupo63/news-board-backend/models"
)

// NewTopic is the insertion payload for a topic. Description is optional.
type NewTopic struct {
	Slug        string  `json:"slug" validate:"required"`
	Description *string `json:"description"`
}

type TopicService struct {
	topics TopicStore
}

func NewTopicService(topics TopicStore) *TopicService {
	return &TopicService{topics: topics}
}

func (s *TopicService) List(ctx context.Context) ([]models.Topic, error) {
	topics, err := s.topics.FindAll(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "topics", err)
	}
	if topics == nil {
		topics = []models.Topic{}
	}
	return topics, nil
}

// Create inserts a topic. A duplicate slug is a Conflict.
func (s *TopicService) Create(ctx context.Context, in NewTopic) (*models.Topic, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	topic := &models.Topic{Slug: in.Slug, Description: in.Description}
	if err := s.topics.Add(ctx, topic); err != nil {
		return nil, errs.NewDatabaseError("create", "topic", err)
	}
	return topic, nil
}
