package database

import (
	"context"

	"github.com/rpupo63/news-board-backend/models"
	"gorm.io/gorm"
)

type TopicRepo struct {
	db *gorm.DB
}

func NewTopicRepo(db *gorm.DB) *TopicRepo {
	return &TopicRepo{db}
}

// FindAll returns all topics ordered by slug
func (r *TopicRepo) FindAll(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	err := r.db.WithContext(ctx).Order("slug").Find(&topics).Error
	return topics, err
}

// Add inserts a new topic. Description stays NULL when not given.
func (r *TopicRepo) Add(ctx context.Context, topic *models.Topic) error {
	return r.db.WithContext(ctx).Create(topic).Error
}
