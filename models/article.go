package models

import "time"

// DefaultArticleImgURL is stored when an article is created without an image
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article is a news item posted by a user under a topic.
// CommentCount is derived by aggregation and never stored.
type Article struct {
	ArticleID     int       `json:"article_id" db:"article_id" gorm:"column:article_id;type:serial;primaryKey"`
	Title         string    `json:"title" db:"title" gorm:"column:title;type:varchar;not null"`
	Topic         string    `json:"topic" db:"topic" gorm:"column:topic;type:varchar;not null"`
	Author        string    `json:"author" db:"author" gorm:"column:author;type:varchar;not null"`
	Body          string    `json:"body,omitempty" db:"body" gorm:"column:body;type:varchar;not null"`
	CreatedAt     time.Time `json:"created_at" db:"created_at" gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	Votes         int       `json:"votes" db:"votes" gorm:"column:votes;type:integer;not null;default:0"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url" gorm:"column:article_img_url;type:varchar"`
	CommentCount  int       `json:"comment_count" db:"comment_count" gorm:"column:comment_count;->;-:migration"`
}

func (Article) TableName() string {
	return "articles"
}
