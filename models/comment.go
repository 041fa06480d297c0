package models

import "time"

// Comment belongs to an article and is authored by a user
type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id" gorm:"column:comment_id;type:serial;primaryKey"`
	ArticleID int       `json:"article_id" db:"article_id" gorm:"column:article_id;type:integer;not null"`
	Author    string    `json:"author" db:"author" gorm:"column:author;type:varchar;not null"`
	Body      string    `json:"body" db:"body" gorm:"column:body;type:varchar;not null"`
	Votes     int       `json:"votes" db:"votes" gorm:"column:votes;type:integer;not null;default:0"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (Comment) TableName() string {
	return "comments"
}
