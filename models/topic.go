package models

// Topic is a discussion category, identified by its slug
type Topic struct {
	Slug        string  `json:"slug" db:"slug" gorm:"column:slug;type:varchar;primaryKey"`
	Description *string `json:"description" db:"description" gorm:"column:description;type:varchar"`
}

func (Topic) TableName() string {
	return "topics"
}
