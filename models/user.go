package models

// User is read-only from the API's point of view
type User struct {
	Username  string `json:"username" db:"username" gorm:"column:username;type:varchar;primaryKey"`
	Name      string `json:"name" db:"name" gorm:"column:name;type:varchar;not null"`
	AvatarURL string `json:"avatar_url" db:"avatar_url" gorm:"column:avatar_url;type:varchar"`
}

func (User) TableName() string {
	return "users"
}
