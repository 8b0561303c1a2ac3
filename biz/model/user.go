package model

// User rows belong to the external auth service; this backend only reads the
// public profile fields it projects into views and never mutates them.
type User struct {
	UserID    int64  `json:"user_id" gorm:"column:user_id;primaryKey"`
	Username  string `json:"username" gorm:"column:username;size:64"`
	FullName  string `json:"full_name" gorm:"column:full_name;size:128"`
	Email     string `json:"email" gorm:"column:email;size:128"`
	AvatarURL string `json:"avatar_url" gorm:"column:avatar_url;size:512"`
	CoverURL  string `json:"cover_url" gorm:"column:cover_url;size:512"`
	CreatedAt string `json:"created_at" gorm:"column:created_at"`
}

func (User) TableName() string { return "users" }
