package model

type Comment struct {
	CommentID int64  `json:"comment_id" gorm:"column:comment_id;primaryKey"`
	VideoID   int64  `json:"video_id" gorm:"column:video_id;index"`
	OwnerID   int64  `json:"owner_id" gorm:"column:owner_id;index"`
	Content   string `json:"content" gorm:"column:content;size:2048"`
	CreatedAt string `json:"created_at" gorm:"column:created_at"`
	UpdatedAt string `json:"updated_at" gorm:"column:updated_at"`
}

func (Comment) TableName() string { return "comments" }

func (c *Comment) GetOwnerID() int64 { return c.OwnerID }
