package model

type Tweet struct {
	TweetID   int64  `json:"tweet_id" gorm:"column:tweet_id;primaryKey"`
	OwnerID   int64  `json:"owner_id" gorm:"column:owner_id;index"`
	Content   string `json:"content" gorm:"column:content;size:2048"`
	CreatedAt string `json:"created_at" gorm:"column:created_at"`
	UpdatedAt string `json:"updated_at" gorm:"column:updated_at"`
}

func (Tweet) TableName() string { return "tweets" }

func (t *Tweet) GetOwnerID() int64 { return t.OwnerID }
