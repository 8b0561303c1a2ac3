package model

type Video struct {
	VideoID      int64  `json:"video_id" gorm:"column:video_id;primaryKey"`
	OwnerID      int64  `json:"owner_id" gorm:"column:owner_id;index"`
	VideoURL     string `json:"video_url" gorm:"column:video_url;size:512"`
	ThumbnailURL string `json:"thumbnail_url" gorm:"column:thumbnail_url;size:512"`
	Title        string `json:"title" gorm:"column:title;size:256"`
	Description  string `json:"description" gorm:"column:description;size:2048"`
	Duration     int64  `json:"duration" gorm:"column:duration"`
	ViewCount    int64  `json:"view_count" gorm:"column:view_count"`
	IsPublished  bool   `json:"is_published" gorm:"column:is_published"`
	CreatedAt    string `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    string `json:"updated_at" gorm:"column:updated_at"`
}

func (Video) TableName() string { return "videos" }

func (v *Video) GetOwnerID() int64 { return v.OwnerID }
