package model

type Playlist struct {
	PlaylistID  int64  `json:"playlist_id" gorm:"column:playlist_id;primaryKey"`
	OwnerID     int64  `json:"owner_id" gorm:"column:owner_id;index"`
	Name        string `json:"name" gorm:"column:name;size:256"`
	Description string `json:"description" gorm:"column:description;size:2048"`
	CreatedAt   string `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   string `json:"updated_at" gorm:"column:updated_at"`
}

func (Playlist) TableName() string { return "playlists" }

func (p *Playlist) GetOwnerID() int64 { return p.OwnerID }

// PlaylistVideo is one ordered membership row. The unique index makes adds
// set-like: re-adding a member is a no-op, and listing orders by the
// auto-increment id, i.e. insertion order.
type PlaylistVideo struct {
	PlaylistVideoID int64  `json:"playlist_video_id" gorm:"column:playlist_video_id;primaryKey;autoIncrement"`
	PlaylistID      int64  `json:"playlist_id" gorm:"column:playlist_id;uniqueIndex:uk_playlist_video"`
	VideoID         int64  `json:"video_id" gorm:"column:video_id;uniqueIndex:uk_playlist_video"`
	CreatedAt       string `json:"created_at" gorm:"column:created_at"`
}

func (PlaylistVideo) TableName() string { return "playlist_videos" }
