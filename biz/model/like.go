package model

// Like is a single toggled edge from an actor to a target. Existence means
// liked, absence means not liked; the unique index is what arbitrates
// concurrent toggles, so the row is only ever created or deleted, never
// updated in place.
type Like struct {
	LikeID     int64  `json:"like_id" gorm:"column:like_id;primaryKey"`
	UserID     int64  `json:"user_id" gorm:"column:user_id;uniqueIndex:uk_like_edge"`
	TargetKind string `json:"target_kind" gorm:"column:target_kind;size:16;uniqueIndex:uk_like_edge"`
	TargetID   int64  `json:"target_id" gorm:"column:target_id;uniqueIndex:uk_like_edge"`
	CreatedAt  string `json:"created_at" gorm:"column:created_at"`
}

func (Like) TableName() string { return "likes" }
