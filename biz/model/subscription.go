package model

// Subscription is the same edge pattern as Like, kept separate because the
// channel side must resolve to a user, not an arbitrary content item.
type Subscription struct {
	SubscriptionID int64  `json:"subscription_id" gorm:"column:subscription_id;primaryKey"`
	SubscriberID   int64  `json:"subscriber_id" gorm:"column:subscriber_id;uniqueIndex:uk_subscription_edge"`
	ChannelID      int64  `json:"channel_id" gorm:"column:channel_id;uniqueIndex:uk_subscription_edge;index"`
	CreatedAt      string `json:"created_at" gorm:"column:created_at"`
}

func (Subscription) TableName() string { return "subscriptions" }
