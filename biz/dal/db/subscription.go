package db

import (
	"context"

	"gorm.io/gorm/clause"

	"vidtube.com/biz/model"
	"vidtube.com/pkg/aggregate"
	"vidtube.com/pkg/utils"
)

// CreateSubscription follows the same conditional-insert contract as
// CreateLike: the unique index on (subscriber_id, channel_id) decides races,
// and snowflake ids keep the primary key out of the conflict set.
func CreateSubscription(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	res := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&model.Subscription{
		SubscriptionID: utils.GenerateEntityID(),
		SubscriberID:   subscriberId,
		ChannelID:      channelId,
		CreatedAt:      utils.Now(),
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func DeleteSubscription(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	res := DB.WithContext(ctx).Where("subscriber_id = ? And channel_id = ?",
		subscriberId, channelId).Delete(&model.Subscription{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func IsSubscriptionExist(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ? And channel_id = ?",
		subscriberId, channelId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func GetSubscriberCount(ctx context.Context, channelId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func GetSubscriptionCount(ctx context.Context, subscriberId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetSubscriberDocs returns one page of edges pointing at the channel,
// newest subscription first.
func GetSubscriberDocs(ctx context.Context, channelId int64, offset, limit int) ([]aggregate.Doc, error) {
	docs := make([]aggregate.Doc, 0, limit)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).
		Order("created_at desc, subscription_id desc").
		Offset(offset).Limit(limit).
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// GetSubscriptionDocs returns one page of the subscriber's outgoing edges.
func GetSubscriptionDocs(ctx context.Context, subscriberId int64, offset, limit int) ([]aggregate.Doc, error) {
	docs := make([]aggregate.Doc, 0, limit)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).
		Order("created_at desc, subscription_id desc").
		Offset(offset).Limit(limit).
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}
