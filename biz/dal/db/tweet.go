package db

import (
	"context"

	"vidtube.com/biz/model"
	"vidtube.com/pkg/aggregate"
	"vidtube.com/pkg/utils"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	return DB.WithContext(ctx).Create(tweet).Error
}

func GetTweetInfo(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).
		First(&tweet).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

func UpdateTweetContent(ctx context.Context, tweetId int64, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": utils.Now(),
		}).Error; err != nil {
		return err
	}
	return nil
}

func DeleteTweet(ctx context.Context, tweetId int64) error {
	if err := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).
		Delete(&model.Tweet{}).Error; err != nil {
		return err
	}
	return nil
}

func GetUserTweetCount(ctx context.Context, ownerId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("owner_id = ?", ownerId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func GetTweetDocsByOwner(ctx context.Context, ownerId int64, offset, limit int) ([]aggregate.Doc, error) {
	docs := make([]aggregate.Doc, 0, limit)
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("owner_id = ?", ownerId).
		Order("created_at desc, tweet_id desc").
		Offset(offset).Limit(limit).
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}
