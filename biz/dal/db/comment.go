package db

import (
	"context"

	"vidtube.com/biz/model"
	"vidtube.com/pkg/aggregate"
	"vidtube.com/pkg/utils"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": utils.Now(),
		}).Error; err != nil {
		return err
	}
	return nil
}

func DeleteComment(ctx context.Context, commentId int64) error {
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).
		Delete(&model.Comment{}).Error; err != nil {
		return err
	}
	return nil
}

func GetVideoCommentCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetCommentDocsByVideo returns one page of a video's comments, most recent
// first. The comment_id tiebreak keeps the order deterministic so pages never
// skip or repeat between requests.
func GetCommentDocsByVideo(ctx context.Context, videoId int64, offset, limit int) ([]aggregate.Doc, error) {
	docs := make([]aggregate.Doc, 0, limit)
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoId).
		Order("created_at desc, comment_id desc").
		Offset(offset).Limit(limit).
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}
