package db

import (
	"context"

	"gorm.io/gorm/clause"

	"vidtube.com/biz/model"
	"vidtube.com/pkg/aggregate"
	"vidtube.com/pkg/utils"
)

// CreateLike inserts the edge unless it already exists. The unique index on
// (user_id, target_kind, target_id) arbitrates concurrent toggles: losing the
// race surfaces as zero affected rows, not an error. The row id comes from
// the snowflake generator so the edge index is the only key the conditional
// insert can conflict on.
func CreateLike(ctx context.Context, userId int64, targetKind string, targetId int64) (bool, error) {
	res := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&model.Like{
		LikeID:     utils.GenerateEntityID(),
		UserID:     userId,
		TargetKind: targetKind,
		TargetID:   targetId,
		CreatedAt:  utils.Now(),
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteLike removes the edge if present; zero affected rows means a racer
// already removed it.
func DeleteLike(ctx context.Context, userId int64, targetKind string, targetId int64) (bool, error) {
	res := DB.WithContext(ctx).Where("user_id = ? And target_kind = ? And target_id = ?",
		userId, targetKind, targetId).Delete(&model.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func IsLikeExist(ctx context.Context, userId int64, targetKind string, targetId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).Where("user_id = ? And target_kind = ? And target_id = ?",
		userId, targetKind, targetId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetTargetLikeCount counts the edges on one target; like totals are always
// derived at read time, never maintained as a counter field.
func GetTargetLikeCount(ctx context.Context, targetKind string, targetId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Like{}).Where("target_kind = ? And target_id = ?",
		targetKind, targetId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func GetUserLikeCount(ctx context.Context, userId int64, targetKind string) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Like{}).Where("user_id = ? And target_kind = ?",
		userId, targetKind).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikeDocsByUser returns one page of the actor's like edges for one target
// kind as schemaless rows ready for view composition, newest edge first.
func GetLikeDocsByUser(ctx context.Context, userId int64, targetKind string, offset, limit int) ([]aggregate.Doc, error) {
	docs := make([]aggregate.Doc, 0, limit)
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? And target_kind = ?", userId, targetKind).
		Order("created_at desc, like_id desc").
		Offset(offset).Limit(limit).
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}
