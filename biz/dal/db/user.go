package db

import (
	"context"

	"vidtube.com/biz/model"
)

func GetUserInfo(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func IsUserExist(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
