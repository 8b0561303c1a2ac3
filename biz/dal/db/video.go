package db

import (
	"context"

	"gorm.io/gorm"

	"vidtube.com/biz/model"
	"vidtube.com/pkg/aggregate"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

// videoSortFields is the allow-list for client-supplied sort keys. Anything
// else is rejected before it gets near the query, so a request can never
// index the sort with an arbitrary column name.
var videoSortFields = map[string]string{
	"created_at": "created_at",
	"createdAt":  "created_at",
	"title":      "title",
	"duration":   "duration",
}

// BuildVideoSort translates the external sortBy/sortType pair into a storage
// sort directive, defaulting to newest-first.
func BuildVideoSort(sortBy, sortType string) (string, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	column, ok := videoSortFields[sortBy]
	if !ok {
		return "", errno.ParamErr.WithMessage("unsupported sort field: " + sortBy)
	}
	direction := "desc"
	switch sortType {
	case "", "desc":
	case "asc":
		direction = "asc"
	default:
		return "", errno.ParamErr.WithMessage("unsupported sort direction: " + sortType)
	}
	// video_id tiebreak keeps pages stable when the sort key repeats
	return column + " " + direction + ", video_id desc", nil
}

func videoSearchScope(ctx context.Context, ownerId, actorId int64, keyword string) *gorm.DB {
	tx := DB.WithContext(ctx).Model(&model.Video{})
	if ownerId != 0 {
		tx = tx.Where("owner_id = ?", ownerId)
	}
	// unpublished videos are visible only when the actor lists their own
	if ownerId == 0 || ownerId != actorId {
		tx = tx.Where("is_published = ?", true)
	}
	if keyword != "" {
		pattern := "%" + keyword + "%"
		tx = tx.Where("lower(title) like lower(?) or lower(description) like lower(?)", pattern, pattern)
	}
	return tx
}

func CountVideos(ctx context.Context, ownerId, actorId int64, keyword string) (count int64, err error) {
	if err := videoSearchScope(ctx, ownerId, actorId, keyword).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SearchVideoDocs returns one page of matching videos as schemaless rows,
// ordered by an allow-listed sort directive built with BuildVideoSort.
func SearchVideoDocs(ctx context.Context, ownerId, actorId int64, keyword, order string, offset, limit int) ([]aggregate.Doc, error) {
	docs := make([]aggregate.Doc, 0, limit)
	if err := videoSearchScope(ctx, ownerId, actorId, keyword).
		Order(order).
		Offset(offset).Limit(limit).
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func GetVideoInfo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func IsVideoExist(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func UpdateVideoPublishStatus(ctx context.Context, videoId int64, published bool) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Updates(map[string]interface{}{
			"is_published": published,
			"updated_at":   utils.Now(),
		}).Error; err != nil {
		return err
	}
	return nil
}

// IncrVideoVisit bumps the view counter in a single atomic update.
func IncrVideoVisit(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Update("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return err
	}
	return nil
}

// GetVideoDoc fetches one video as a schemaless row for view composition.
func GetVideoDoc(ctx context.Context, videoId int64) (aggregate.Doc, error) {
	docs := make([]aggregate.Doc, 0, 1)
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Limit(1).Find(&docs).Error; err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}
