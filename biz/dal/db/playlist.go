package db

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vidtube.com/biz/model"
	"vidtube.com/pkg/aggregate"
	"vidtube.com/pkg/utils"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	return DB.WithContext(ctx).Create(playlist).Error
}

func GetPlaylistInfo(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).
		First(&playlist).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func UpdatePlaylist(ctx context.Context, playlistId int64, name, description string) error {
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
			"updated_at":  utils.Now(),
		}).Error; err != nil {
		return err
	}
	return nil
}

// DeletePlaylist removes the playlist together with its membership rows.
func DeletePlaylist(ctx context.Context, playlistId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error
	})
}

// AddPlaylistVideo appends the video unless it is already a member; the
// unique index on (playlist_id, video_id) makes duplicate adds a no-op.
func AddPlaylistVideo(ctx context.Context, playlistId, videoId int64) (bool, error) {
	res := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&model.PlaylistVideo{
		PlaylistID: playlistId,
		VideoID:    videoId,
		CreatedAt:  utils.Now(),
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// RemovePlaylistVideo deletes every occurrence of the video, including rows
// that predate the uniqueness constraint.
func RemovePlaylistVideo(ctx context.Context, playlistId, videoId int64) error {
	if err := DB.WithContext(ctx).Where("playlist_id = ? And video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error; err != nil {
		return err
	}
	return nil
}

// GetPlaylistDocsByOwner returns all of the owner's playlists as schemaless
// rows, newest first, ready for member resolution.
func GetPlaylistDocsByOwner(ctx context.Context, ownerId int64) ([]aggregate.Doc, error) {
	docs := make([]aggregate.Doc, 0)
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("owner_id = ?", ownerId).
		Order("created_at desc, playlist_id desc").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func GetPlaylistDoc(ctx context.Context, playlistId int64) (aggregate.Doc, error) {
	docs := make([]aggregate.Doc, 0, 1)
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).
		Limit(1).Find(&docs).Error; err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}
