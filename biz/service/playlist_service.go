package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/biz/dal/db"
	"vidtube.com/biz/model"
	"vidtube.com/pkg/aggregate"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/ownership"
	"vidtube.com/pkg/utils"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

func (s *PlaylistService) Create(ownerId int64, name, description string) (*model.Playlist, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, errno.ParamErr.WithMessage("name and description are required")
	}

	playlist := &model.Playlist{
		PlaylistID:  utils.GenerateEntityID(),
		OwnerID:     ownerId,
		Name:        name,
		Description: description,
		CreatedAt:   utils.Now(),
		UpdatedAt:   utils.Now(),
	}
	if err := db.CreatePlaylist(s.ctx, playlist); err != nil {
		return nil, errors.WithMessage(err, "failed to create playlist")
	}
	return playlist, nil
}

// AddVideo appends the video to the playlist if it is not already a member;
// duplicate adds are silent no-ops, not errors.
func (s *PlaylistService) AddVideo(playlistId, videoId, actorId int64) (aggregate.Doc, error) {
	if err := s.checkMembershipMutation(playlistId, videoId, actorId); err != nil {
		return nil, err
	}
	if _, err := db.AddPlaylistVideo(s.ctx, playlistId, videoId); err != nil {
		return nil, errors.WithMessage(err, "failed to add playlist video")
	}
	return s.ById(playlistId)
}

// RemoveVideo drops every occurrence of the video from the playlist.
func (s *PlaylistService) RemoveVideo(playlistId, videoId, actorId int64) (aggregate.Doc, error) {
	if err := s.checkMembershipMutation(playlistId, videoId, actorId); err != nil {
		return nil, err
	}
	if err := db.RemovePlaylistVideo(s.ctx, playlistId, videoId); err != nil {
		return nil, errors.WithMessage(err, "failed to remove playlist video")
	}
	return s.ById(playlistId)
}

func (s *PlaylistService) Update(playlistId, actorId int64, name, description string) (*model.Playlist, error) {
	playlist, err := s.fetch(playlistId)
	if err != nil {
		return nil, err
	}
	if err := ownership.Assert(playlist, actorId); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, errno.ParamErr.WithMessage("name and description are required")
	}

	if err := db.UpdatePlaylist(s.ctx, playlistId, name, description); err != nil {
		return nil, errors.WithMessage(err, "failed to update playlist")
	}
	playlist.Name = name
	playlist.Description = description
	playlist.UpdatedAt = utils.Now()
	return playlist, nil
}

func (s *PlaylistService) Delete(playlistId, actorId int64) error {
	playlist, err := s.fetch(playlistId)
	if err != nil {
		return err
	}
	if err := ownership.Assert(playlist, actorId); err != nil {
		return err
	}
	if err := db.DeletePlaylist(s.ctx, playlistId); err != nil {
		return errors.WithMessage(err, "failed to delete playlist")
	}
	return nil
}

// ById returns one playlist with its member videos resolved in insertion
// order.
func (s *PlaylistService) ById(playlistId int64) (aggregate.Doc, error) {
	doc, err := db.GetPlaylistDoc(s.ctx, playlistId)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to fetch playlist")
	}
	if doc == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("playlist does not exist")
	}
	docs := []aggregate.Doc{doc}
	if err := s.resolveVideos(docs); err != nil {
		return nil, err
	}
	return doc, nil
}

// ListForUser returns the owner's playlists, each with its member videos
// resolved; a playlist with many videos keeps them all as a list.
func (s *PlaylistService) ListForUser(ownerId int64) ([]aggregate.Doc, error) {
	if ownerId <= 0 {
		return nil, errno.ParamErr.WithMessage("invalid user id")
	}
	docs, err := db.GetPlaylistDocsByOwner(s.ctx, ownerId)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to list playlists")
	}
	if err := s.resolveVideos(docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *PlaylistService) resolveVideos(docs []aggregate.Doc) error {
	err := aggregate.NewBuilder(db.DB).Resolve(s.ctx, docs, []aggregate.JoinSpec{{
		From:        "playlist_videos",
		LocalKey:    "playlist_id",
		ForeignKey:  "playlist_id",
		As:          "videos",
		Order:       "playlist_video_id asc",
		Cardinality: aggregate.Many,
		Joins: []aggregate.JoinSpec{{
			From:        "videos",
			LocalKey:    "video_id",
			ForeignKey:  "video_id",
			As:          "video",
			Cardinality: aggregate.One,
		}},
	}})
	if err != nil {
		return errors.WithMessage(err, "failed to resolve playlist videos")
	}
	// flatten the membership rows down to the videos themselves
	for _, doc := range docs {
		members, _ := doc["videos"].([]aggregate.Doc)
		videos := make([]interface{}, 0, len(members))
		for _, member := range members {
			if v, ok := member["video"]; ok && v != nil {
				videos = append(videos, v)
			}
		}
		doc["videos"] = videos
	}
	return nil
}

func (s *PlaylistService) checkMembershipMutation(playlistId, videoId, actorId int64) error {
	playlist, err := s.fetch(playlistId)
	if err != nil {
		return err
	}

	exists, err := db.IsVideoExist(s.ctx, videoId)
	if err != nil {
		return errors.WithMessage(err, "failed to resolve video")
	}
	if !exists {
		return errno.RecordNotFoundErr.WithMessage("video does not exist")
	}

	return ownership.Assert(playlist, actorId)
}

func (s *PlaylistService) fetch(playlistId int64) (*model.Playlist, error) {
	playlist, err := db.GetPlaylistInfo(s.ctx, playlistId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("playlist does not exist")
		}
		return nil, errors.WithMessage(err, "failed to fetch playlist")
	}
	return playlist, nil
}
