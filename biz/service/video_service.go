package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"vidtube.com/biz/dal/db"
	"vidtube.com/biz/model"
	"vidtube.com/pkg/aggregate"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/ownership"
	"vidtube.com/pkg/pagination"
)

type VideoService struct {
	ctx context.Context
}

func NewVideoService(ctx context.Context) *VideoService {
	return &VideoService{ctx: ctx}
}

type VideoSearchParams struct {
	ActorID  int64
	OwnerID  int64
	Keyword  string
	SortBy   string
	SortType string
	Page     int64
	Limit    int64
}

// Search lists published videos filtered by owner and keyword, sorted by an
// allow-listed field, each annotated with the owner's public profile.
func (s *VideoService) Search(req *VideoSearchParams) (*pagination.Paged, error) {
	order, err := db.BuildVideoSort(req.SortBy, req.SortType)
	if err != nil {
		return nil, err
	}
	params := pagination.Normalize(req.Page, req.Limit)

	total, err := db.CountVideos(s.ctx, req.OwnerID, req.ActorID, req.Keyword)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to count videos")
	}
	docs, err := db.SearchVideoDocs(s.ctx, req.OwnerID, req.ActorID, req.Keyword, order,
		params.Offset(), int(params.Limit))
	if err != nil {
		return nil, errors.WithMessage(err, "failed to search videos")
	}

	err = aggregate.NewBuilder(db.DB).Resolve(s.ctx, docs, []aggregate.JoinSpec{{
		From:        "users",
		LocalKey:    "owner_id",
		ForeignKey:  "user_id",
		As:          "owner",
		Fields:      []string{"username", "full_name", "avatar_url"},
		Cardinality: aggregate.One,
	}})
	if err != nil {
		return nil, errors.WithMessage(err, "failed to resolve video owners")
	}

	return pagination.NewPaged(docs, params, total), nil
}

// Detail returns a single video with its owner profile and read-time like
// count; an unpublished video is only visible to its owner.
func (s *VideoService) Detail(videoId, actorId int64) (aggregate.Doc, error) {
	if videoId <= 0 {
		return nil, errno.ParamErr.WithMessage("invalid video id")
	}

	video, err := s.fetch(videoId)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && video.OwnerID != actorId {
		return nil, errno.RecordNotFoundErr.WithMessage("video does not exist")
	}

	doc, err := db.GetVideoDoc(s.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to fetch video")
	}
	if doc == nil {
		return nil, errno.RecordNotFoundErr.WithMessage("video does not exist")
	}

	docs := []aggregate.Doc{doc}
	err = aggregate.NewBuilder(db.DB).Resolve(s.ctx, docs, []aggregate.JoinSpec{{
		From:        "users",
		LocalKey:    "owner_id",
		ForeignKey:  "user_id",
		As:          "owner",
		Fields:      []string{"username", "full_name", "avatar_url"},
		Cardinality: aggregate.One,
	}})
	if err != nil {
		return nil, errors.WithMessage(err, "failed to resolve video owner")
	}

	likeCount, err := NewLikeService(s.ctx).LikeCount(constants.TargetVideo, videoId)
	if err != nil {
		return nil, err
	}
	doc["like_count"] = likeCount

	if err := db.IncrVideoVisit(s.ctx, videoId); err != nil {
		logrus.Warnf("failed to bump view count for video %d: %v", videoId, err)
	}
	return doc, nil
}

// TogglePublish flips the owner-managed publish flag and returns the new
// state.
func (s *VideoService) TogglePublish(videoId, actorId int64) (bool, error) {
	video, err := s.fetch(videoId)
	if err != nil {
		return false, err
	}
	if err := ownership.Assert(video, actorId); err != nil {
		return false, err
	}

	published := !video.IsPublished
	if err := db.UpdateVideoPublishStatus(s.ctx, videoId, published); err != nil {
		return false, errors.WithMessage(err, "failed to update publish status")
	}
	return published, nil
}

func (s *VideoService) fetch(videoId int64) (*model.Video, error) {
	video, err := db.GetVideoInfo(s.ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("video does not exist")
		}
		return nil, errors.WithMessage(err, "failed to fetch video")
	}
	return video, nil
}
