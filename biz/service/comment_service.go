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
	"vidtube.com/pkg/pagination"
	"vidtube.com/pkg/utils"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// Add creates a comment on an existing video. Any actor may comment; only
// the owner may later change or remove it.
func (s *CommentService) Add(videoId, userId int64, content string) (*model.Comment, error) {
	exists, err := db.IsVideoExist(s.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to resolve video")
	}
	if !exists {
		return nil, errno.RecordNotFoundErr.WithMessage("video does not exist")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.ParamErr.WithMessage("comment content must not be empty")
	}

	comment := &model.Comment{
		CommentID: utils.GenerateEntityID(),
		VideoID:   videoId,
		OwnerID:   userId,
		Content:   content,
		CreatedAt: utils.Now(),
		UpdatedAt: utils.Now(),
	}
	if err := db.CreateComment(s.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "failed to create comment")
	}
	return comment, nil
}

func (s *CommentService) Update(commentId, userId int64, content string) (*model.Comment, error) {
	comment, err := s.fetch(commentId)
	if err != nil {
		return nil, err
	}
	if err := ownership.Assert(comment, userId); err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.ParamErr.WithMessage("comment content must not be empty")
	}

	if err := db.UpdateCommentContent(s.ctx, commentId, content); err != nil {
		return nil, errors.WithMessage(err, "failed to update comment")
	}
	comment.Content = content
	comment.UpdatedAt = utils.Now()
	return comment, nil
}

func (s *CommentService) Delete(commentId, userId int64) (int64, error) {
	comment, err := s.fetch(commentId)
	if err != nil {
		return 0, err
	}
	if err := ownership.Assert(comment, userId); err != nil {
		return 0, err
	}

	if err := db.DeleteComment(s.ctx, commentId); err != nil {
		return 0, errors.WithMessage(err, "failed to delete comment")
	}
	return comment.CommentID, nil
}

// ListForVideo returns one page of a video's comments, most recent first,
// each annotated with the commenter's public profile.
func (s *CommentService) ListForVideo(videoId, page, limit int64) (*pagination.Paged, error) {
	exists, err := db.IsVideoExist(s.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to resolve video")
	}
	if !exists {
		return nil, errno.RecordNotFoundErr.WithMessage("video does not exist")
	}

	params := pagination.Normalize(page, limit)
	total, err := db.GetVideoCommentCount(s.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to count comments")
	}
	docs, err := db.GetCommentDocsByVideo(s.ctx, videoId, params.Offset(), int(params.Limit))
	if err != nil {
		return nil, errors.WithMessage(err, "failed to list comments")
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
		return nil, errors.WithMessage(err, "failed to resolve comment view")
	}

	return pagination.NewPaged(docs, params, total), nil
}

func (s *CommentService) fetch(commentId int64) (*model.Comment, error) {
	comment, err := db.GetCommentInfo(s.ctx, commentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("comment does not exist")
		}
		return nil, errors.WithMessage(err, "failed to fetch comment")
	}
	return comment, nil
}
