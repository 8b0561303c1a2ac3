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

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (s *TweetService) Create(ownerId int64, content string) (*model.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.ParamErr.WithMessage("tweet content must not be empty")
	}

	tweet := &model.Tweet{
		TweetID:   utils.GenerateEntityID(),
		OwnerID:   ownerId,
		Content:   content,
		CreatedAt: utils.Now(),
		UpdatedAt: utils.Now(),
	}
	if err := db.CreateTweet(s.ctx, tweet); err != nil {
		return nil, errors.WithMessage(err, "failed to create tweet")
	}
	return tweet, nil
}

func (s *TweetService) Update(tweetId, actorId int64, content string) (*model.Tweet, error) {
	tweet, err := s.fetch(tweetId)
	if err != nil {
		return nil, err
	}
	if err := ownership.Assert(tweet, actorId); err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.ParamErr.WithMessage("tweet content must not be empty")
	}

	if err := db.UpdateTweetContent(s.ctx, tweetId, content); err != nil {
		return nil, errors.WithMessage(err, "failed to update tweet")
	}
	tweet.Content = content
	tweet.UpdatedAt = utils.Now()
	return tweet, nil
}

func (s *TweetService) Delete(tweetId, actorId int64) error {
	tweet, err := s.fetch(tweetId)
	if err != nil {
		return err
	}
	if err := ownership.Assert(tweet, actorId); err != nil {
		return err
	}
	if err := db.DeleteTweet(s.ctx, tweetId); err != nil {
		return errors.WithMessage(err, "failed to delete tweet")
	}
	return nil
}

// ListForUser returns one page of a user's tweets, newest first, each
// annotated with the author's public profile.
func (s *TweetService) ListForUser(ownerId, page, limit int64) (*pagination.Paged, error) {
	if ownerId <= 0 {
		return nil, errno.ParamErr.WithMessage("invalid user id")
	}
	params := pagination.Normalize(page, limit)

	total, err := db.GetUserTweetCount(s.ctx, ownerId)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to count tweets")
	}
	docs, err := db.GetTweetDocsByOwner(s.ctx, ownerId, params.Offset(), int(params.Limit))
	if err != nil {
		return nil, errors.WithMessage(err, "failed to list tweets")
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
		return nil, errors.WithMessage(err, "failed to resolve tweet view")
	}

	return pagination.NewPaged(docs, params, total), nil
}

func (s *TweetService) fetch(tweetId int64) (*model.Tweet, error) {
	tweet, err := db.GetTweetInfo(s.ctx, tweetId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("tweet does not exist")
		}
		return nil, errors.WithMessage(err, "failed to fetch tweet")
	}
	return tweet, nil
}
