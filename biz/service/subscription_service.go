package service

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/biz/dal/db"
	"vidtube.com/pkg/aggregate"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/pagination"
)

type SubscriptionService struct {
	ctx context.Context
}

func NewSubscriptionService(ctx context.Context) *SubscriptionService {
	return &SubscriptionService{ctx: ctx}
}

// Toggle flips the subscriber's edge to the channel, with the same
// race-safe conditional insert/delete contract as like toggles. A self
// subscription carries no meaning and is rejected outright.
func (s *SubscriptionService) Toggle(subscriberId, channelId int64) (string, error) {
	if channelId <= 0 {
		return "", errno.ParamErr.WithMessage("invalid channel id")
	}
	if subscriberId == channelId {
		return "", errno.RequestErr.WithMessage("cannot subscribe to your own channel")
	}

	exists, err := db.IsUserExist(s.ctx, channelId)
	if err != nil {
		return "", errors.WithMessage(err, "failed to resolve channel")
	}
	if !exists {
		return "", errno.RecordNotFoundErr.WithMessage("channel does not exist")
	}

	subscribed, err := db.IsSubscriptionExist(s.ctx, subscriberId, channelId)
	if err != nil {
		return "", errors.WithMessage(err, "failed to check subscription edge")
	}

	if subscribed {
		if _, err := db.DeleteSubscription(s.ctx, subscriberId, channelId); err != nil {
			return "", errors.WithMessage(err, "failed to remove subscription edge")
		}
		return constants.StateRemoved, nil
	}

	if _, err := db.CreateSubscription(s.ctx, subscriberId, channelId); err != nil {
		return "", errors.WithMessage(err, "failed to create subscription edge")
	}
	return constants.StateAdded, nil
}

// SubscriberList returns the channel's subscribers as public profile
// summaries, never full user records.
func (s *SubscriptionService) SubscriberList(channelId, page, limit int64) (*pagination.Paged, error) {
	if channelId <= 0 {
		return nil, errno.ParamErr.WithMessage("invalid channel id")
	}
	params := pagination.Normalize(page, limit)

	total, err := db.GetSubscriberCount(s.ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to count subscribers")
	}
	docs, err := db.GetSubscriberDocs(s.ctx, channelId, params.Offset(), int(params.Limit))
	if err != nil {
		return nil, errors.WithMessage(err, "failed to list subscribers")
	}

	err = aggregate.NewBuilder(db.DB).Resolve(s.ctx, docs, []aggregate.JoinSpec{{
		From:        "users",
		LocalKey:    "subscriber_id",
		ForeignKey:  "user_id",
		As:          "subscriber",
		Fields:      []string{"username", "full_name", "avatar_url"},
		Cardinality: aggregate.One,
	}})
	if err != nil {
		return nil, errors.WithMessage(err, "failed to resolve subscriber view")
	}

	return pagination.NewPaged(collapseProfiles(docs, "subscriber"), params, total), nil
}

// SubscriptionList returns the channels the subscriber follows, projected to
// username and avatar.
func (s *SubscriptionService) SubscriptionList(subscriberId, page, limit int64) (*pagination.Paged, error) {
	if subscriberId <= 0 {
		return nil, errno.ParamErr.WithMessage("invalid subscriber id")
	}
	params := pagination.Normalize(page, limit)

	total, err := db.GetSubscriptionCount(s.ctx, subscriberId)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to count subscriptions")
	}
	docs, err := db.GetSubscriptionDocs(s.ctx, subscriberId, params.Offset(), int(params.Limit))
	if err != nil {
		return nil, errors.WithMessage(err, "failed to list subscriptions")
	}

	err = aggregate.NewBuilder(db.DB).Resolve(s.ctx, docs, []aggregate.JoinSpec{{
		From:        "users",
		LocalKey:    "channel_id",
		ForeignKey:  "user_id",
		As:          "channel",
		Fields:      []string{"username", "avatar_url"},
		Cardinality: aggregate.One,
	}})
	if err != nil {
		return nil, errors.WithMessage(err, "failed to resolve subscription view")
	}

	return pagination.NewPaged(collapseProfiles(docs, "channel"), params, total), nil
}

// collapseProfiles strips the edge rows away, keeping only the joined
// profile under key. An edge whose user row vanished is skipped, so a page
// can hold fewer than limit items while Total still counts every edge.
func collapseProfiles(docs []aggregate.Doc, key string) []interface{} {
	items := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		if profile, ok := doc[key]; ok && profile != nil {
			items = append(items, profile)
		}
	}
	return items
}
