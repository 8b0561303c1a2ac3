package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/biz/mw"
	"vidtube.com/biz/service"
	"vidtube.com/pkg/errno"
)

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	channelId, err := pathID(c, "channel_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	state, err := service.NewSubscriptionService(ctx).Toggle(mw.ActorID(c), channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]string{"state": state})
}

func ListSubscribers(ctx context.Context, c *app.RequestContext) {
	channelId, err := pathID(c, "channel_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	page, limit, err := pageParams(c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewSubscriptionService(ctx).SubscriberList(channelId, page, limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func ListSubscriptions(ctx context.Context, c *app.RequestContext) {
	subscriberId, err := pathID(c, "subscriber_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	page, limit, err := pageParams(c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewSubscriptionService(ctx).SubscriptionList(subscriberId, page, limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
