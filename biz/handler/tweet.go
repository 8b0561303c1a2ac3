package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/biz/mw"
	"vidtube.com/biz/service"
	"vidtube.com/pkg/errno"
)

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	var param ContentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	tweet, err := service.NewTweetService(ctx).Create(mw.ActorID(c), param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Created, tweet)
}

func ListUserTweets(ctx context.Context, c *app.RequestContext) {
	ownerId, err := pathID(c, "user_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	page, limit, err := pageParams(c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewTweetService(ctx).ListForUser(ownerId, page, limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	tweetId, err := pathID(c, "tweet_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var param ContentParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	tweet, err := service.NewTweetService(ctx).Update(tweetId, mw.ActorID(c), param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tweet)
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	tweetId, err := pathID(c, "tweet_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewTweetService(ctx).Delete(tweetId, mw.ActorID(c)); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]int64{"tweet_id": tweetId})
}
