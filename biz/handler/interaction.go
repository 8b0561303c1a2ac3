package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/biz/mw"
	"vidtube.com/biz/service"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
)

func toggleLike(ctx context.Context, c *app.RequestContext, targetKind, paramName string) {
	targetId, err := pathID(c, paramName)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	state, err := service.NewLikeService(ctx).Toggle(mw.ActorID(c), targetKind, targetId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]string{"state": state})
}

func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, constants.TargetVideo, "video_id")
}

func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, constants.TargetComment, "comment_id")
}

func ToggleTweetLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, constants.TargetTweet, "tweet_id")
}

func ListLikedVideos(ctx context.Context, c *app.RequestContext) {
	page, limit, err := pageParams(c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewLikeService(ctx).LikedVideoList(mw.ActorID(c), page, limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
