package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/biz/mw"
	"vidtube.com/biz/service"
	"vidtube.com/pkg/errno"
)

func ListVideos(ctx context.Context, c *app.RequestContext) {
	page, limit, err := pageParams(c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	ownerId, err := queryInt(c, "user_id", 0)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewVideoService(ctx).Search(&service.VideoSearchParams{
		ActorID:  mw.ActorID(c),
		OwnerID:  ownerId,
		Keyword:  c.Query("query"),
		SortBy:   c.Query("sortBy"),
		SortType: c.Query("sortType"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func GetVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := pathID(c, "video_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	doc, err := service.NewVideoService(ctx).Detail(videoId, mw.ActorID(c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, doc)
}

func ToggleVideoPublish(ctx context.Context, c *app.RequestContext) {
	videoId, err := pathID(c, "video_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	published, err := service.NewVideoService(ctx).TogglePublish(videoId, mw.ActorID(c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]bool{"is_published": published})
}
