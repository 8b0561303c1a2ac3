package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/biz/mw"
	"vidtube.com/biz/service"
	"vidtube.com/pkg/errno"
)

func CreateComment(ctx context.Context, c *app.RequestContext) {
	videoId, err := pathID(c, "video_id")
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
	comment, err := service.NewCommentService(ctx).Add(videoId, mw.ActorID(c), param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Created, comment)
}

func ListComments(ctx context.Context, c *app.RequestContext) {
	videoId, err := pathID(c, "video_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	page, limit, err := pageParams(c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewCommentService(ctx).ListForVideo(videoId, page, limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := pathID(c, "comment_id")
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
	comment, err := service.NewCommentService(ctx).Update(commentId, mw.ActorID(c), param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := pathID(c, "comment_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	deletedId, err := service.NewCommentService(ctx).Delete(commentId, mw.ActorID(c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]int64{"comment_id": deletedId})
}
