package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/biz/mw"
	"vidtube.com/biz/service"
	"vidtube.com/pkg/errno"
)

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param PlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).Create(mw.ActorID(c), param.Name, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Created, playlist)
}

func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := pathID(c, "playlist_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	doc, err := service.NewPlaylistService(ctx).ById(playlistId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, doc)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := pathID(c, "playlist_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var param PlaylistParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).Update(playlistId, mw.ActorID(c), param.Name, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := pathID(c, "playlist_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewPlaylistService(ctx).Delete(playlistId, mw.ActorID(c)); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]int64{"playlist_id": playlistId})
}

func AddPlaylistVideo(ctx context.Context, c *app.RequestContext) {
	playlistId, err := pathID(c, "playlist_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videoId, err := pathID(c, "video_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	doc, err := service.NewPlaylistService(ctx).AddVideo(playlistId, videoId, mw.ActorID(c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, doc)
}

func RemovePlaylistVideo(ctx context.Context, c *app.RequestContext) {
	playlistId, err := pathID(c, "playlist_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videoId, err := pathID(c, "video_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	doc, err := service.NewPlaylistService(ctx).RemoveVideo(playlistId, videoId, mw.ActorID(c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, doc)
}

func ListUserPlaylists(ctx context.Context, c *app.RequestContext) {
	ownerId, err := pathID(c, "user_id")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	docs, err := service.NewPlaylistService(ctx).ListForUser(ownerId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, docs)
}
