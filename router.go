package main

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"vidtube.com/biz/handler"
	"vidtube.com/biz/mw"
)

func register(r *server.Hertz) {
	v1 := r.Group("/api/v1")
	v1.Use(mw.JwtMiddleware.MiddlewareFunc())

	videos := v1.Group("/videos")
	{
		videos.GET("", handler.ListVideos)
		videos.GET("/:video_id", handler.GetVideo)
		videos.PATCH("/:video_id/publish", handler.ToggleVideoPublish)
		videos.POST("/:video_id/like", handler.ToggleVideoLike)

		videos.GET("/:video_id/comments", handler.ListComments)
		videos.POST("/:video_id/comments", handler.CreateComment)
		videos.PATCH("/:video_id/comments/:comment_id", handler.UpdateComment)
		videos.DELETE("/:video_id/comments/:comment_id", handler.DeleteComment)
	}

	comments := v1.Group("/comments")
	{
		comments.POST("/:comment_id/like", handler.ToggleCommentLike)
	}

	tweets := v1.Group("/tweets")
	{
		tweets.POST("", handler.CreateTweet)
		tweets.PATCH("/:tweet_id", handler.UpdateTweet)
		tweets.DELETE("/:tweet_id", handler.DeleteTweet)
		tweets.POST("/:tweet_id/like", handler.ToggleTweetLike)
	}

	likes := v1.Group("/likes")
	{
		likes.GET("/videos", handler.ListLikedVideos)
	}

	channels := v1.Group("/channels")
	{
		channels.POST("/:channel_id/subscribe", handler.ToggleSubscription)
		channels.GET("/:channel_id/subscribers", handler.ListSubscribers)
	}

	subscribers := v1.Group("/subscribers")
	{
		subscribers.GET("/:subscriber_id/channels", handler.ListSubscriptions)
	}

	playlists := v1.Group("/playlists")
	{
		playlists.POST("", handler.CreatePlaylist)
		playlists.GET("/:playlist_id", handler.GetPlaylist)
		playlists.PATCH("/:playlist_id", handler.UpdatePlaylist)
		playlists.DELETE("/:playlist_id", handler.DeletePlaylist)
		playlists.POST("/:playlist_id/videos/:video_id", handler.AddPlaylistVideo)
		playlists.DELETE("/:playlist_id/videos/:video_id", handler.RemovePlaylistVideo)
	}

	users := v1.Group("/users")
	{
		users.GET("/:user_id/playlists", handler.ListUserPlaylists)
		users.GET("/:user_id/tweets", handler.ListUserTweets)
	}
}
