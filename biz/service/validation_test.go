package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"vidtube.com/pkg/errno"
)

// These cases exercise request validation, which fails before any storage
// access, so they run without a database.

func TestLikeToggleRejectsUnknownTargetKind(t *testing.T) {
	_, err := NewLikeService(context.Background()).Toggle(1, "channel", 5)
	assert.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestLikeToggleRejectsBadTargetId(t *testing.T) {
	_, err := NewLikeService(context.Background()).Toggle(1, "video", 0)
	assert.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)

	_, err = NewLikeService(context.Background()).Toggle(1, "video", -3)
	assert.Error(t, err)
}

func TestSubscriptionToggleRejectsSelf(t *testing.T) {
	_, err := NewSubscriptionService(context.Background()).Toggle(9, 9)
	assert.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestSubscriptionToggleRejectsBadChannelId(t *testing.T) {
	_, err := NewSubscriptionService(context.Background()).Toggle(9, 0)
	assert.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestTweetCreateRejectsBlankContent(t *testing.T) {
	_, err := NewTweetService(context.Background()).Create(1, "\n\t ")
	assert.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestPlaylistCreateRequiresNameAndDescription(t *testing.T) {
	svc := NewPlaylistService(context.Background())

	_, err := svc.Create(1, "", "desc")
	assert.Error(t, err)

	_, err = svc.Create(1, "name", "  ")
	assert.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestVideoDetailRejectsBadId(t *testing.T) {
	_, err := NewVideoService(context.Background()).Detail(0, 1)
	assert.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}
