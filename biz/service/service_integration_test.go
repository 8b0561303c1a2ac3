package service

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/biz/dal/db"
	"vidtube.com/biz/model"
	"vidtube.com/config"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

func initServiceTestDB(t *testing.T) {
	t.Helper()
	addr := os.Getenv("MYSQL_ADDR")
	if addr == "" || testing.Short() {
		t.Skip("set MYSQL_ADDR to run database integration tests")
	}
	config.ConfigInfo.Mysql.Addr = addr
	config.ConfigInfo.Mysql.Database = envOr("MYSQL_DATABASE", "vidtube_test")
	config.ConfigInfo.Mysql.Username = envOr("MYSQL_USERNAME", "root")
	config.ConfigInfo.Mysql.Password = os.Getenv("MYSQL_PASSWORD")
	config.ConfigInfo.Mysql.Charset = envOr("MYSQL_CHARSET", "utf8mb4")
	db.Init()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// A blank comment on a missing video answers for the video first.
func TestCommentAddMissingVideoBeatsContentCheck(t *testing.T) {
	initServiceTestDB(t)
	_, err := NewCommentService(context.Background()).Add(999999901, 1, "   ")
	require.Error(t, err)
	assert.Equal(t, int64(errno.RecordNotFoundCode), errno.ConvertErr(err).ErrCode)
}

func TestCommentUpdateMissingCommentBeatsContentCheck(t *testing.T) {
	initServiceTestDB(t)
	_, err := NewCommentService(context.Background()).Update(999999902, 1, "")
	require.Error(t, err)
	assert.Equal(t, int64(errno.RecordNotFoundCode), errno.ConvertErr(err).ErrCode)
}

// A stranger sending blank content to someone else's comment is turned away
// on ownership, not on the content.
func TestCommentUpdateOwnershipBeatsContentCheck(t *testing.T) {
	initServiceTestDB(t)
	ctx := context.Background()

	comment := &model.Comment{
		CommentID: utils.GenerateEntityID(),
		VideoID:   999999903,
		OwnerID:   990021,
		Content:   "mine",
		CreatedAt: utils.Now(),
		UpdatedAt: utils.Now(),
	}
	require.NoError(t, db.CreateComment(ctx, comment))
	defer func() { _ = db.DeleteComment(ctx, comment.CommentID) }()

	_, err := NewCommentService(ctx).Update(comment.CommentID, 990022, "")
	require.Error(t, err)
	assert.Equal(t, int64(errno.AuthorizationFailedCode), errno.ConvertErr(err).ErrCode)
}

func TestTweetUpdateMissingTweetBeatsContentCheck(t *testing.T) {
	initServiceTestDB(t)
	_, err := NewTweetService(context.Background()).Update(999999904, 1, " ")
	require.Error(t, err)
	assert.Equal(t, int64(errno.RecordNotFoundCode), errno.ConvertErr(err).ErrCode)
}
