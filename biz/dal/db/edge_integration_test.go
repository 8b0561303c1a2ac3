package db

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/config"
)

// initTestDB connects using MYSQL_* env vars; tests that need a live
// database skip when they are absent.
func initTestDB(t *testing.T) {
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
	Init()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func TestLikeEdgeRoundTrip(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()
	const userId, targetId = int64(990001), int64(990002)

	_, _ = DeleteLike(ctx, userId, "video", targetId)

	created, err := CreateLike(ctx, userId, "video", targetId)
	require.NoError(t, err)
	assert.True(t, created)

	// a second insert loses to the unique index instead of erroring
	created, err = CreateLike(ctx, userId, "video", targetId)
	require.NoError(t, err)
	assert.False(t, created)

	count, err := GetTargetLikeCount(ctx, "video", targetId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	removed, err := DeleteLike(ctx, userId, "video", targetId)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = DeleteLike(ctx, userId, "video", targetId)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestPlaylistMembershipDedupe(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()
	const playlistId, videoId = int64(990010), int64(990011)

	_ = RemovePlaylistVideo(ctx, playlistId, videoId)

	added, err := AddPlaylistVideo(ctx, playlistId, videoId)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = AddPlaylistVideo(ctx, playlistId, videoId)
	require.NoError(t, err)
	assert.False(t, added)

	require.NoError(t, RemovePlaylistVideo(ctx, playlistId, videoId))
}
