package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildVideoSortDefaults(t *testing.T) {
	order, err := BuildVideoSort("", "")
	assert.NoError(t, err)
	assert.Equal(t, "created_at desc, video_id desc", order)
}

func TestBuildVideoSortAliases(t *testing.T) {
	order, err := BuildVideoSort("createdAt", "asc")
	assert.NoError(t, err)
	assert.Equal(t, "created_at asc, video_id desc", order)

	order, err = BuildVideoSort("duration", "desc")
	assert.NoError(t, err)
	assert.Equal(t, "duration desc, video_id desc", order)

	order, err = BuildVideoSort("title", "")
	assert.NoError(t, err)
	assert.Equal(t, "title desc, video_id desc", order)
}

func TestBuildVideoSortRejectsUnknownField(t *testing.T) {
	_, err := BuildVideoSort("view_count; drop table videos", "asc")
	assert.Error(t, err)

	_, err = BuildVideoSort("owner_id", "asc")
	assert.Error(t, err)
}

func TestBuildVideoSortRejectsUnknownDirection(t *testing.T) {
	_, err := BuildVideoSort("title", "sideways")
	assert.Error(t, err)
}
