package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vidtube.com/pkg/aggregate"
)

func TestCollapseProfiles(t *testing.T) {
	docs := []aggregate.Doc{
		{"subscriber_id": int64(1), "subscriber": aggregate.Doc{"username": "alice"}},
		{"subscriber_id": int64(2), "subscriber": nil},
		{"subscriber_id": int64(3), "subscriber": aggregate.Doc{"username": "carol"}},
	}
	items := collapseProfiles(docs, "subscriber")
	assert.Len(t, items, 2)
	assert.Equal(t, "alice", items[0].(aggregate.Doc)["username"])
	assert.Equal(t, "carol", items[1].(aggregate.Doc)["username"])
}

func TestCollapseProfilesEmpty(t *testing.T) {
	items := collapseProfiles(nil, "channel")
	assert.NotNil(t, items)
	assert.Len(t, items, 0)
}
