package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectKeysDistinct(t *testing.T) {
	docs := []Doc{
		{"owner_id": int64(1)},
		{"owner_id": int64(2)},
		{"owner_id": int64(1)},
		{"owner_id": nil},
		{"other": int64(9)},
	}
	keys := CollectKeys(docs, "owner_id")
	assert.Equal(t, []interface{}{int64(1), int64(2)}, keys)
}

func TestCollectKeysMixedScanTypes(t *testing.T) {
	// the driver may scan the same column as int64, string or []byte
	docs := []Doc{
		{"id": int64(7)},
		{"id": "7"},
		{"id": []byte("7")},
	}
	keys := CollectKeys(docs, "id")
	assert.Len(t, keys, 1)
}

func TestAttachOne(t *testing.T) {
	base := []Doc{
		{"video_id": int64(1), "owner_id": int64(10)},
		{"video_id": int64(2), "owner_id": int64(11)},
		{"video_id": int64(3), "owner_id": int64(12)},
	}
	joined := []Doc{
		{"user_id": int64(10), "username": "alice"},
		{"user_id": int64(11), "username": "bob"},
	}
	Attach(base, joined, JoinSpec{
		LocalKey: "owner_id", ForeignKey: "user_id", As: "owner", Cardinality: One,
	})

	owner := base[0]["owner"].(Doc)
	assert.Equal(t, "alice", owner["username"])
	owner = base[1]["owner"].(Doc)
	assert.Equal(t, "bob", owner["username"])
	assert.Nil(t, base[2]["owner"])
}

func TestAttachMany(t *testing.T) {
	base := []Doc{
		{"playlist_id": int64(1)},
		{"playlist_id": int64(2)},
	}
	joined := []Doc{
		{"playlist_id": int64(1), "video_id": int64(100)},
		{"playlist_id": int64(1), "video_id": int64(101)},
	}
	Attach(base, joined, JoinSpec{
		LocalKey: "playlist_id", ForeignKey: "playlist_id", As: "videos", Cardinality: Many,
	})

	videos := base[0]["videos"].([]Doc)
	assert.Len(t, videos, 2)
	assert.Equal(t, int64(100), videos[0]["video_id"])

	// absent group attaches an empty list, never nil
	videos = base[1]["videos"].([]Doc)
	assert.NotNil(t, videos)
	assert.Len(t, videos, 0)
}

func TestAttachOneCrossTypeKeys(t *testing.T) {
	base := []Doc{{"owner_id": "10"}}
	joined := []Doc{{"user_id": int64(10), "username": "alice"}}
	Attach(base, joined, JoinSpec{
		LocalKey: "owner_id", ForeignKey: "user_id", As: "owner", Cardinality: One,
	})
	owner := base[0]["owner"].(Doc)
	assert.Equal(t, "alice", owner["username"])
}

func TestWithForeignKey(t *testing.T) {
	fields := []string{"username", "avatar_url"}
	projected := withForeignKey(fields, "user_id")
	assert.Equal(t, []string{"username", "avatar_url", "user_id"}, projected)
	assert.Equal(t, []string{"username", "avatar_url"}, fields)

	already := withForeignKey([]string{"user_id", "username"}, "user_id")
	assert.Equal(t, []string{"user_id", "username"}, already)
}

func TestStripInjectedKeyOmitsUnrequestedForeignKey(t *testing.T) {
	base := []Doc{{"subscription_id": int64(1), "subscriber_id": int64(10)}}
	joined := []Doc{{"user_id": int64(10), "username": "alice", "full_name": "Alice", "avatar_url": "a.png"}}
	spec := JoinSpec{
		LocalKey: "subscriber_id", ForeignKey: "user_id", As: "subscriber",
		Fields:      []string{"username", "full_name", "avatar_url"},
		Cardinality: One,
	}
	Attach(base, joined, spec)
	stripInjectedKey(joined, spec)

	profile := base[0]["subscriber"].(Doc)
	assert.NotContains(t, profile, "user_id")
	assert.Equal(t, "alice", profile["username"])
	assert.Equal(t, "Alice", profile["full_name"])
	assert.Equal(t, "a.png", profile["avatar_url"])
}

func TestStripInjectedKeyKeepsRequestedForeignKey(t *testing.T) {
	joined := []Doc{{"user_id": int64(10), "username": "alice"}}
	stripInjectedKey(joined, JoinSpec{
		ForeignKey: "user_id",
		Fields:     []string{"user_id", "username"},
	})
	assert.Contains(t, joined[0], "user_id")
}

func TestStripInjectedKeySkipsFullSelection(t *testing.T) {
	joined := []Doc{{"user_id": int64(10), "username": "alice"}}
	stripInjectedKey(joined, JoinSpec{ForeignKey: "user_id"})
	assert.Contains(t, joined[0], "user_id")
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "", keyString(nil))
	assert.Equal(t, "7", keyString(int64(7)))
	assert.Equal(t, "7", keyString("7"))
	assert.Equal(t, "7", keyString([]byte("7")))
}
