package constants

const DataFormate = "2006-01-02 15:04:05"

// Pagination bounds shared by every list endpoint.
const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
	MaxLimit     int64 = 100
)

// Like target kinds.
const (
	TargetVideo   = "video"
	TargetComment = "comment"
	TargetTweet   = "tweet"
)

// Toggle results.
const (
	StateAdded   = "added"
	StateRemoved = "removed"
)
