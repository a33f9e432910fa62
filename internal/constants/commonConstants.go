package constants

type (
	RequestSource string
	APIStatus     string
	CachePrefix   string
	FeedType      string
)

const (
	RequestSourceWeb RequestSource = "WEB_CLIENT"
	RequestSourceCLI RequestSource = "CLI"

	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixSession CachePrefix = "SESSION_"
	CachePrefixProfile CachePrefix = "PROFILE_"
	CachePrefixFeed    CachePrefix = "FEED_"
	CachePrefixStats   CachePrefix = "STATS_"
)

const (
	FeedTypeAnnouncement FeedType = "announcement"
	FeedTypeEvent        FeedType = "event"
	FeedTypeDiscussion   FeedType = "discussion"
	FeedTypePost         FeedType = "post"
)

// FeedTypes lists every discriminant the aggregator produces, in the
// order the sources are fetched.
var FeedTypes = []FeedType{
	FeedTypeEvent,
	FeedTypeAnnouncement,
	FeedTypeDiscussion,
	FeedTypePost,
}

// FeedFilterAll is the tab value that disables type filtering.
const FeedFilterAll = "all"
