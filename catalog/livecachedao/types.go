package livecachedao

// Record holds one pre-serialized live-streams feed payload. The table has a
// single row under PrimaryCacheKey that the refresher overwrites and the feed
// endpoint reads.
type Record struct {
	ID          string `dynamodbav:"id" ddb:"hash"`
	LiveStreams string `dynamodbav:"liveStreams"` // JSON-encoded feed payload
	UpdatedAt   int64  `dynamodbav:"updatedAt,omitempty"`
}

const PrimaryCacheKey = "main_cache"
