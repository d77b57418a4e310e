package ports

import "context"

type PageFetcher interface {
	// FetchPost returns the raw HTML of the download page for a thread ID.
	FetchPost(ctx context.Context, threadID string) (string, error)
}
