package pagemeta

import "context"

// Fetcher retrieves HTML content from URLs. The extraction engine
// itself never performs network I/O; fetching exists as a convenience
// for hosts that want fetch-then-extract in one tool.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
