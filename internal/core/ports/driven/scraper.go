package driven

import "context"

// ScrapeResult is the content returned by an enhanced-fetch scrape.
type ScrapeResult struct {
	// Markdown is the scraped page content.
	Markdown string

	// Truncated reports whether the content was cut to a maximum size.
	Truncated bool
}

// Scraper fetches rendered page content via an enhanced-fetch service.
// The pipeline treats the scraper as optional: when it is unavailable the
// run proceeds with API metadata only.
type Scraper interface {
	// Scrape fetches the page at url as markdown.
	Scrape(ctx context.Context, url string) (*ScrapeResult, error)

	// Available reports whether the scraper is configured with credentials.
	Available() bool
}
