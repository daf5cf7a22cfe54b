// Package firecrawl implements the optional enhanced-fetch path: scraping
// rendered documentation pages through the Firecrawl API. The pipeline
// degrades gracefully when no API key is configured.
package firecrawl
