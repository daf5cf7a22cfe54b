// Package driven defines the outbound ports of the core: interfaces the
// core services depend on, implemented by connectors and adapters (hosting
// API client, scraper, filesystem loader, archiver, configuration).
package driven
