// Package github implements the hosting API side of repository
// verification. It wraps the go-github client with rate limiting, error
// classification and the metadata mapping required by the core.
package github
