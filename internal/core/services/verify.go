package services

import (
	"context"
	"errors"
	"time"

	"github.com/MullaAhmed/claude-skill-generator/internal/core/domain"
	"github.com/MullaAhmed/claude-skill-generator/internal/core/ports/driven"
	"github.com/MullaAhmed/claude-skill-generator/internal/logger"
)

const (
	// MaxVerifyAttempts is the maximum number of attempts for a single
	// verification, including the first.
	MaxVerifyAttempts = 3

	// VerifyRetryDelay is the initial delay between retries; it doubles
	// per attempt.
	VerifyRetryDelay = time.Second
)

// Verifier confirms a repository exists and fetches its metadata.
// Transient network failures are retried with bounded exponential backoff;
// every other failure kind is terminal and returned immediately.
type Verifier struct {
	client      driven.RepositoryClient
	maxAttempts int
	retryDelay  time.Duration
}

// NewVerifier creates a verifier with the default retry policy.
func NewVerifier(client driven.RepositoryClient) *Verifier {
	return &Verifier{
		client:      client,
		maxAttempts: MaxVerifyAttempts,
		retryDelay:  VerifyRetryDelay,
	}
}

// Verify fetches metadata for ref. The call has no side effects beyond the
// network request.
func (v *Verifier) Verify(ctx context.Context, ref domain.RepositoryReference) (*domain.RepositoryMetadata, error) {
	delay := v.retryDelay

	var lastErr error
	for attempt := 1; attempt <= v.maxAttempts; attempt++ {
		metadata, err := v.client.GetMetadata(ctx, ref)
		if err == nil {
			return metadata, nil
		}
		lastErr = err

		if !errors.Is(err, domain.ErrTransientNetwork) || attempt == v.maxAttempts {
			return nil, err
		}

		logger.Warn("Transient error verifying %s (attempt %d/%d), retrying in %s: %v",
			ref.FullName(), attempt, v.maxAttempts, delay, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return nil, lastErr
}
