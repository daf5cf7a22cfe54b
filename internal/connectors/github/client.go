package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	gh "github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"

	"github.com/MullaAhmed/claude-skill-generator/internal/core/domain"
	"github.com/MullaAhmed/claude-skill-generator/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Ensure Client implements the interface.
var _ driven.RepositoryClient = (*Client)(nil)

// Client wraps the go-github client with rate limiting and the error
// classification the verifier depends on. A single Client is shared by all
// concurrent pipeline workers.
type Client struct {
	gh            *gh.Client
	initOnce      sync.Once
	initErr       error
	tokenProvider driven.TokenProvider
	rateLimiter   *RateLimiter
}

// NewClient creates a hosting API client. The go-github client is
// initialised lazily so the token is fetched only when needed; an empty
// token falls back to unauthenticated calls. A nil limiter gets a fresh
// one; pass a shared limiter when multiple workers must respect one quota.
func NewClient(tokenProvider driven.TokenProvider, limiter *RateLimiter) *Client {
	if limiter == nil {
		limiter = NewRateLimiter()
	}
	return &Client{
		tokenProvider: tokenProvider,
		rateLimiter:   limiter,
	}
}

// NewClientWithHTTPClient creates a client backed by a custom http.Client
// and API base URL. Used in tests against a local test server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)
	if baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("set base URL: %w", err)
		}
	}
	return &Client{
		gh:          client,
		rateLimiter: NewRateLimiter(),
	}, nil
}

// ensureClient initializes the go-github client if not already done.
// This is called lazily so we can get the token when needed. Concurrent
// workers share one Client, so the init runs exactly once.
func (c *Client) ensureClient(ctx context.Context) error {
	c.initOnce.Do(func() {
		if c.gh != nil {
			return
		}

		var token string
		if c.tokenProvider != nil {
			token, c.initErr = c.tokenProvider.GetToken(ctx)
			if c.initErr != nil {
				c.initErr = fmt.Errorf("get token: %w", c.initErr)
				return
			}
		}

		if token == "" {
			c.gh = gh.NewClient(&http.Client{Timeout: DefaultTimeout})
			return
		}

		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc := oauth2.NewClient(ctx, ts)
		tc.Timeout = DefaultTimeout
		c.gh = gh.NewClient(tc)
	})
	return c.initErr
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// GetMetadata fetches repository metadata, classified per the verify error
// taxonomy. It makes exactly one API request; retry policy belongs to the
// verifier service.
func (c *Client) GetMetadata(ctx context.Context, ref domain.RepositoryReference) (*domain.RepositoryMetadata, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, &domain.VerifyError{
			Kind:   domain.ErrTransientNetwork,
			Repo:   ref.FullName(),
			Reason: err.Error(),
		}
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	repository, resp, err := c.gh.Repositories.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		return nil, c.classify(err, resp, ref)
	}

	c.updateRateLimitFromResponse(resp)
	return mapRepository(repository), nil
}

// updateRateLimitFromResponse updates the rate limiter from response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// classify converts go-github errors into domain verify errors.
// Rate limiting is detected from the response signal (429, or 403 with the
// remaining-requests header at zero), never guessed from a bare status.
func (c *Client) classify(err error, resp *gh.Response, ref domain.RepositoryReference) error {
	repo := ref.FullName()

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &domain.VerifyError{
			Kind:   domain.ErrRateLimited,
			Repo:   repo,
			Reason: fmt.Sprintf("rate limit exceeded, resets at %s", rateLimitErr.Rate.Reset.Format(time.RFC3339)),
		}
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &domain.VerifyError{
			Kind:   domain.ErrRateLimited,
			Repo:   repo,
			Reason: "secondary rate limit exceeded",
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch code := ghErr.Response.StatusCode; {
		case code == http.StatusNotFound:
			return &domain.VerifyError{
				Kind:   domain.ErrRepoNotFound,
				Repo:   repo,
				Reason: "repository not found or private without access",
			}
		case code == http.StatusForbidden || code == http.StatusTooManyRequests:
			if c.rateLimiter.Exhausted(ghErr.Response) {
				return &domain.VerifyError{
					Kind:   domain.ErrRateLimited,
					Repo:   repo,
					Reason: fmt.Sprintf("rate limit exceeded, resets at %s", c.rateLimiter.ResetTime().Format(time.RFC3339)),
				}
			}
			return &domain.VerifyError{
				Kind:   domain.ErrForbidden,
				Repo:   repo,
				Reason: "access forbidden; the repository may be private",
			}
		case code == http.StatusUnauthorized:
			return &domain.VerifyError{
				Kind:   domain.ErrForbidden,
				Repo:   repo,
				Reason: "authentication failed; check your token",
			}
		case code >= 500:
			return &domain.VerifyError{
				Kind:   domain.ErrTransientNetwork,
				Repo:   repo,
				Reason: fmt.Sprintf("server error %d", code),
			}
		}
	}

	// Connection failures, timeouts and cancellations.
	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
		return &domain.VerifyError{
			Kind:   domain.ErrTransientNetwork,
			Repo:   repo,
			Reason: err.Error(),
		}
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	return &domain.VerifyError{
		Kind:   domain.ErrTransientNetwork,
		Repo:   repo,
		Reason: err.Error(),
	}
}

// mapRepository converts the API response into domain metadata.
// Optional fields come back as explicit empty values, never dropped.
func mapRepository(repository *gh.Repository) *domain.RepositoryMetadata {
	meta := &domain.RepositoryMetadata{
		FullName:        repository.GetFullName(),
		Description:     repository.GetDescription(),
		DefaultBranch:   repository.GetDefaultBranch(),
		Topics:          repository.Topics,
		Homepage:        repository.GetHomepage(),
		StarCount:       repository.GetStargazersCount(),
		IsArchived:      repository.GetArchived(),
		IsFork:          repository.GetFork(),
		PrimaryLanguage: repository.GetLanguage(),
		CreatedAt:       repository.GetCreatedAt().Time,
		UpdatedAt:       repository.GetUpdatedAt().Time,
	}

	if meta.Topics == nil {
		meta.Topics = []string{}
	}
	if meta.DefaultBranch == "" {
		meta.DefaultBranch = "main"
	}
	if license := repository.GetLicense(); license != nil {
		if meta.License = license.GetSPDXID(); meta.License == "" {
			meta.License = license.GetName()
		}
	}

	return meta
}
