package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MullaAhmed/claude-skill-generator/internal/core/domain"
)

const repositoryJSON = `{
	"full_name": "axios/axios",
	"description": "Promise based HTTP client for the browser and node.js",
	"default_branch": "v1.x",
	"topics": ["http", "promise"],
	"homepage": "https://axios-http.com",
	"stargazers_count": 104000,
	"archived": false,
	"fork": false,
	"language": "JavaScript",
	"license": {"spdx_id": "MIT", "name": "MIT License"},
	"created_at": "2014-08-18T22:33:37Z",
	"updated_at": "2024-06-01T12:00:00Z"
}`

// newTestClient wires a client to a local test server. The enterprise URL
// setup prefixes every request path with /api/v3/.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClientWithHTTPClient(server.Client(), server.URL)
	require.NoError(t, err)
	return client
}

// staticTokenProvider implements driven.TokenProvider with a fixed token.
type staticTokenProvider string

func (s staticTokenProvider) GetToken(_ context.Context) (string, error) {
	return string(s), nil
}

func axiosRef(t *testing.T) domain.RepositoryReference {
	t.Helper()
	ref, err := domain.ParseReference("github.com/axios/axios")
	require.NoError(t, err)
	return ref
}

func TestClient_GetMetadata(t *testing.T) {
	t.Run("maps the repository response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v3/repos/axios/axios", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, repositoryJSON)
		})

		metadata, err := client.GetMetadata(context.Background(), axiosRef(t))

		require.NoError(t, err)
		assert.Equal(t, "axios/axios", metadata.FullName)
		assert.Equal(t, "Promise based HTTP client for the browser and node.js", metadata.Description)
		assert.Equal(t, "v1.x", metadata.DefaultBranch)
		assert.Equal(t, []string{"http", "promise"}, metadata.Topics)
		assert.Equal(t, "https://axios-http.com", metadata.Homepage)
		assert.Equal(t, 104000, metadata.StarCount)
		assert.False(t, metadata.IsArchived)
		assert.False(t, metadata.IsFork)
		assert.Equal(t, "JavaScript", metadata.PrimaryLanguage)
		assert.Equal(t, "MIT", metadata.License)
		assert.Equal(t, time.Date(2014, 8, 18, 22, 33, 37, 0, time.UTC), metadata.CreatedAt)
	})

	t.Run("defaults optional fields", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"full_name": "axios/axios"}`)
		})

		metadata, err := client.GetMetadata(context.Background(), axiosRef(t))

		require.NoError(t, err)
		assert.Equal(t, []string{}, metadata.Topics)
		assert.Equal(t, "main", metadata.DefaultBranch)
		assert.Empty(t, metadata.License)
	})

	t.Run("updates the rate limiter from response headers", func(t *testing.T) {
		reset := time.Now().Add(30 * time.Minute).Unix()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderRateLimit, "5000")
			w.Header().Set(HeaderRateRemaining, "4821")
			w.Header().Set(HeaderRateReset, fmt.Sprintf("%d", reset))
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, repositoryJSON)
		})

		_, err := client.GetMetadata(context.Background(), axiosRef(t))

		require.NoError(t, err)
		assert.Equal(t, 4821, client.RateLimiter().Remaining())
		assert.Equal(t, 5000, client.RateLimiter().Limit())
		assert.Equal(t, time.Unix(reset, 0), client.RateLimiter().ResetTime())
	})

	t.Run("classifies 404 as not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message": "Not Found"}`)
		})

		_, err := client.GetMetadata(context.Background(), axiosRef(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRepoNotFound)
	})

	t.Run("classifies exhausted 403 as rate limited", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderRateLimit, "60")
			w.Header().Set(HeaderRateRemaining, "0")
			w.Header().Set(HeaderRateReset, fmt.Sprintf("%d", time.Now().Add(time.Hour).Unix()))
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"message": "API rate limit exceeded"}`)
		})

		_, err := client.GetMetadata(context.Background(), axiosRef(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRateLimited)
		assert.NotErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("classifies 403 with quota left as forbidden", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderRateLimit, "60")
			w.Header().Set(HeaderRateRemaining, "42")
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"message": "Must have admin rights"}`)
		})

		_, err := client.GetMetadata(context.Background(), axiosRef(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.NotErrorIs(t, err, domain.ErrRateLimited)
	})

	t.Run("classifies 401 as forbidden", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"message": "Bad credentials"}`)
		})

		_, err := client.GetMetadata(context.Background(), axiosRef(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("classifies server errors as transient", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			fmt.Fprint(w, `{"message": "upstream error"}`)
		})

		_, err := client.GetMetadata(context.Background(), axiosRef(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrTransientNetwork)
	})

	t.Run("lazy initialisation is safe for concurrent workers", func(t *testing.T) {
		client := NewClient(staticTokenProvider("ghp-test"), nil)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, client.ensureClient(context.Background()))
			}()
		}
		wg.Wait()

		assert.NotNil(t, client.gh)
	})

	t.Run("classifies connection failures as transient", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		client, err := NewClientWithHTTPClient(server.Client(), server.URL)
		require.NoError(t, err)
		server.Close()

		_, err = client.GetMetadata(context.Background(), axiosRef(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrTransientNetwork)
	})
}
