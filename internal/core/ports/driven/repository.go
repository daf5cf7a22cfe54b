package driven

import (
	"context"

	"github.com/MullaAhmed/claude-skill-generator/internal/core/domain"
)

// RepositoryClient fetches repository metadata from the remote hosting API.
// Implementations classify failures into the domain verify error kinds and
// respect a shared rate-limit budget across concurrent callers.
type RepositoryClient interface {
	// GetMetadata fetches metadata for the referenced repository.
	// Errors are classified: domain.ErrRepoNotFound, domain.ErrRateLimited,
	// domain.ErrForbidden or domain.ErrTransientNetwork.
	GetMetadata(ctx context.Context, ref domain.RepositoryReference) (*domain.RepositoryMetadata, error)
}

// TokenProvider supplies an access token for the hosting API.
type TokenProvider interface {
	// GetToken returns the token, or empty string for unauthenticated use.
	GetToken(ctx context.Context) (string, error)
}
