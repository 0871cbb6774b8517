package repositories

import (
	"context"

	"github.com/rios0rios0/thutor/internal/domain/entities"
)

// SourceRepository abstracts the version-control remote a repository target lives on.
type SourceRepository interface {
	// Exists lists the remote references; any failure means the repository
	// cannot be used.
	Exists(ctx context.Context, source entities.RemoteSource) error

	// Clone copies the full repository tree into dir. The returned error
	// carries the transport diagnostic verbatim.
	Clone(ctx context.Context, source entities.RemoteSource, dir string) error
}

// ContentRepository downloads raw file content.
type ContentRepository interface {
	// Fetch performs a blocking GET; transport errors and non-2xx statuses fail.
	Fetch(ctx context.Context, source entities.RemoteSource) ([]byte, error)
}
