package raw

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rios0rios0/thutor/internal/domain/entities"
	"github.com/rios0rios0/thutor/internal/domain/repositories"
)

// ContentRepository implements repositories.ContentRepository over plain HTTP GET.
type ContentRepository struct {
	httpClient *http.Client
}

// NewContentRepository creates a new raw content repository with a default HTTP client.
func NewContentRepository() repositories.ContentRepository {
	return NewContentRepositoryWithClient(&http.Client{})
}

// NewContentRepositoryWithClient creates a new raw content repository using client.
func NewContentRepositoryWithClient(client *http.Client) *ContentRepository {
	return &ContentRepository{httpClient: client}
}

// Fetch downloads the bytes at source.URL. Any status outside 2xx fails.
func (r *ContentRepository) Fetch(ctx context.Context, source entities.RemoteSource) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, source.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if source.Token != "" {
		switch source.Provider {
		case "gitlab":
			httpReq.Header.Set("PRIVATE-TOKEN", source.Token)
		default:
			httpReq.Header.Set("Authorization", "Bearer "+source.Token)
		}
	}

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", source.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("GET %s returned status %d", source.URL, resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return content, nil
}
