package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rios0rios0/thutor/internal/domain/entities"
	"github.com/rios0rios0/thutor/internal/domain/repositories"
)

const (
	tagsPath        = "/api/tags"
	contentTypeJSON = "application/json"
	errorBodyLimit  = 4096
)

// GenerationRepository implements repositories.GenerationRepository for the
// Ollama HTTP API. No client timeout is set: calls block until the service
// answers or the transport gives up.
type GenerationRepository struct {
	httpClient *http.Client
}

// NewGenerationRepository creates a new Ollama repository with a default HTTP client.
func NewGenerationRepository() repositories.GenerationRepository {
	return NewGenerationRepositoryWithClient(&http.Client{})
}

// NewGenerationRepositoryWithClient creates a new Ollama repository using client.
func NewGenerationRepositoryWithClient(client *http.Client) *GenerationRepository {
	return &GenerationRepository{httpClient: client}
}

// Generate posts {model, prompt, stream} to the endpoint and decodes the
// "response" field. A missing or null field is reported as unanswered.
func (r *GenerationRepository) Generate(
	ctx context.Context,
	request entities.GenerationRequest,
) (entities.GenerationResult, error) {
	body, err := json.Marshal(generateRequest{
		Model:  request.Model,
		Prompt: request.Prompt,
		Stream: request.Stream,
	})
	if err != nil {
		return entities.GenerationResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, request.Endpoint, bytes.NewReader(body))
	if err != nil {
		return entities.GenerationResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentTypeJSON)

	var decoded generateResponse
	if doErr := r.do(httpReq, &decoded); doErr != nil {
		return entities.GenerationResult{}, doErr
	}

	if decoded.Response == nil {
		return entities.GenerationResult{}, nil
	}
	return entities.GenerationResult{Response: *decoded.Response, Answered: true}, nil
}

// ListModels queries /api/tags on the host serving endpoint.
func (r *GenerationRepository) ListModels(ctx context.Context, endpoint string) ([]string, error) {
	tagsURL, err := tagsURLFor(endpoint)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, tagsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var decoded tagsResponse
	if doErr := r.do(httpReq, &decoded); doErr != nil {
		return nil, doErr
	}

	names := make([]string, 0, len(decoded.Models))
	for _, model := range decoded.Models {
		names = append(names, model.Name)
	}
	return names, nil
}

func (r *GenerationRepository) do(httpReq *http.Request, target any) error {
	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func tagsURLFor(endpoint string) (string, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid endpoint %q: scheme and host are required", endpoint)
	}
	return (&url.URL{Scheme: parsed.Scheme, Host: parsed.Host, Path: tagsPath}).String(), nil
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response *string `json:"response"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}
