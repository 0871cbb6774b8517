package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/thutor/internal/domain/entities"
	"github.com/rios0rios0/thutor/internal/domain/repositories"
)

const (
	githubTokenUser = "x-access-token"
	gitlabTokenUser = "oauth2"
)

// SourceRepository implements repositories.SourceRepository with go-git,
// so no git binary is required on the host.
type SourceRepository struct{}

// NewSourceRepository creates a new go-git backed source repository.
func NewSourceRepository() repositories.SourceRepository {
	return &SourceRepository{}
}

// Exists lists the remote references, the in-process equivalent of
// `git ls-remote`. An empty repository still exists.
func (r *SourceRepository) Exists(ctx context.Context, source entities.RemoteSource) error {
	remote := gogit.NewRemote(memory.NewStorage(), &gitconfig.RemoteConfig{
		Name: gogit.DefaultRemoteName,
		URLs: []string{source.URL},
	})

	refs, err := remote.ListContext(ctx, &gogit.ListOptions{Auth: AuthFor(source)})
	if err != nil {
		if errors.Is(err, transport.ErrEmptyRemoteRepository) {
			logger.Warnf("Repository %s is empty", source.URL)
			return nil
		}
		return fmt.Errorf("git ls-remote %s: %w", source.URL, err)
	}

	logger.Debugf("Remote %s advertises %d references", source.URL, len(refs))
	return nil
}

// Clone copies the default branch and its history into dir.
func (r *SourceRepository) Clone(ctx context.Context, source entities.RemoteSource, dir string) error {
	_, err := gogit.PlainCloneContext(ctx, dir, false, &gogit.CloneOptions{
		URL:  source.URL,
		Auth: AuthFor(source),
	})
	if err != nil {
		if errors.Is(err, transport.ErrEmptyRemoteRepository) {
			logger.Warnf("Repository %s is empty, nothing to analyze", source.URL)
			return nil
		}
		return fmt.Errorf("git clone %s: %w", source.URL, err)
	}
	return nil
}

// AuthFor builds HTTP basic auth from the source token, or nil for anonymous access.
func AuthFor(source entities.RemoteSource) transport.AuthMethod {
	if source.Token == "" {
		return nil
	}
	username := githubTokenUser
	if source.Provider == "gitlab" {
		username = gitlabTokenUser
	}
	return &githttp.BasicAuth{Username: username, Password: source.Token}
}
