//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/thutor/internal/domain/entities"
)

func TestResolveTokenFromEnv(t *testing.T) {
	t.Run("should prefer GITHUB_TOKEN over GH_TOKEN", func(t *testing.T) {
		// given
		t.Setenv("GITHUB_TOKEN", "primary")
		t.Setenv("GH_TOKEN", "secondary")

		// when
		token := entities.ResolveTokenFromEnv("github")

		// then
		assert.Equal(t, "primary", token)
	})

	t.Run("should fall back to GL_TOKEN for GitLab", func(t *testing.T) {
		// given
		t.Setenv("GITLAB_TOKEN", "")
		t.Setenv("GL_TOKEN", "fallback")

		// when
		source := entities.NewRemoteSource("https://gitlab.com/g/p", "gitlab")

		// then
		assert.Equal(t, "fallback", source.Token)
		assert.Equal(t, "gitlab", source.Provider)
	})

	t.Run("should return empty for an unknown provider", func(t *testing.T) {
		// given
		t.Setenv("GITHUB_TOKEN", "primary")

		// when
		token := entities.ResolveTokenFromEnv("bitbucket")

		// then
		assert.Empty(t, token)
	})
}
