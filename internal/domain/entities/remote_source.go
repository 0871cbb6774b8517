package entities

import "os"

// RemoteSource is a network location plus the credentials used to reach it.
type RemoteSource struct {
	URL      string
	Provider string
	Token    string
}

// NewRemoteSource pairs url with the token found in the environment for provider.
func NewRemoteSource(url, provider string) RemoteSource {
	return RemoteSource{
		URL:      url,
		Provider: provider,
		Token:    ResolveTokenFromEnv(provider),
	}
}

// ResolveTokenFromEnv returns the access token configured for a hosting
// provider, or an empty string for anonymous access.
func ResolveTokenFromEnv(provider string) string {
	switch provider {
	case "github":
		if t := os.Getenv("GITHUB_TOKEN"); t != "" {
			return t
		}
		return os.Getenv("GH_TOKEN")
	case "gitlab":
		if t := os.Getenv("GITLAB_TOKEN"); t != "" {
			return t
		}
		return os.Getenv("GL_TOKEN")
	default:
		return ""
	}
}
