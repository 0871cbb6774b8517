package entities

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// TargetKind is the resolution strategy a target is dispatched to.
type TargetKind int

const (
	TargetInvalid TargetKind = iota
	TargetLocalFile
	TargetRemoteFile
	TargetRemoteRepository
)

func (k TargetKind) String() string {
	switch k {
	case TargetLocalFile:
		return "local file"
	case TargetRemoteFile:
		return "remote file"
	case TargetRemoteRepository:
		return "remote repository"
	case TargetInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

const (
	hostGitHub        = "github.com"
	hostGitLab        = "gitlab.com"
	githubRawHost     = "raw.githubusercontent.com"
	gitSuffix         = ".git"
	fallbackRunSuffix = "target"
)

// hostRule describes how a recognized hosting domain marks single-file
// references and how such references map to their raw-content URL.
type hostRule struct {
	provider     string
	blobMarker   string
	rawHost      func(host string) string
	rawMarker    string
	routeMarker  string // separates the project path from web routes; empty when the host has none
	repoSegments int    // path segments naming a repository; 0 means all before routeMarker
}

//nolint:gochecknoglobals // static lookup table
var hostRules = map[string]hostRule{
	hostGitHub: {
		provider:     "github",
		blobMarker:   "/blob/",
		rawHost:      func(string) string { return githubRawHost },
		rawMarker:    "/",
		repoSegments: 2,
	},
	hostGitLab: {
		provider:    "gitlab",
		blobMarker:  "/-/blob/",
		rawHost:     func(host string) string { return host },
		rawMarker:   "/-/raw/",
		routeMarker: "/-/",
	},
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// Target is a classified input reference. Classification happens once in
// ClassifyTarget; every later decision switches on Kind.
type Target struct {
	Raw        string
	Kind       TargetKind
	Provider   string      // "github" or "gitlab" for remote kinds
	Repository *Repository // remote kinds only
	url        *url.URL
	rule       hostRule
}

// ClassifyTarget assigns exactly one kind to raw. Remote references are
// recognized by an http(s) scheme on a known host; among those, single-file
// references (blob marker present) win over repository references. Anything
// else must be an existing regular file according to isFile.
func ClassifyTarget(raw string, isFile func(string) bool) Target {
	target := Target{Raw: raw, Kind: TargetInvalid}

	if parsed, rule, ok := parseRemote(raw); ok {
		target.url = parsed
		target.rule = rule
		target.Provider = rule.provider
		target.Repository = repositoryFromURL(parsed, rule)
		if strings.Contains(parsed.Path, rule.blobMarker) {
			target.Kind = TargetRemoteFile
		} else {
			target.Kind = TargetRemoteRepository
		}
		return target
	}

	if isFile != nil && isFile(raw) {
		target.Kind = TargetLocalFile
	}
	return target
}

// IsRegularFile reports whether path names an existing regular file.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// RawURL rewrites a remote single-file reference to its raw-content URL.
// It returns an empty string for every other kind.
func (t Target) RawURL() string {
	if t.Kind != TargetRemoteFile || t.url == nil {
		return ""
	}
	rawURL := url.URL{
		Scheme: t.url.Scheme,
		Host:   t.rule.rawHost(t.url.Host),
		Path:   strings.Replace(t.url.Path, t.rule.blobMarker, t.rule.rawMarker, 1),
	}
	return rawURL.String()
}

// CloneURL is the normalized ".git" remote of a repository target, with web
// routes such as "/tree/<branch>" and trailing slashes removed. It returns an
// empty string for every other kind.
func (t Target) CloneURL() string {
	if t.Kind != TargetRemoteRepository || t.Repository == nil {
		return ""
	}
	return t.Repository.RemoteURL
}

// FileName is the base name the target's content is written under.
func (t Target) FileName() string {
	if t.url != nil {
		return path.Base(t.url.Path)
	}
	return filepath.Base(t.Raw)
}

// RunName is the sanitized target name used as the run directory suffix:
// base name without a trailing ".git", restricted to filesystem-safe characters.
func (t Target) RunName() string {
	name := strings.TrimRight(t.Raw, "/")
	if t.url != nil {
		name = strings.TrimRight(t.url.Path, "/")
	}
	name = filepath.Base(filepath.FromSlash(name))
	name = strings.TrimSuffix(name, gitSuffix)
	name = unsafeNameChars.ReplaceAllString(name, "_")
	if name == "" || name == "." {
		return fallbackRunSuffix
	}
	return name
}

func parseRemote(raw string) (*url.URL, hostRule, bool) {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return nil, hostRule{}, false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, hostRule{}, false
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	rule, ok := hostRules[host]
	if !ok {
		return nil, hostRule{}, false
	}
	return parsed, rule, true
}

func repositoryFromURL(parsed *url.URL, rule hostRule) *Repository {
	repoPath, branch := splitRepositoryPath(parsed.Path, rule)

	organization, name := "", repoPath
	if idx := strings.LastIndex(repoPath, "/"); idx >= 0 {
		organization, name = repoPath[:idx], repoPath[idx+1:]
	}

	repo := &Repository{
		Name:         name,
		Organization: organization,
		ProviderName: rule.provider,
		RemoteURL:    (&url.URL{Scheme: parsed.Scheme, Host: parsed.Host, Path: "/" + repoPath + gitSuffix}).String(),
	}
	if branch != "" {
		repo.DefaultBranch = "refs/heads/" + branch
	}
	return repo
}

// splitRepositoryPath extracts "org/name" from a web path, plus the branch
// named by a blob reference.
func splitRepositoryPath(urlPath string, rule hostRule) (string, string) {
	repoPath, branch := urlPath, ""
	if idx := strings.Index(urlPath, rule.blobMarker); idx >= 0 {
		repoPath = urlPath[:idx]
		branch, _, _ = strings.Cut(urlPath[idx+len(rule.blobMarker):], "/")
	}
	if rule.routeMarker != "" {
		if idx := strings.Index(repoPath, rule.routeMarker); idx >= 0 {
			repoPath = repoPath[:idx]
		}
	}

	segments := strings.FieldsFunc(repoPath, func(r rune) bool { return r == '/' })
	if rule.repoSegments > 0 && len(segments) > rule.repoSegments {
		segments = segments[:rule.repoSegments]
	}
	return strings.TrimSuffix(strings.Join(segments, "/"), gitSuffix), branch
}
