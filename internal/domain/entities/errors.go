package entities

import "errors"

// Fatal conditions. Any of these ends the run with a non-zero exit status.
var (
	ErrConfigurationMissing = errors.New("thutor is not configured")
	ErrInvalidTarget        = errors.New("not a valid file or repository URL")
	ErrRepositoryNotFound   = errors.New("repository does not seem to exist")
	ErrCloneFailed          = errors.New("failed to clone repository")
	ErrDownloadFailed       = errors.New("failed to download remote file")
)

// Per-file skips. These are reported and counted, never fatal.
var (
	ErrNotText       = errors.New("not a text file")
	ErrOutsideTarget = errors.New("path escapes the target")
)
