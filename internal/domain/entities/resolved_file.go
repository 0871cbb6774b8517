package entities

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"unicode/utf8"
)

const (
	// TextProbeSize is how many leading bytes are decoded to tell text from binary.
	TextProbeSize = 1024

	vcsMetadataName = ".git"
)

// ResolvedFile is a file discovered while materializing a target.
type ResolvedFile struct {
	SourcePath   string // absolute or scratch-relative path that is read
	RelativePath string // path within the target, mirrored under the run directory
}

// WalkCandidates lazily yields every regular file under root in lexical walk
// order, pruning any path segment named ".git". Symbolic links are never
// followed: each one is yielded as ErrOutsideTarget. Errors met while walking
// are yielded with a zero ResolvedFile so the caller can report them and keep going.
// The sequence is restartable: each range walks the tree again.
func WalkCandidates(root string) iter.Seq2[ResolvedFile, error] {
	return func(yield func(ResolvedFile, error) bool) {
		_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				if !yield(ResolvedFile{}, fmt.Errorf("failed to walk %s: %w", path, err)) {
					return fs.SkipAll
				}
				return nil
			}

			if entry.Name() == vcsMetadataName {
				if entry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if entry.IsDir() {
				return nil
			}
			if entry.Type()&fs.ModeSymlink != 0 {
				if !yield(ResolvedFile{}, fmt.Errorf("%w: %s is a symbolic link", ErrOutsideTarget, path)) {
					return fs.SkipAll
				}
				return nil
			}
			if !entry.Type().IsRegular() {
				return nil
			}

			relative, relErr := filepath.Rel(root, path)
			if relErr != nil {
				relative = entry.Name()
			}
			if !yield(ResolvedFile{SourcePath: path, RelativePath: relative}, nil) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

// ProbeText decodes at most TextProbeSize leading bytes of path as UTF-8.
// It returns ErrNotText for binary content and the underlying error when the
// path cannot be read (a directory, for instance).
func ProbeText(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	buffer := make([]byte, TextProbeSize)
	read, readErr := io.ReadFull(file, buffer)
	if readErr != nil && !errors.Is(readErr, io.EOF) && !errors.Is(readErr, io.ErrUnexpectedEOF) {
		return readErr
	}

	prefix := buffer[:read]
	if read == TextProbeSize {
		prefix = trimPartialRune(prefix)
	}
	if !utf8.Valid(prefix) {
		return ErrNotText
	}
	return nil
}

// trimPartialRune drops a multi-byte sequence cut off by the probe boundary.
func trimPartialRune(buffer []byte) []byte {
	for i := len(buffer) - 1; i >= 0 && i >= len(buffer)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(buffer[i]) {
			continue
		}
		if !utf8.FullRune(buffer[i:]) {
			return buffer[:i]
		}
		return buffer
	}
	return buffer
}
