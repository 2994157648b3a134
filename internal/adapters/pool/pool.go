// Package pool moves built artifacts between output, staging and published
// directories.
package pool

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.limmat.ch/packrat/internal/core/domain"
	"go.trai.ch/zerr"
)

// Pool implements ports.Pool on the local filesystem.
type Pool struct{}

// NewPool creates a new Pool.
func NewPool() *Pool {
	return &Pool{}
}

// ListArtifacts returns the .deb file names in dir. A missing directory
// yields nil, nil; the caller treats it as an empty pool.
func (p *Pool) ListArtifacts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to list artifacts")
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".deb") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Stage copies every artifact from the given directories into a fresh
// staging directory and returns its path.
func (p *Pool) Stage(dirs []string) (string, error) {
	staging, err := os.MkdirTemp("", domain.StagingPattern)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrStagingFailed.Error())
	}

	for _, dir := range dirs {
		names, err := p.ListArtifacts(dir)
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrStagingFailed.Error())
		}
		for _, name := range names {
			src := filepath.Join(dir, name)
			dst := filepath.Join(staging, name)
			if err := copyFile(src, dst); err != nil {
				return "", zerr.Wrap(err, domain.ErrStagingFailed.Error())
			}
		}
	}

	return staging, nil
}

// CopyTree replaces dst with a copy of the tree rooted at src.
func (p *Pool) CopyTree(src, dst string) error {
	if err := os.RemoveAll(dst); err != nil {
		return zerr.Wrap(err, domain.ErrPublishTreeCopyFailed.Error())
	}

	err := filepath.WalkDir(src, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if entry.IsDir() {
			return os.MkdirAll(target, domain.DirPerm)
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			linked, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(linked, target)
		}
		return copyFile(path, target)
	})
	if err != nil {
		return zerr.Wrap(err, domain.ErrPublishTreeCopyFailed.Error())
	}
	return nil
}

// Remove deletes a directory tree. Missing trees are not an error.
func (p *Pool) Remove(dir string) error {
	return os.RemoveAll(dir)
}

func copyFile(src, dst string) error {
	//nolint:gosec // Paths come from the configured archive layout.
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	//nolint:gosec // Paths come from the configured archive layout.
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
