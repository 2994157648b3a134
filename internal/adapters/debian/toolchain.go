// Package debian drives the native packaging tools: source fetch, patching,
// changelog maintenance and binary builds.
package debian

import (
	"bytes"
	"context"
	"path/filepath"

	"go.limmat.ch/packrat/internal/core/domain"
	"go.limmat.ch/packrat/internal/core/ports"
	"go.trai.ch/zerr"
)

// Toolchain implements ports.Toolchain.
type Toolchain struct {
	runner ports.Runner
}

// NewToolchain creates a new Toolchain.
func NewToolchain(runner ports.Runner) *Toolchain {
	return &Toolchain{runner: runner}
}

// FetchSource unpacks the package source into dir. Packages carrying an
// explicit .dsc URL are fetched with dget, everything else through the
// package index.
func (t *Toolchain) FetchSource(ctx context.Context, dir string, pkg *domain.Package) error {
	if pkg.DSCURL != "" {
		return t.runner.Run(ctx, ports.Command{
			Name: "dget",
			Args: []string{"-u", pkg.DSCURL},
			Dir:  dir,
		})
	}

	return t.runner.Run(ctx, ports.Command{
		Name: "apt-get",
		Args: []string{"source", pkg.Name},
		Dir:  dir,
	})
}

// FetchSourceArchive downloads the source archive of pkg into dir without
// unpacking it.
func (t *Toolchain) FetchSourceArchive(ctx context.Context, dir, pkg string) error {
	return t.runner.Run(ctx, ports.Command{
		Name: "apt-get",
		Args: []string{"source", "--download-only", pkg},
		Dir:  dir,
	})
}

// ExtractArchiveMember streams one member out of the first archive matching
// archiveGlob under dir. The member may itself be a glob.
func (t *Toolchain) ExtractArchiveMember(ctx context.Context, dir, archiveGlob, member string) ([]byte, error) {
	matches, err := filepath.Glob(filepath.Join(dir, archiveGlob))
	if err != nil {
		return nil, zerr.With(domain.ErrSourceArchiveNotFound, "glob", archiveGlob)
	}
	if len(matches) == 0 {
		return nil, zerr.With(domain.ErrSourceArchiveNotFound, "glob", archiveGlob)
	}

	return t.runner.Output(ctx, ports.Command{
		Name: "tar",
		Args: []string{"--wildcards", "-x", "-O", "-f", matches[0], member},
		Dir:  dir,
	})
}

// ApplyPatch feeds the patch text to patch -p1 inside the source tree.
func (t *Toolchain) ApplyPatch(ctx context.Context, srcDir string, patch []byte) error {
	err := t.runner.Run(ctx, ports.Command{
		Name:  "patch",
		Args:  []string{"-p1"},
		Dir:   srcDir,
		Stdin: bytes.NewReader(patch),
	})
	if err != nil {
		return zerr.Wrap(err, domain.ErrPatchApplyFailed.Error())
	}
	return nil
}

// BumpChangelog records a new changelog entry carrying the local version
// suffix, attributed to the maintainer.
func (t *Toolchain) BumpChangelog(ctx context.Context, srcDir, suffix, msg string, m domain.Maintainer) error {
	err := t.runner.Run(ctx, ports.Command{
		Name: "dch",
		Args: []string{"--local", suffix, msg},
		Dir:  srcDir,
		Env: []string{
			"DEBFULLNAME=" + m.Name,
			"DEBEMAIL=" + m.Email,
		},
	})
	if err != nil {
		return zerr.Wrap(err, domain.ErrChangelogBumpFailed.Error())
	}
	return nil
}

// Build produces unsigned binary artifacts in the parent of srcDir.
// Upstream test suites are skipped; the rebuild carries patches, not fixes
// needing revalidation on every publish.
func (t *Toolchain) Build(ctx context.Context, srcDir string) error {
	return t.runner.Run(ctx, ports.Command{
		Name: "dpkg-buildpackage",
		Args: []string{"-b", "-us", "-uc"},
		Dir:  srcDir,
		Env:  []string{"DEB_BUILD_OPTIONS=nocheck"},
	})
}
