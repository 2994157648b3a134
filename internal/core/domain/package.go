package domain

import (
	"sort"
	"strings"
)

// Package describes one archive member: where its source comes from, which
// patch it carries and how its rebuild decision is made.
type Package struct {
	// Name is the binary package name, used for artifact prefix matching
	// and (unless DSCURL is set) for fetching the source.
	Name string

	// Source is the source package name when it differs from Name.
	// Artifacts of a binary package live under the source's pool path.
	Source string

	// SourceDir is a glob matching the unpacked source tree inside a fresh
	// build directory. The unpack step appends the upstream version to the
	// directory name, so this is typically "<source>-*".
	SourceDir string

	// BuildDeps are the OS packages required to build, installed once per
	// dependency set per run.
	BuildDeps []string

	// Patch describes the single patch applied on top of the source tree.
	Patch PatchSpec

	// ChangelogMsg is the entry recorded when bumping the changelog.
	ChangelogMsg string

	// DSCURL, when set, fetches the source from an explicit .dsc URL
	// instead of the package index.
	DSCURL string

	// SkipIndex marks packages absent from the package index: no candidate
	// lookup is possible, so the package is rebuilt only when no artifact
	// for it has been published yet.
	SkipIndex bool
}

// SourceName returns the source package name, falling back to Name.
func (p *Package) SourceName() string {
	if p.Source != "" {
		return p.Source
	}
	return p.Name
}

// DepSetKey returns a canonical key for the package's build-dependency set,
// used to install each distinct set only once per run.
func (p *Package) DepSetKey() string {
	deps := make([]string, len(p.BuildDeps))
	copy(deps, p.BuildDeps)
	sort.Strings(deps)
	return strings.Join(deps, " ")
}

// PatchSpec locates the patch text for a package. Exactly one of URL or
// Archive is set.
type PatchSpec struct {
	// URL is fetched over HTTPS and applied as raw patch text.
	URL string

	// Archive extracts the patch from a secondary source-format archive
	// fetched alongside the package source.
	Archive ArchivePatch
}

// FromArchive reports whether the patch lives inside a source archive.
func (p PatchSpec) FromArchive() bool {
	return p.Archive.Package != ""
}

// ArchivePatch names a member inside a secondary source archive.
type ArchivePatch struct {
	// Package is the source package whose archive carries the member.
	Package string

	// Member is a glob for the member path inside the archive.
	Member string
}
