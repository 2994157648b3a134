package ports

import (
	"context"

	"go.limmat.ch/packrat/internal/core/domain"
)

// Toolchain drives the native packaging tools over one package's source tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// FetchSource unpacks the package's source into dir. The source comes
	// from the package index, or from the package's explicit .dsc URL when
	// it has one.
	FetchSource(ctx context.Context, dir string, pkg *domain.Package) error

	// FetchSourceArchive downloads the source archive of pkg into dir
	// without unpacking it.
	FetchSourceArchive(ctx context.Context, dir, pkg string) error

	// ExtractArchiveMember returns the contents of the first member matching
	// the member glob inside the first archive matching the archive glob
	// under dir.
	ExtractArchiveMember(ctx context.Context, dir, archiveGlob, member string) ([]byte, error)

	// ApplyPatch applies patch text on top of the source tree at srcDir.
	ApplyPatch(ctx context.Context, srcDir string, patch []byte) error

	// BumpChangelog records a new changelog entry with the local version
	// suffix, attributed to the maintainer.
	BumpChangelog(ctx context.Context, srcDir, suffix, msg string, m domain.Maintainer) error

	// Build produces binary artifacts in the parent directory of srcDir.
	Build(ctx context.Context, srcDir string) error
}
