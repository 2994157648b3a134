package ports

import "context"

// RepoManager drives the repository tool that assembles archive metadata.
//
//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=mocks/mock_repo.go -package=mocks
type RepoManager interface {
	// RepoExists reports whether the named repo resource exists. A tool
	// failure counts as absent; recreation handles both the same way.
	RepoExists(ctx context.Context, name string) bool

	// PublishExists reports whether a publish resource exists for the
	// distribution.
	PublishExists(ctx context.Context, distribution string) bool

	// DropPublish removes the publish resource for the distribution.
	DropPublish(ctx context.Context, distribution string) error

	// DropRepo removes the named repo resource.
	DropRepo(ctx context.Context, name string) error

	// CreateRepo creates a repo resource for the component and distribution.
	CreateRepo(ctx context.Context, name, component, distribution string) error

	// AddPackages adds every artifact under dir to the named repo.
	AddPackages(ctx context.Context, name, dir string) error

	// Publish publishes the named repo for the distribution, unsigned,
	// for the configured architecture.
	Publish(ctx context.Context, name, distribution string) error

	// PublicDir returns the directory the tool publishes into.
	PublicDir() string
}
