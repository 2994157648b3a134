package ports

import "context"

// Installer manages OS packages on the build host.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// RefreshSources updates the package index.
	RefreshSources(ctx context.Context) error

	// Install installs the named OS packages. Installing an already
	// installed package is a no-op for the underlying tool.
	Install(ctx context.Context, pkgs ...string) error
}
