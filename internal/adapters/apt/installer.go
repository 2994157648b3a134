package apt

import (
	"context"

	"go.limmat.ch/packrat/internal/core/ports"
)

// Installer implements ports.Installer using apt-get.
type Installer struct {
	runner ports.Runner
}

// NewInstaller creates a new Installer.
func NewInstaller(runner ports.Runner) *Installer {
	return &Installer{runner: runner}
}

// RefreshSources updates the package index.
func (i *Installer) RefreshSources(ctx context.Context) error {
	return i.runner.Run(ctx, ports.Command{
		Name:    "apt-get",
		Args:    []string{"update"},
		Elevate: true,
	})
}

// Install installs the named OS packages non-interactively.
func (i *Installer) Install(ctx context.Context, pkgs ...string) error {
	if len(pkgs) == 0 {
		return nil
	}

	args := append([]string{"install", "-y", "--no-install-recommends"}, pkgs...)
	return i.runner.Run(ctx, ports.Command{
		Name:    "apt-get",
		Args:    args,
		Env:     []string{"DEBIAN_FRONTEND=noninteractive"},
		Elevate: true,
	})
}
