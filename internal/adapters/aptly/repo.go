// Package aptly manages archive metadata through the aptly CLI.
package aptly

import (
	"context"
	"os"
	"path/filepath"

	"go.limmat.ch/packrat/internal/core/domain"
	"go.limmat.ch/packrat/internal/core/ports"
)

// RepoManager implements ports.RepoManager.
type RepoManager struct {
	runner ports.Runner
	logger ports.Logger
}

// NewRepoManager creates a new RepoManager.
func NewRepoManager(runner ports.Runner, logger ports.Logger) *RepoManager {
	return &RepoManager{runner: runner, logger: logger}
}

// RepoExists reports whether the named repo exists. A failing show command
// counts as absent so the caller falls through to recreation.
func (r *RepoManager) RepoExists(ctx context.Context, name string) bool {
	err := r.runner.Run(ctx, ports.Command{
		Name: "aptly",
		Args: []string{"repo", "show", name},
	})
	return err == nil
}

// PublishExists reports whether a publish exists for the distribution.
func (r *RepoManager) PublishExists(ctx context.Context, distribution string) bool {
	err := r.runner.Run(ctx, ports.Command{
		Name: "aptly",
		Args: []string{"publish", "show", distribution},
	})
	return err == nil
}

// DropPublish removes the publish for the distribution.
func (r *RepoManager) DropPublish(ctx context.Context, distribution string) error {
	return r.runner.Run(ctx, ports.Command{
		Name: "aptly",
		Args: []string{"publish", "drop", distribution},
	})
}

// DropRepo removes the named repo.
func (r *RepoManager) DropRepo(ctx context.Context, name string) error {
	return r.runner.Run(ctx, ports.Command{
		Name: "aptly",
		Args: []string{"repo", "drop", name},
	})
}

// CreateRepo creates a repo scoped to the component and distribution.
func (r *RepoManager) CreateRepo(ctx context.Context, name, component, distribution string) error {
	return r.runner.Run(ctx, ports.Command{
		Name: "aptly",
		Args: []string{
			"repo", "create",
			"-component=" + component,
			"-distribution=" + distribution,
			name,
		},
	})
}

// AddPackages adds every artifact under dir to the named repo.
func (r *RepoManager) AddPackages(ctx context.Context, name, dir string) error {
	return r.runner.Run(ctx, ports.Command{
		Name: "aptly",
		Args: []string{"repo", "add", name, dir},
	})
}

// Publish publishes the named repo unsigned for the distribution.
func (r *RepoManager) Publish(ctx context.Context, name, distribution string) error {
	return r.runner.Run(ctx, ports.Command{
		Name: "aptly",
		Args: []string{
			"publish", "repo",
			"-distribution=" + distribution,
			"-architectures=" + domain.PublishArch,
			"--skip-signing",
			name,
		},
	})
}

// PublicDir returns the tree aptly publishes into.
func (r *RepoManager) PublicDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		r.logger.Error(err)
		return filepath.Join(".aptly", "public")
	}
	return filepath.Join(home, ".aptly", "public")
}
