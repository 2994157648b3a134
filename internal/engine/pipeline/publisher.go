package pipeline

import (
	"context"

	"go.limmat.ch/packrat/internal/core/domain"
	"go.limmat.ch/packrat/internal/core/ports"
	"go.trai.ch/zerr"
)

// commitMessage is the fixed message used when the published tree is
// committed from a CI run.
const commitMessage = "Update published archive"

// publishVertexName labels the archive step in the progress output.
const publishVertexName = "publish"

// Publisher tears the archive down and republishes it from staged artifacts.
type Publisher struct {
	pool      ports.Pool
	repo      ports.RepoManager
	vcs       ports.VCS
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewPublisher creates a new Publisher.
func NewPublisher(
	pool ports.Pool,
	repo ports.RepoManager,
	vcs ports.VCS,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Publisher {
	return &Publisher{
		pool:      pool,
		repo:      repo,
		vcs:       vcs,
		telemetry: telemetry,
		logger:    logger,
	}
}

// PublishOptions adjusts a single publish.
type PublishOptions struct {
	// CI commits and pushes the published tree after a successful publish.
	CI bool
}

// Publish replaces the published archive with the run's artifacts. When no
// package was rebuilt the archive is left untouched.
func (p *Publisher) Publish(ctx context.Context, cfg *domain.Config, status domain.BuildStatus, opts PublishOptions) error {
	if !status.Publish {
		p.logger.Info("archive is up to date, nothing to publish")
		return nil
	}

	ctx, vertex := p.telemetry.Record(ctx, publishVertexName)
	err := p.republish(ctx, cfg, status, opts)
	vertex.Complete(err)
	return err
}

// republish rebuilds the archive metadata from scratch. Staging happens
// before any teardown: packages that did not rebuild are staged straight out
// of the published tree that is about to be removed, and an empty staging
// directory aborts the publish while the old archive is still intact.
func (p *Publisher) republish(ctx context.Context, cfg *domain.Config, status domain.BuildStatus, opts PublishOptions) error {
	staged, err := p.pool.Stage(status.OutputDirs)
	if err != nil {
		return err
	}
	names, err := p.pool.ListArtifacts(staged)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return zerr.With(domain.ErrNoArtifacts, "staging_dir", staged)
	}

	if err := p.pool.Remove(cfg.Archive.PublishDir); err != nil {
		return err
	}

	repo, codename := cfg.Archive.Repo, cfg.Archive.Codename
	if p.repo.RepoExists(ctx, repo) {
		if p.repo.PublishExists(ctx, codename) {
			if err := p.repo.DropPublish(ctx, codename); err != nil {
				return err
			}
		}
		if err := p.repo.DropRepo(ctx, repo); err != nil {
			return err
		}
	}

	if err := p.repo.CreateRepo(ctx, repo, domain.PoolComponent, codename); err != nil {
		return err
	}
	if err := p.repo.AddPackages(ctx, repo, staged); err != nil {
		return err
	}
	if err := p.repo.Publish(ctx, repo, codename); err != nil {
		return err
	}

	if err := p.pool.CopyTree(p.repo.PublicDir(), cfg.Archive.PublishDir); err != nil {
		return err
	}

	if !opts.CI {
		return nil
	}
	return p.vcs.CommitAndPush(ctx, cfg.Archive.PublishDir, commitMessage)
}
