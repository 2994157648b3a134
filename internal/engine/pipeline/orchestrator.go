// Package pipeline decides which archive packages need a rebuild, builds
// them and republishes the archive from the results.
package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"go.limmat.ch/packrat/internal/core/domain"
	"go.limmat.ch/packrat/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator runs the build pipeline over every configured package in
// configuration order.
type Orchestrator struct {
	oracle    ports.VersionOracle
	installer ports.Installer
	toolchain ports.Toolchain
	fetcher   ports.PatchFetcher
	pool      ports.Pool
	hasher    ports.Hasher
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	oracle ports.VersionOracle,
	installer ports.Installer,
	toolchain ports.Toolchain,
	fetcher ports.PatchFetcher,
	pool ports.Pool,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		oracle:    oracle,
		installer: installer,
		toolchain: toolchain,
		fetcher:   fetcher,
		pool:      pool,
		hasher:    hasher,
		telemetry: telemetry,
		logger:    logger,
	}
}

// RunOptions adjusts a single orchestration run.
type RunOptions struct {
	// Force rebuilds every package regardless of the published state.
	Force bool
}

// Run walks the configured packages in order, rebuilding the stale ones.
// It returns the aggregated archive status and one record per package
// processed so far. The first failure aborts the run: later packages may
// build against the failed one's artifacts.
func (o *Orchestrator) Run(
	ctx context.Context,
	cfg *domain.Config,
	state *domain.RunState,
	opts RunOptions,
) (domain.BuildStatus, []domain.PackageRecord, error) {
	var status domain.BuildStatus
	records := make([]domain.PackageRecord, 0, len(cfg.Packages))

	for i := range cfg.Packages {
		pkg := &cfg.Packages[i]

		vctx, vertex := o.telemetry.Record(ctx, pkg.Name)
		result, err := o.buildPackage(vctx, cfg, state, pkg, opts)
		if err != nil {
			err = zerr.With(err, "package", pkg.Name)
			vertex.Complete(err)
			return domain.BuildStatus{}, records, err
		}
		if !result.Publish {
			vertex.Cached()
		}
		vertex.Complete(nil)

		status.Add(result)
		records = append(records, o.summarize(pkg, result))
	}

	return status, records, nil
}

// buildPackage runs one package through the pipeline: decide, prepare,
// fetch, patch, bump, build.
func (o *Orchestrator) buildPackage(
	ctx context.Context,
	cfg *domain.Config,
	state *domain.RunState,
	pkg *domain.Package,
	opts RunOptions,
) (domain.BuildResult, error) {
	poolDir := domain.PoolDir(cfg.Archive.PublishDir, pkg.SourceName())

	// Step 1: resolve the candidate version. Packages outside the package
	// index have none; their rebuild decision is presence-based.
	var candidates []string
	if !pkg.SkipIndex {
		candidate, err := o.oracle.CandidateVersion(ctx, pkg.Name)
		if err != nil {
			return domain.BuildResult{}, err
		}
		candidates = domain.CandidateVersions(candidate)
	}

	// Step 2: check the published pool. A current artifact ends the
	// pipeline here and the published directory is handed on as-is.
	if !opts.Force && o.published(pkg, poolDir, candidates, cfg.Archive.LocalSuffix) {
		return domain.BuildResult{
			OutputDir: poolDir,
			Publish:   false,
			Version:   matchedVersion(candidates),
		}, nil
	}

	// Step 3: make the build environment ready.
	if err := o.installBuildDeps(ctx, cfg, state, pkg); err != nil {
		return domain.BuildResult{}, err
	}

	buildDir, err := os.MkdirTemp("", domain.BuildPattern)
	if err != nil {
		return domain.BuildResult{}, zerr.Wrap(err, "failed to create build directory")
	}

	// Step 4: fetch and unpack the source.
	srcDir, err := o.fetchSource(ctx, buildDir, pkg)
	if err != nil {
		return domain.BuildResult{}, err
	}

	// Step 5: apply the package's patch on top of the source tree.
	if err := o.applyPatch(ctx, buildDir, srcDir, pkg); err != nil {
		return domain.BuildResult{}, err
	}

	// Step 6: record the local revision in the changelog.
	err = o.toolchain.BumpChangelog(ctx, srcDir, cfg.Archive.LocalSuffix, pkg.ChangelogMsg, cfg.Archive.Maintainer)
	if err != nil {
		return domain.BuildResult{}, err
	}

	// Step 7: build. Artifacts land next to the source tree, in buildDir.
	if err := o.toolchain.Build(ctx, srcDir); err != nil {
		return domain.BuildResult{}, err
	}

	return domain.BuildResult{
		OutputDir: buildDir,
		Publish:   true,
		Version:   matchedVersion(candidates),
	}, nil
}

// published reports whether the pool already carries a current artifact for
// the package.
func (o *Orchestrator) published(pkg *domain.Package, poolDir string, candidates []string, suffix string) bool {
	if pkg.SkipIndex {
		return hasAnyArtifact(o.pool, poolDir, pkg.Name)
	}
	return !needsRebuild(o.pool, poolDir, pkg.Name, candidates, suffix)
}

// installBuildDeps refreshes the package index and installs the archive
// toolchain and the package's build-dependency set. The run state keeps each
// of the three steps from repeating within a run.
func (o *Orchestrator) installBuildDeps(
	ctx context.Context,
	cfg *domain.Config,
	state *domain.RunState,
	pkg *domain.Package,
) error {
	if !state.SourcesRefreshed() {
		if err := o.installer.RefreshSources(ctx); err != nil {
			return err
		}
		state.MarkSourcesRefreshed()
	}

	if !state.HasAllPackages(cfg.Archive.Toolchain...) {
		if err := o.installer.Install(ctx, cfg.Archive.Toolchain...); err != nil {
			return err
		}
	}
	state.MarkPackages(cfg.Archive.Toolchain...)

	key := pkg.DepSetKey()
	if key == "" || state.HasDepSet(key) {
		return nil
	}
	if !state.HasAllPackages(pkg.BuildDeps...) {
		if err := o.installer.Install(ctx, pkg.BuildDeps...); err != nil {
			return err
		}
	}
	state.MarkPackages(pkg.BuildDeps...)
	state.MarkDepSet(key)
	return nil
}

// fetchSource unpacks the package source into buildDir and resolves the
// unpacked tree. When the patch lives in another package's source archive,
// that archive is fetched alongside.
func (o *Orchestrator) fetchSource(ctx context.Context, buildDir string, pkg *domain.Package) (string, error) {
	if err := o.toolchain.FetchSource(ctx, buildDir, pkg); err != nil {
		return "", err
	}

	if pkg.Patch.FromArchive() {
		if err := o.toolchain.FetchSourceArchive(ctx, buildDir, pkg.Patch.Archive.Package); err != nil {
			return "", err
		}
	}

	matches, err := filepath.Glob(filepath.Join(buildDir, pkg.SourceDir))
	if err != nil {
		return "", zerr.With(domain.ErrSourceTreeNotFound, "glob", pkg.SourceDir)
	}
	for _, match := range matches {
		info, statErr := os.Stat(match)
		if statErr == nil && info.IsDir() {
			return match, nil
		}
	}
	return "", zerr.With(zerr.With(domain.ErrSourceTreeNotFound, "glob", pkg.SourceDir), "dir", buildDir)
}

// applyPatch obtains the patch text and applies it on top of the source
// tree. An apply failure is logged before aborting: a patch that stopped
// applying means the upstream source moved and needs a human.
func (o *Orchestrator) applyPatch(ctx context.Context, buildDir, srcDir string, pkg *domain.Package) error {
	patch, err := o.fetchPatch(ctx, buildDir, pkg)
	if err != nil {
		return err
	}

	if err := o.toolchain.ApplyPatch(ctx, srcDir, patch); err != nil {
		o.logger.Error(zerr.With(err, "package", pkg.Name))
		return err
	}
	return nil
}

// fetchPatch returns the package's patch text, either extracted from the
// secondary source archive fetched into buildDir or downloaded from the
// configured URL.
func (o *Orchestrator) fetchPatch(ctx context.Context, buildDir string, pkg *domain.Package) ([]byte, error) {
	if pkg.Patch.FromArchive() {
		archiveGlob := pkg.Patch.Archive.Package + "_*.orig.tar.*"
		return o.toolchain.ExtractArchiveMember(ctx, buildDir, archiveGlob, pkg.Patch.Archive.Member)
	}

	patch, err := o.fetcher.Fetch(ctx, pkg.Patch.URL)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPatchFetchFailed.Error())
	}
	return patch, nil
}

// summarize condenses one package outcome for the run journal. The
// fingerprint hashes the artifact names in the package's output directory
// so consecutive runs can be compared without reading artifact contents.
func (o *Orchestrator) summarize(pkg *domain.Package, result domain.BuildResult) domain.PackageRecord {
	record := domain.PackageRecord{
		Name:    pkg.Name,
		Version: result.Version,
		Rebuilt: result.Publish,
	}
	if names, err := o.pool.ListArtifacts(result.OutputDir); err == nil && len(names) > 0 {
		record.Fingerprint = o.hasher.HashNames(names)
	}
	return record
}

// matchedVersion returns the version a rebuild decision was made against.
func matchedVersion(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}
