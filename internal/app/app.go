// Package app implements the application layer for packrat.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.limmat.ch/packrat/internal/core/domain"
	"go.limmat.ch/packrat/internal/core/ports"
	"go.limmat.ch/packrat/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// Environment variables seeding the run state. CI images bake the toolchain
// and common build dependencies into the image and advertise them here so a
// run does not reinstall them or refresh the package index.
const (
	EnvPreinstalledPackages  = "PACKRAT_PREINSTALLED_PACKAGES"
	EnvPreinstalledBuildDeps = "PACKRAT_PREINSTALLED_BUILD_DEPS"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	detector     ports.EnvDetector
	journal      ports.Journal
	logger       ports.Logger
	orchestrator *pipeline.Orchestrator
	publisher    *pipeline.Publisher

	projectDir string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	detector ports.EnvDetector,
	journal ports.Journal,
	log ports.Logger,
	orchestrator *pipeline.Orchestrator,
	publisher *pipeline.Publisher,
) *App {
	return &App{
		configLoader: loader,
		detector:     detector,
		journal:      journal,
		logger:       log,
		orchestrator: orchestrator,
		publisher:    publisher,
	}
}

// SetProjectDir overrides where project discovery starts. Accepts the
// project directory or a path to its configuration file.
func (a *App) SetProjectDir(path string) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		path = filepath.Dir(path)
	}
	a.projectDir = path
}

// projectStart returns the directory project discovery starts from.
func (a *App) projectStart() string {
	if a.projectDir == "" {
		return "."
	}
	return a.projectDir
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Force rebuilds every package regardless of the published state.
	Force bool

	// CI commits and pushes the published tree even when no CI environment
	// is detected.
	CI bool
}

// Run executes one build-and-publish pass over the configured archive. The
// returned record reflects the run even when it failed; it is journaled
// either way.
func (a *App) Run(ctx context.Context, opts RunOptions) (*domain.RunRecord, error) {
	// 1. Locate the project and load the configuration.
	root, err := a.configLoader.DiscoverRoot(a.projectStart())
	if err != nil {
		return nil, err
	}
	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Pin the target distribution. An unset codename means "whatever this
	// host runs".
	if cfg.Archive.Codename == "" {
		codename, detectErr := a.detector.Codename()
		if detectErr != nil {
			return nil, detectErr
		}
		cfg.Archive.Codename = codename
	}

	// 3. Seed the run state from the environment.
	state := domain.NewRunState(cfg.Archive.Codename, os.Geteuid() == 0)
	seedRunState(state)
	if !state.Privileged() {
		a.logger.Info("running unprivileged, package installs are elevated with sudo")
	}

	record := &domain.RunRecord{
		ID:      uuid.NewString(),
		Started: time.Now().UTC(),
	}

	// 4. Build, then republish when anything changed.
	status, packages, runErr := a.orchestrator.Run(ctx, cfg, state, pipeline.RunOptions{Force: opts.Force})
	record.Packages = packages

	if runErr == nil {
		ci := opts.CI || a.detector.CI()
		if pubErr := a.publisher.Publish(ctx, cfg, status, pipeline.PublishOptions{CI: ci}); pubErr != nil {
			runErr = pubErr
		} else {
			record.Published = status.Publish
		}
	}

	// 5. Journal the run. A journal failure must not mask the run outcome.
	record.Finished = time.Now().UTC()
	if journalErr := a.journal.Append(root, *record); journalErr != nil {
		a.logger.Error(zerr.Wrap(journalErr, "failed to journal run"))
	}

	if runErr != nil {
		return record, runErr
	}
	return record, nil
}

// Status returns the most recent journaled run, nil when none was recorded.
func (a *App) Status(_ context.Context) (*domain.RunRecord, error) {
	root, err := a.configLoader.DiscoverRoot(a.projectStart())
	if err != nil {
		return nil, err
	}
	return a.journal.Last(root)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Journal bool
	Staging bool
}

// Clean removes pipeline bookkeeping based on the provided options.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	var errs error

	// Helper to remove a directory and log the action
	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if options.Journal {
		root, err := a.configLoader.DiscoverRoot(a.projectStart())
		if err != nil {
			errs = errors.Join(errs, err)
		} else {
			remove(filepath.Join(root, domain.DefaultJournalPath()), "run journal")
		}
	}

	if options.Staging {
		for _, pattern := range []string{domain.StagingPattern, domain.BuildPattern} {
			matches, err := filepath.Glob(filepath.Join(os.TempDir(), pattern))
			if err != nil {
				continue
			}
			for _, dir := range matches {
				remove(dir, filepath.Base(dir))
			}
		}
	}

	return errs
}

// seedRunState marks the environment-provided package lists as installed.
// Any seeding also suppresses the package index refresh: an image that bakes
// packages in is assumed to be freshly built.
func seedRunState(state *domain.RunState) {
	seeded := false
	for _, key := range []string{EnvPreinstalledPackages, EnvPreinstalledBuildDeps} {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		state.MarkPackages(strings.Fields(value)...)
		seeded = true
	}
	if seeded {
		state.MarkSourcesRefreshed()
	}
}
