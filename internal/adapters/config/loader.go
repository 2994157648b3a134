// Package config provides the configuration loader for packrat.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"go.limmat.ch/packrat/internal/core/domain"
	"go.limmat.ch/packrat/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Defaults applied when the archive section leaves a field empty.
const (
	defaultRepo        = "ppa"
	defaultPublishDir  = "ppa"
	defaultLocalSuffix = "+local"
)

var validPackageNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9+.-]*$`)

// Load reads the configuration starting from the given working directory
// and returns the validated config.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	root, err := l.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}

	var packratfile Packratfile
	if err := readAndUnmarshalYAML(filepath.Join(root, domain.ConfigFileName), &packratfile); err != nil {
		return nil, err
	}

	return l.buildConfig(&packratfile)
}

// DiscoverRoot walks up from cwd to the directory containing the
// configuration file.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigNotFound.Error())
	}

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) buildConfig(packratfile *Packratfile) (*domain.Config, error) {
	if len(packratfile.Packages) == 0 {
		return nil, domain.ErrNoPackages
	}

	cfg := &domain.Config{
		Archive: buildArchive(packratfile.Archive),
	}

	// Track package names to ensure uniqueness.
	seen := make(map[string]bool, len(packratfile.Packages))

	for _, dto := range packratfile.Packages {
		pkg, err := l.buildPackage(dto)
		if err != nil {
			return nil, err
		}

		if seen[pkg.Name] {
			return nil, zerr.With(domain.ErrDuplicatePackageName, "package_name", pkg.Name)
		}
		seen[pkg.Name] = true

		cfg.Packages = append(cfg.Packages, pkg)
	}

	return cfg, nil
}

func (l *Loader) buildPackage(dto *PackageDTO) (domain.Package, error) {
	if !validPackageNameRegex.MatchString(dto.Name) {
		return domain.Package{}, zerr.With(domain.ErrInvalidPackageName, "package_name", dto.Name)
	}

	patch, err := buildPatch(dto.Patch)
	if err != nil {
		return domain.Package{}, zerr.With(err, "package_name", dto.Name)
	}

	pkg := domain.Package{
		Name:         dto.Name,
		Source:       dto.Source,
		SourceDir:    dto.SourceDir,
		BuildDeps:    dto.BuildDeps,
		Patch:        patch,
		ChangelogMsg: dto.Changelog,
		DSCURL:       dto.DSCURL,
		SkipIndex:    dto.SkipIndex,
	}

	// The unpack step appends the upstream version to the source directory.
	if pkg.SourceDir == "" {
		pkg.SourceDir = pkg.SourceName() + "-*"
	}

	if pkg.SkipIndex && pkg.DSCURL == "" {
		l.Logger.Warn(fmt.Sprintf("package %s is outside the package index but has no dscUrl; the source fetch will fail", pkg.Name))
	}

	return pkg, nil
}

func buildPatch(dto *PatchDTO) (domain.PatchSpec, error) {
	if dto == nil {
		return domain.PatchSpec{}, domain.ErrInvalidPatchSpec
	}

	hasURL := dto.URL != ""
	hasArchive := dto.Archive != nil && dto.Archive.Package != ""
	if hasURL == hasArchive {
		return domain.PatchSpec{}, domain.ErrInvalidPatchSpec
	}

	patch := domain.PatchSpec{URL: dto.URL}
	if hasArchive {
		patch.Archive = domain.ArchivePatch{
			Package: dto.Archive.Package,
			Member:  dto.Archive.Member,
		}
	}
	return patch, nil
}

func buildArchive(dto ArchiveDTO) domain.ArchiveConfig {
	archive := domain.ArchiveConfig{
		Repo:        dto.Repo,
		Codename:    dto.Codename,
		PublishDir:  dto.PublishDir,
		LocalSuffix: dto.LocalSuffix,
		Toolchain:   dto.Toolchain,
		Maintainer: domain.Maintainer{
			Name:  dto.Maintainer.Name,
			Email: dto.Maintainer.Email,
		},
	}

	if archive.Repo == "" {
		archive.Repo = defaultRepo
	}
	if archive.PublishDir == "" {
		archive.PublishDir = defaultPublishDir
	}
	if archive.LocalSuffix == "" {
		archive.LocalSuffix = defaultLocalSuffix
	}

	return archive
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is resolved from the discovered project root
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
