package domain

// Maintainer identifies the changelog author for rebuilt packages.
type Maintainer struct {
	Name  string
	Email string
}

// ArchiveConfig describes the published archive.
type ArchiveConfig struct {
	// Repo is the repository tool's resource name.
	Repo string

	// Codename is the target distribution; empty means detect from the OS.
	Codename string

	// PublishDir is the published metadata directory (dists and pool).
	PublishDir string

	// LocalSuffix marks locally rebuilt versions, e.g. "+local".
	LocalSuffix string

	// Toolchain is the OS package set required by every build.
	Toolchain []string

	// Maintainer signs changelog entries.
	Maintainer Maintainer
}

// Config is the validated project configuration: the archive to maintain
// and the packages it carries, in build order.
type Config struct {
	Archive  ArchiveConfig
	Packages []Package
}

// PackageNames returns the configured package names in build order.
func (c *Config) PackageNames() []string {
	names := make([]string, 0, len(c.Packages))
	for i := range c.Packages {
		names = append(names, c.Packages[i].Name)
	}
	return names
}
