package config

// Packratfile represents the structure of the packrat.yaml configuration file.
type Packratfile struct {
	Version  string        `yaml:"version"`
	Archive  ArchiveDTO    `yaml:"archive"`
	Packages []*PackageDTO `yaml:"packages"`
}

// ArchiveDTO describes the archive the pipeline maintains.
type ArchiveDTO struct {
	Repo        string        `yaml:"repo"`
	Codename    string        `yaml:"codename"`
	PublishDir  string        `yaml:"publishDir"`
	LocalSuffix string        `yaml:"localSuffix"`
	Toolchain   []string      `yaml:"toolchain"`
	Maintainer  MaintainerDTO `yaml:"maintainer"`
}

// MaintainerDTO identifies the changelog author for rebuilt packages.
type MaintainerDTO struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// PackageDTO represents a package definition in the configuration.
type PackageDTO struct {
	Name      string    `yaml:"name"`
	Source    string    `yaml:"source"`
	SourceDir string    `yaml:"sourceDir"`
	BuildDeps []string  `yaml:"buildDeps"`
	Patch     *PatchDTO `yaml:"patch"`
	Changelog string    `yaml:"changelog"`
	DSCURL    string    `yaml:"dscUrl"`
	SkipIndex bool      `yaml:"skipIndex"`
}

// PatchDTO locates the patch applied on top of the package source.
type PatchDTO struct {
	URL     string           `yaml:"url"`
	Archive *ArchivePatchDTO `yaml:"archive"`
}

// ArchivePatchDTO names a member inside a secondary source archive.
type ArchivePatchDTO struct {
	Package string `yaml:"package"`
	Member  string `yaml:"member"`
}
