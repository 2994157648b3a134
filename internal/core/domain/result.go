package domain

// BuildResult is the outcome of one package's build decision.
type BuildResult struct {
	// OutputDir holds the package's artifacts: a fresh build directory when
	// the package was rebuilt, the published pool directory when the
	// published artifact is already current.
	OutputDir string

	// Publish is true when the archive must be republished for this package.
	Publish bool

	// Version is the candidate version the decision was made against,
	// empty for packages outside the package index.
	Version string
}

// BuildStatus accumulates build results across one run. The archive is
// republished only when at least one package required a rebuild.
type BuildStatus struct {
	// OutputDirs are the artifact directories of every package, in
	// configuration order.
	OutputDirs []string

	// Publish is true when any package required a rebuild.
	Publish bool
}

// Add folds one result into the status.
func (s *BuildStatus) Add(r BuildResult) {
	s.OutputDirs = append(s.OutputDirs, r.OutputDir)
	s.Publish = s.Publish || r.Publish
}
