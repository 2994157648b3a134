package ports

// Pool reads and assembles artifact directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=pool.go -destination=mocks/mock_pool.go -package=mocks
type Pool interface {
	// ListArtifacts returns the artifact file names in dir.
	// Returns nil, nil if the directory does not exist.
	ListArtifacts(dir string) ([]string, error)

	// Stage copies every artifact from the given directories into a fresh
	// staging directory and returns its path.
	Stage(dirs []string) (string, error)

	// CopyTree replaces dst with a copy of the tree rooted at src.
	CopyTree(src, dst string) error

	// Remove deletes a directory tree. Missing trees are not an error.
	Remove(dir string) error
}
