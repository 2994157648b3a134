package domain

import (
	"path/filepath"
	"strings"
)

const (
	// PackratDirName is the name of the internal bookkeeping directory.
	PackratDirName = ".packrat"

	// JournalDirName is the name of the run journal directory.
	JournalDirName = "journal"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "packrat.yaml"

	// PoolComponent is the archive component artifacts are published under.
	PoolComponent = "main"

	// PublishArch is the architecture the archive is published for.
	PublishArch = "amd64"

	// StagingPattern is the MkdirTemp pattern for artifact staging
	// directories.
	StagingPattern = "packrat-stage-*"

	// BuildPattern is the MkdirTemp pattern for per-package build
	// directories.
	BuildPattern = "packrat-build-*"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultPackratPath returns the default root directory for packrat metadata.
func DefaultPackratPath() string {
	return PackratDirName
}

// DefaultJournalPath returns the default path for the run journal.
// It joins .packrat and journal.
func DefaultJournalPath() string {
	return filepath.Join(PackratDirName, JournalDirName)
}

// PoolBucket returns the pool shard directory for a source package name,
// following the archive pool convention: "lib" names shard on their first
// four characters, everything else on the first letter.
func PoolBucket(source string) string {
	if strings.HasPrefix(source, "lib") && len(source) > 3 {
		return source[:4]
	}
	if source == "" {
		return ""
	}
	return source[:1]
}

// PoolDir returns the published artifact directory for a source package.
func PoolDir(publishDir, source string) string {
	return filepath.Join(publishDir, "pool", PoolComponent, PoolBucket(source), source)
}
