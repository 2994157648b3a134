package domain

import "go.trai.ch/zerr"

var (
	// ErrNoCandidate is returned when the package index reports no installation candidate for a package.
	ErrNoCandidate = zerr.New("no installation candidate")

	// ErrCodenameDetectFailed is returned when the distribution codename cannot be determined.
	ErrCodenameDetectFailed = zerr.New("failed to detect distribution codename")

	// ErrSourceTreeNotFound is returned when no unpacked source tree matches the package's source glob.
	ErrSourceTreeNotFound = zerr.New("source tree not found after unpack")

	// ErrSourceArchiveNotFound is returned when the secondary source archive a patch lives in is missing.
	ErrSourceArchiveNotFound = zerr.New("source archive not found")

	// ErrPatchFetchFailed is returned when patch text cannot be fetched.
	ErrPatchFetchFailed = zerr.New("failed to fetch patch")

	// ErrPatchApplyFailed is returned when the patch does not apply to the source tree.
	ErrPatchApplyFailed = zerr.New("failed to apply patch")

	// ErrChangelogBumpFailed is returned when recording the changelog entry fails.
	ErrChangelogBumpFailed = zerr.New("failed to bump changelog")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find packrat.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoPackages is returned when the configuration declares no packages.
	ErrNoPackages = zerr.New("no packages configured")

	// ErrInvalidPackageName is returned when a package name is invalid.
	ErrInvalidPackageName = zerr.New("package name can only contain lowercase alphanumeric characters, plus, minus and dots")

	// ErrDuplicatePackageName is returned when two configured packages share a name.
	ErrDuplicatePackageName = zerr.New("duplicate package name")

	// ErrInvalidPatchSpec is returned when a patch declares neither or both of url and archive.
	ErrInvalidPatchSpec = zerr.New("patch must specify exactly one of url or archive")

	// ErrJournalCreateFailed is returned when the journal directory cannot be created.
	ErrJournalCreateFailed = zerr.New("failed to create journal directory")

	// ErrJournalReadFailed is returned when a journal record cannot be read.
	ErrJournalReadFailed = zerr.New("failed to read journal record")

	// ErrJournalUnmarshalFailed is returned when a journal record cannot be unmarshaled.
	ErrJournalUnmarshalFailed = zerr.New("failed to unmarshal journal record")

	// ErrJournalMarshalFailed is returned when a journal record cannot be marshaled.
	ErrJournalMarshalFailed = zerr.New("failed to marshal journal record")

	// ErrJournalWriteFailed is returned when a journal record cannot be written.
	ErrJournalWriteFailed = zerr.New("failed to write journal record")

	// ErrStagingFailed is returned when collecting built artifacts into the staging directory fails.
	ErrStagingFailed = zerr.New("failed to stage artifacts")

	// ErrNoArtifacts is returned when a republish finds no artifacts to publish.
	ErrNoArtifacts = zerr.New("no artifacts staged for publishing")

	// ErrPublishTreeCopyFailed is returned when copying the published tree fails.
	ErrPublishTreeCopyFailed = zerr.New("failed to copy published tree")

	// ErrVCSOpenFailed is returned when the archive repository cannot be opened.
	ErrVCSOpenFailed = zerr.New("failed to open archive repository")

	// ErrVCSCommitFailed is returned when committing the published tree fails.
	ErrVCSCommitFailed = zerr.New("failed to commit published tree")

	// ErrVCSPushFailed is returned when pushing the published tree fails.
	ErrVCSPushFailed = zerr.New("failed to push published tree")
)
