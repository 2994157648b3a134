package domain

// RunState carries the mutable facts of one orchestration run: which OS
// packages and build-dependency sets are already installed and whether the
// package index has been refreshed. Marks only accrue; nothing is unset
// within a run. One value is created per run and passed by pointer.
type RunState struct {
	// Codename is the target distribution codename.
	Codename string

	privileged       bool
	sourcesRefreshed bool
	packages         map[string]struct{}
	depSets          map[string]struct{}
}

// NewRunState creates the state for a single run.
func NewRunState(codename string, privileged bool) *RunState {
	return &RunState{
		Codename:   codename,
		privileged: privileged,
		packages:   make(map[string]struct{}),
		depSets:    make(map[string]struct{}),
	}
}

// Privileged reports whether the run executes with root privileges.
func (s *RunState) Privileged() bool {
	return s.privileged
}

// SourcesRefreshed reports whether the package index is already up to date.
func (s *RunState) SourcesRefreshed() bool {
	return s.sourcesRefreshed
}

// MarkSourcesRefreshed records that the package index is up to date.
func (s *RunState) MarkSourcesRefreshed() {
	s.sourcesRefreshed = true
}

// HasAllPackages reports whether every named OS package is already installed.
// An empty list is trivially satisfied.
func (s *RunState) HasAllPackages(names ...string) bool {
	for _, name := range names {
		if _, ok := s.packages[name]; !ok {
			return false
		}
	}
	return true
}

// MarkPackages records OS packages as installed.
func (s *RunState) MarkPackages(names ...string) {
	for _, name := range names {
		if name == "" {
			continue
		}
		s.packages[name] = struct{}{}
	}
}

// HasDepSet reports whether a build-dependency set was already installed.
func (s *RunState) HasDepSet(key string) bool {
	_, ok := s.depSets[key]
	return ok
}

// MarkDepSet records a build-dependency set as installed.
func (s *RunState) MarkDepSet(key string) {
	s.depSets[key] = struct{}{}
}
