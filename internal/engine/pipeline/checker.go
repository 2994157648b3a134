package pipeline

import (
	"strings"

	"go.limmat.ch/packrat/internal/core/ports"
)

// needsRebuild reports whether no published artifact in dir matches the
// candidate versions. Artifact names follow the Debian convention
// <name>_<version><suffix>_<arch>.deb, so a prefix match per candidate is
// enough. A listing failure reads as an empty pool: first runs start with no
// published tree and that must mean "build", not "error".
func needsRebuild(pool ports.Pool, dir, name string, candidates []string, suffix string) bool {
	names, err := pool.ListArtifacts(dir)
	if err != nil {
		return true
	}

	for _, version := range candidates {
		prefix := name + "_" + version + suffix
		for _, artifact := range names {
			if strings.HasPrefix(artifact, prefix) {
				return false
			}
		}
	}
	return true
}

// hasAnyArtifact reports whether dir holds any artifact for the package at
// all. Packages outside the package index have no candidate version to pin
// against, so any published build of them counts as current.
func hasAnyArtifact(pool ports.Pool, dir, name string) bool {
	names, err := pool.ListArtifacts(dir)
	if err != nil {
		return false
	}

	prefix := name + "_"
	for _, artifact := range names {
		if strings.HasPrefix(artifact, prefix) {
			return true
		}
	}
	return false
}
