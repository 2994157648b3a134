// Package apt drives the system package manager for index queries and
// package installation.
package apt

import (
	"context"
	"strings"

	"go.limmat.ch/packrat/internal/core/domain"
	"go.limmat.ch/packrat/internal/core/ports"
	"go.trai.ch/zerr"
)

// Oracle implements ports.VersionOracle using apt-cache.
type Oracle struct {
	runner ports.Runner
}

// NewOracle creates a new Oracle.
func NewOracle(runner ports.Runner) *Oracle {
	return &Oracle{runner: runner}
}

// CandidateVersion queries the index policy for the package and returns the
// raw candidate version. A missing package entry or a "(none)" candidate is
// domain.ErrNoCandidate.
func (o *Oracle) CandidateVersion(ctx context.Context, pkg string) (string, error) {
	out, err := o.runner.Output(ctx, ports.Command{
		Name: "apt-cache",
		Args: []string{"policy", pkg},
	})
	if err != nil {
		return "", err
	}

	version, ok := parseCandidate(string(out))
	if !ok || version == "(none)" {
		return "", zerr.With(domain.ErrNoCandidate, "package", pkg)
	}
	return version, nil
}

// parseCandidate extracts the value of the "Candidate:" line.
func parseCandidate(out string) (string, bool) {
	for _, line := range strings.Split(out, "\n") {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), "Candidate:")
		if !ok {
			continue
		}
		version := strings.TrimSpace(rest)
		if version == "" {
			return "", false
		}
		return version, true
	}
	return "", false
}
