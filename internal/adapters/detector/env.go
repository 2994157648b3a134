// Package detector provides execution environment detection.
package detector

import (
	"os"
	"strings"

	"go.limmat.ch/packrat/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

const osReleasePath = "/etc/os-release"

// Env implements ports.EnvDetector against the local system.
type Env struct {
	osRelease string
}

// NewEnv creates a new Env detector.
func NewEnv() *Env {
	return newEnvAt(osReleasePath)
}

func newEnvAt(osRelease string) *Env {
	return &Env{osRelease: osRelease}
}

// CI reports whether a CI environment is active.
func (e *Env) CI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// Interactive reports whether stdout is a terminal.
func (e *Env) Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Codename returns the distribution codename from the os-release file.
func (e *Env) Codename() (string, error) {
	data, err := os.ReadFile(e.osRelease)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrCodenameDetectFailed.Error())
	}

	codename := parseCodename(string(data))
	if codename == "" {
		return "", zerr.With(domain.ErrCodenameDetectFailed, "path", e.osRelease)
	}
	return codename, nil
}

// parseCodename extracts VERSION_CODENAME from os-release text. Values may
// be quoted.
func parseCodename(data string) string {
	for _, line := range strings.Split(data, "\n") {
		value, ok := strings.CutPrefix(strings.TrimSpace(line), "VERSION_CODENAME=")
		if !ok {
			continue
		}
		return strings.Trim(value, `"'`)
	}
	return ""
}
