package domain

import "strings"

// CandidateVersions derives the version strings a published artifact may
// carry for the candidate version reported by the package index.
//
// A leading epoch ("2:") never appears in artifact file names and is
// stripped. When the remainder contains a '+', the text before the first
// '+' is accepted as well: a previously published build may carry the
// revision observed before the upstream suffix was added.
func CandidateVersions(candidate string) []string {
	v := candidate
	if i := strings.IndexByte(v, ':'); i >= 0 {
		v = v[i+1:]
	}
	if base, _, ok := strings.Cut(v, "+"); ok && base != "" {
		return []string{v, base}
	}
	return []string{v}
}
