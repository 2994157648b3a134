// Package fs implements filesystem-backed fingerprinting.
package fs

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Hasher fingerprints artifact name sets.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashNames returns a stable fingerprint over a set of file names. Input
// order does not affect the result.
func (h *Hasher) HashNames(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	hasher := xxhash.New()
	for _, name := range sorted {
		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{0}) // Separator
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
