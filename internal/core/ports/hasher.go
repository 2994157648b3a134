package ports

// Hasher computes stable fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashNames computes a fingerprint over an ordered list of names.
	HashNames(names []string) string
}
