package ports

import "context"

// PatchFetcher retrieves patch text over the network.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type PatchFetcher interface {
	// Fetch returns the body at url. Any status outside the 2xx range is
	// an error.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
