// Package httpfetch retrieves patch text over HTTP.
package httpfetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.limmat.ch/packrat/internal/core/domain"
	"go.trai.ch/zerr"
)

const fetchTimeout = 2 * time.Minute

// Fetcher implements ports.PatchFetcher.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: fetchTimeout}}
}

// Fetch returns the body at url. Any status outside the 2xx range is an
// error.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPatchFetchFailed.Error())
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPatchFetchFailed.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := zerr.With(domain.ErrPatchFetchFailed, "status", resp.Status)
		return nil, zerr.With(err, "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPatchFetchFailed.Error())
	}
	return body, nil
}
