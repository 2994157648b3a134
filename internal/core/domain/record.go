package domain

import "time"

// PackageRecord is the journaled outcome for one package in one run.
type PackageRecord struct {
	Name        string `json:"name"`
	Version     string `json:"version,omitzero"`
	Rebuilt     bool   `json:"rebuilt"`
	Fingerprint string `json:"fingerprint,omitzero"`
}

// RunRecord is the journaled outcome of one orchestration run.
type RunRecord struct {
	ID        string          `json:"id"`
	Started   time.Time       `json:"started,omitzero"`
	Finished  time.Time       `json:"finished,omitzero"`
	Published bool            `json:"published"`
	Packages  []PackageRecord `json:"packages,omitzero"`
}
