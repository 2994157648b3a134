// Package journal stores run records using a file-per-run strategy.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.limmat.ch/packrat/internal/core/domain"
	"go.trai.ch/zerr"
)

// Journal implements ports.Journal on the local filesystem.
type Journal struct{}

// NewJournal creates a new Journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append stores a run record under root. Records are named so that
// lexicographic order matches chronological order.
func (j *Journal) Append(root string, record domain.RunRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrJournalMarshalFailed.Error())
	}

	dir := filepath.Join(root, domain.DefaultJournalPath())
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrJournalCreateFailed.Error())
	}

	filename := filepath.Join(dir, recordName(record))
	//nolint:gosec // Path is constructed from the project root and a run ID.
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrJournalWriteFailed.Error())
	}

	return nil
}

// Last retrieves the most recent run record under root. Returns nil, nil
// when no runs were recorded yet.
func (j *Journal) Last(root string) (*domain.RunRecord, error) {
	dir := filepath.Join(root, domain.DefaultJournalPath())

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrJournalReadFailed.Error())
	}

	var newest string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		newest = entry.Name()
	}
	if newest == "" {
		return nil, nil
	}

	//nolint:gosec // Path comes from listing the journal directory.
	data, err := os.ReadFile(filepath.Join(dir, newest))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrJournalReadFailed.Error())
	}

	var record domain.RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.Wrap(err, domain.ErrJournalUnmarshalFailed.Error())
	}

	return &record, nil
}

// recordName builds a sortable file name from the record's start time and ID.
func recordName(record domain.RunRecord) string {
	return fmt.Sprintf("%020d-%s.json", record.Started.UnixNano(), record.ID)
}
