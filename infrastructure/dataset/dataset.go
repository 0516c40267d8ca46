// Package dataset persists diff records as a CSV file: one header line plus
// one row per (commit, modified file) pair. Raw diff texts keep their
// embedded newlines; CSV quoting handles them.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/rios0rios0/diffprobe/domain"
)

// Header is the fixed column layout of the dataset.
var Header = []string{
	"repo", "old_file_path", "new_file_path", "commit_SHA",
	"parent_commit_SHA", "commit_message",
	"diff_myers", "diff_hist", "Discrepancy",
}

// Writer appends diff records to a CSV file. It is the dataset's single
// writer; no readers run concurrently with it.
type Writer struct {
	file *os.File
	csv  *csv.Writer
}

var _ domain.RecordWriter = (*Writer)(nil)

// NewWriter creates the dataset file, truncating any previous run's output,
// and writes the header row.
func NewWriter(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset %q: %w", path, err)
	}

	w := &Writer{file: file, csv: csv.NewWriter(file)}
	if writeErr := w.csv.Write(Header); writeErr != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write dataset header: %w", writeErr)
	}
	return w, nil
}

// Write appends one record.
func (w *Writer) Write(record domain.DiffRecord) error {
	row := []string{
		record.Repo, record.OldPath, record.NewPath, record.CommitSHA,
		record.ParentSHA, record.Message,
		record.DiffMyers, record.DiffHistogram, record.Verdict(),
	}
	if err := w.csv.Write(row); err != nil {
		return fmt.Errorf("failed to write dataset row: %w", err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush dataset: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close dataset: %w", err)
	}
	return nil
}

// Reader loads a complete dataset from disk.
type Reader struct {
	path string
}

var _ domain.RecordReader = (*Reader)(nil)

// NewReader creates a Reader for the dataset at path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// ReadAll parses every row of the dataset. Any read or parse failure is
// returned to the caller, which treats it as fatal.
func (r *Reader) ReadAll() ([]domain.DiffRecord, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %q: %w", r.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(Header)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %q: %w", r.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %q is empty, expected a header row", r.path)
	}
	if !equalHeader(rows[0]) {
		return nil, fmt.Errorf("dataset %q has an unexpected header: %v", r.path, rows[0])
	}

	records := make([]domain.DiffRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, domain.DiffRecord{
			Repo:          row[0],
			OldPath:       row[1],
			NewPath:       row[2],
			CommitSHA:     row[3],
			ParentSHA:     row[4],
			Message:       row[5],
			DiffMyers:     row[6],
			DiffHistogram: row[7],
			Discrepancy:   domain.ParseVerdict(row[8]),
		})
	}
	return records, nil
}

func equalHeader(row []string) bool {
	if len(row) != len(Header) {
		return false
	}
	for i, col := range Header {
		if row[i] != col {
			return false
		}
	}
	return true
}
