package domain

// RecordWriter appends diff records to the persisted dataset. A single
// writer owns the dataset for the duration of a mining run.
type RecordWriter interface {
	Write(record DiffRecord) error
}

// RecordReader loads the full persisted dataset. A read or parse failure is
// returned as-is; callers treat it as fatal.
type RecordReader interface {
	ReadAll() ([]DiffRecord, error)
}

// ChartRenderer draws the per-category mismatch counts as a bar chart image.
type ChartRenderer interface {
	Render(path string, counts []CategoryCount) error
}
