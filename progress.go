package press

// ProgressEvent represents a progress update during a scan or archive
// operation.
type ProgressEvent struct {
	// Stage identifies the current phase of the job.
	Stage ProgressStage

	// Path is the entry currently being processed, if applicable.
	Path string

	// BytesDone is the number of original (uncompressed) bytes
	// completed so far.
	BytesDone uint64

	// BytesTotal is the total original bytes for the job.
	// Zero indicates the total is not yet known (during scanning).
	BytesTotal uint64

	// EntriesDone is the number of entries completed.
	EntriesDone int

	// EntriesTotal is the total number of entries.
	// Zero indicates the total is not yet known (during scanning).
	EntriesTotal int
}

// ProgressStage identifies the current phase of a job.
type ProgressStage uint8

const (
	// StageScanning indicates the pre-scan pass is walking the source tree.
	StageScanning ProgressStage = iota

	// StageArchiving indicates entries are being compressed and written.
	StageArchiving
)

// String returns the string representation of the stage.
func (s ProgressStage) String() string {
	switch s {
	case StageScanning:
		return "scanning"
	case StageArchiving:
		return "archiving"
	default:
		return "unknown"
	}
}

// ProgressFunc receives progress updates during operations. Events for
// a single job arrive sequentially; counters are non-decreasing.
type ProgressFunc func(ProgressEvent)
