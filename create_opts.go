package press

import "log/slog"

// createConfig holds configuration shared by scan and create operations.
type createConfig struct {
	level    int
	failFast bool
	progress ProgressFunc
	logger   *slog.Logger
}

// CreateOption configures archive creation. The same options apply to
// ScanDir, which ignores the compression-specific ones.
type CreateOption func(*createConfig)

func newCreateConfig(opts []CreateOption) createConfig {
	cfg := createConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// CreateWithLevel overrides the compression level where the selected
// codec supports one (gzip 1-9, bzip2 1-9, zstd 1-22; xz has no level
// knob). The zero value keeps each codec's library default.
func CreateWithLevel(level int) CreateOption {
	return func(cfg *createConfig) {
		cfg.level = level
	}
}

// CreateWithFailFast aborts the job on the first per-entry read
// failure instead of skipping the entry with a warning.
func CreateWithFailFast() CreateOption {
	return func(cfg *createConfig) {
		cfg.failFast = true
	}
}

// CreateWithProgress registers an observer for progress events. The
// observer is called from the pipeline goroutine and should return
// quickly; rate-limiting the display is the observer's job.
func CreateWithProgress(fn ProgressFunc) CreateOption {
	return func(cfg *createConfig) {
		cfg.progress = fn
	}
}

// CreateWithLogger sets the logger for warnings and debug output.
// A nil logger discards everything.
func CreateWithLogger(l *slog.Logger) CreateOption {
	return func(cfg *createConfig) {
		cfg.logger = l
	}
}
