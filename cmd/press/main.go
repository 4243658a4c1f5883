// Command press compresses a file or directory into a tar.gz,
// tar.bz2, tar.xz, tar.zst, or zip archive, with a terminal progress
// bar and a summary line.
//
// Exit codes: 0 on success, 1 on any fatal error, 2 when the archive
// was written but some entries were skipped with warnings.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/press-cli/press"
)

const (
	exitOK       = 0
	exitError    = 1
	exitWarnings = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var stats *press.Stats
	cmd := newRootCmd(&stats)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "press:", err)
		return exitError
	}
	if stats != nil && len(stats.Warnings) > 0 {
		return exitWarnings
	}
	return exitOK
}

type options struct {
	format   string
	output   string
	level    int
	quiet    bool
	verbose  bool
	failFast bool
}

func newRootCmd(result **press.Stats) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:           "press [flags] <path>",
		Short:         "compress a file or directory into an archive",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := execute(cmd.Context(), args[0], opts)
			*result = stats
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "tar-gz",
		"archive format: "+strings.Join(press.FormatNames, ", "))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"output path (default: source base name plus the format extension)")
	cmd.Flags().IntVarP(&opts.level, "level", "l", 0,
		"compression level (0 = codec default)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false,
		"disable the progress bar and summary")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"verbose logging")
	cmd.Flags().BoolVar(&opts.failFast, "fail-fast", false,
		"abort on the first unreadable entry instead of skipping it")
	return cmd
}

func execute(ctx context.Context, src string, opts options) (*press.Stats, error) {
	format, err := press.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}
	dst := opts.output
	if dst == "" {
		dst = outputPath(src, format)
	}

	createOpts := []press.CreateOption{
		press.CreateWithLogger(newLogger(opts.verbose)),
		press.CreateWithLevel(opts.level),
	}
	if opts.failFast {
		createOpts = append(createOpts, press.CreateWithFailFast())
	}

	var bar *progressRenderer
	if !opts.quiet {
		bar = newProgressRenderer(os.Stderr)
		createOpts = append(createOpts, press.CreateWithProgress(bar.observe))
	}

	start := time.Now()
	stats, err := press.Create(ctx, src, dst, format, createOpts...)
	if bar != nil {
		bar.done(err)
	}
	if err != nil {
		return nil, err
	}
	if !opts.quiet {
		printSummary(os.Stderr, dst, stats, time.Since(start))
	}
	return stats, nil
}

// outputPath derives the default output name from the source base name
// and the format's conventional extension.
func outputPath(src string, format press.Format) string {
	base := filepath.Base(filepath.Clean(src))
	if base == "/" || base == "." || base == ".." {
		base = "archive"
	}
	return base + format.Ext()
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func printSummary(w io.Writer, dst string, stats *press.Stats, elapsed time.Duration) {
	ratio := 100.0
	if stats.OriginalBytes > 0 {
		ratio = float64(stats.CompressedBytes) / float64(stats.OriginalBytes) * 100
	}
	fmt.Fprintf(w, "%s: %d entries, %s -> %s (%.1f%%), %s, %s\n",
		dst, stats.Entries(),
		formatSize(stats.OriginalBytes), formatSize(stats.CompressedBytes),
		ratio, stats.Digest, elapsed.Round(time.Millisecond))
	if n := len(stats.Warnings); n > 0 {
		fmt.Fprintf(w, "%d entries skipped with warnings\n", n)
	}
}

// formatSize returns a human-readable size string.
func formatSize(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
