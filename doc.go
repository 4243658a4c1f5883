// Package press builds compressed archives from a file or directory
// tree. It supports five output formats (tar+gzip, tar+bzip2, tar+xz,
// tar+zstd, and zip) behind a single streaming pipeline with progress
// accounting.
//
// The pipeline runs in two passes. [ScanDir] walks the source in a
// deterministic order (depth-first, lexically sorted within each
// directory) and computes the totals that drive progress percentages.
// [Create] then streams each scanned entry through the selected
// format's writer into the output file, emitting a [ProgressEvent] to
// an optional observer as each entry completes.
//
// Create an archive:
//
//	stats, err := press.Create(ctx, "./src", "src.tar.gz", press.FormatTarGz,
//	    press.CreateWithProgress(func(ev press.ProgressEvent) {
//	        // render ev
//	    }),
//	)
//
// Output is written to a temporary file next to the destination and
// renamed into place only after a successful finalize, so a failed or
// interrupted job never leaves a corrupt archive behind.
//
// Symbolic links are never followed. Tar formats record them as
// symlink entries; zip cannot represent them portably, so they are
// skipped with a warning. Files that cannot be read are skipped with a
// warning by default ([CreateWithFailFast] aborts instead); all errors
// while writing or finalizing the output are fatal.
package press
