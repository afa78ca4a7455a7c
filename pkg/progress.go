package dupfinder

import (
	"io"

	"github.com/fatih/color"
)

var (
	stageColor = color.New(color.FgCyan)
	dimColor   = color.New(color.Faint)
)

// Notifier renders scan progress. It carries the verbosity decision
// explicitly so no stage consults process-wide state. The zero value is
// silent.
type Notifier struct {
	w       io.Writer
	verbose bool
}

// NewNotifier returns a Notifier writing to w. When verbose is false
// only warnings about skipped entries are emitted.
func NewNotifier(w io.Writer, verbose bool) Notifier {
	return Notifier{w: w, verbose: verbose}
}

// ScanningFiles announces how many candidates the collector accepted.
func (n Notifier) ScanningFiles(count int) {
	if n.w == nil {
		return
	}
	color.New(color.FgGreen).Fprintf(n.w, "scanning %d files...\n", count)
}

// StageBanner announces a pipeline stage in verbose mode.
func (n Notifier) StageBanner(msg string) {
	if n.w == nil || !n.verbose {
		return
	}
	stageColor.Fprintf(n.w, "%s\n", msg)
}

// StageResult reports surviving buckets after the size stage.
func (n Notifier) StageResult(buckets, files int) {
	if n.w == nil || !n.verbose {
		return
	}
	dimColor.Fprintf(n.w, "  %d candidate groups (%d files)\n", buckets, files)
}

// StageChecked reports a fingerprint stage: files digested and
// surviving buckets.
func (n Notifier) StageChecked(checked, buckets, files int) {
	if n.w == nil || !n.verbose {
		return
	}
	dimColor.Fprintf(n.w, "  checked %d files, %d groups remain (%d files)\n", checked, buckets, files)
}

// VerifyResult reports the byte-verification stage.
func (n Notifier) VerifyResult(comparisons, groups, files int) {
	if n.w == nil || !n.verbose {
		return
	}
	dimColor.Fprintf(n.w, "  %d byte comparisons, %d confirmed groups (%d files)\n", comparisons, groups, files)
}

// SkippingHardlink notes an excluded hard-link pair in verbose mode.
func (n Notifier) SkippingHardlink(pathA, pathB string) {
	if n.w == nil || !n.verbose {
		return
	}
	dimColor.Fprintf(n.w, "  skipping hard link: %s <-> %s\n", pathA, pathB)
}

// SkippingEntry notes a file or directory dropped because of an I/O
// error. Per-entry errors never abort a scan.
func (n Notifier) SkippingEntry(path string, err error) {
	if n.w == nil || !n.verbose {
		return
	}
	dimColor.Fprintf(n.w, "  skipping %s: %v\n", path, err)
}
