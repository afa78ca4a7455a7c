package dupfinder

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.FgYellow, color.Bold)
	groupColor   = color.New(color.FgBlue, color.Bold)
	okColor      = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	statsColor   = color.New(color.FgCyan, color.Bold)
)

const reportRule = 70

// DisplayPath renders a path for output. With relative display the path
// is shown as ./<rel> under the scan base; otherwise it is absolute.
func DisplayPath(path string, relative bool, basePath string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if relative {
		rel, err := filepath.Rel(basePath, abs)
		if err != nil || strings.HasPrefix(rel, "..") {
			return path
		}
		return "./" + rel
	}
	return abs
}

// WriteConsoleReport renders the human-readable scan summary. A scan
// that collected no files while a name filter was configured reports
// that distinctly from "no duplicates", since it usually means the
// filter is wrong rather than that files were compared and found
// unique.
func WriteConsoleReport(w io.Writer, result *ScanResult, opts Options) {
	if result.CandidateCount == 0 && opts.Filter.Configured() {
		warnColor.Fprintln(w, "no files matched the configured filters")
		return
	}
	if len(result.Groups) == 0 {
		okColor.Fprintln(w, "no duplicate files found")
		return
	}

	rule := strings.Repeat("=", reportRule)
	fmt.Fprintf(w, "\n%s\n", rule)
	headingColor.Fprintf(w, "found %d duplicate groups\n", len(result.Groups))
	fmt.Fprintln(w, rule)

	for i := range result.Groups {
		group := &result.Groups[i]
		fmt.Fprintln(w)
		groupColor.Fprintf(w, "group %d:\n", i+1)
		if opts.ShowSize {
			dimColor.Fprintf(w, "  file size: %d bytes\n", group.Size)
		}
		for _, record := range group.Records {
			fmt.Fprintf(w, "  %s\n", DisplayPath(record.Path, opts.RelativePaths, opts.BasePath))
		}
	}

	fmt.Fprintf(w, "\n%s\n", rule)
	statsColor.Fprintln(w, "statistics:")
	fmt.Fprintf(w, "  total duplicate files: %d\n", result.TotalDuplicateFiles())
	fmt.Fprintf(w, "  deletable files: %d (keeping 1 per group)\n", result.DeletableFiles())
	if opts.ShowSize {
		savings := result.PotentialSavings()
		fmt.Fprintf(w, "  reclaimable space: %s (%d bytes)\n", FormatSize(savings), savings)
	}
	fmt.Fprintln(w, rule)
}
