package dupfinder

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func disableColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func TestDisplayPath(t *testing.T) {
	base := t.TempDir()
	inside := filepath.Join(base, "sub", "file.txt")
	outside := filepath.Join(filepath.Dir(base), "elsewhere.txt")

	if got := DisplayPath(inside, true, base); got != "./sub/file.txt" {
		t.Errorf("relative DisplayPath = %q, want ./sub/file.txt", got)
	}
	if got := DisplayPath(inside, false, base); got != inside {
		t.Errorf("absolute DisplayPath = %q, want %q", got, inside)
	}
	// Paths that escape the base stay as given rather than rendering a
	// misleading ../ form.
	if got := DisplayPath(outside, true, base); strings.HasPrefix(got, "./") {
		t.Errorf("out-of-base DisplayPath = %q, should not be relative", got)
	}
}

func TestWriteConsoleReportNoDuplicates(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	WriteConsoleReport(&buf, &ScanResult{CandidateCount: 5}, Options{})

	if !strings.Contains(buf.String(), "no duplicate files found") {
		t.Errorf("report = %q, want the no-duplicates message", buf.String())
	}
}

func TestWriteConsoleReportNoFilterMatches(t *testing.T) {
	disableColor(t)
	filter, err := NewNameFilter([]string{"*.nomatch"}, "")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	WriteConsoleReport(&buf, &ScanResult{CandidateCount: 0}, Options{Filter: filter})

	out := buf.String()
	if !strings.Contains(out, "no files matched the configured filters") {
		t.Errorf("report = %q, want the filter-miss message", out)
	}
	if strings.Contains(out, "no duplicate files found") {
		t.Error("filter miss must not be reported as no-duplicates")
	}
}

func TestWriteConsoleReportGroups(t *testing.T) {
	disableColor(t)
	base := t.TempDir()
	result := &ScanResult{
		CandidateCount: 4,
		Groups: []DuplicateGroup{{
			Size:        1024,
			Fingerprint: "abcd",
			Records: []*FileRecord{
				{Path: filepath.Join(base, "a.bin"), Size: 1024},
				{Path: filepath.Join(base, "b.bin"), Size: 1024},
			},
		}},
	}

	var buf bytes.Buffer
	WriteConsoleReport(&buf, result, Options{BasePath: base, ShowSize: true, RelativePaths: true})

	out := buf.String()
	for _, want := range []string{
		"found 1 duplicate groups",
		"group 1:",
		"file size: 1024 bytes",
		"./a.bin",
		"./b.bin",
		"total duplicate files: 2",
		"deletable files: 1",
		"reclaimable space: 1.00 KB (1024 bytes)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteConsoleReportHidesSizesByDefault(t *testing.T) {
	disableColor(t)
	result := &ScanResult{
		CandidateCount: 2,
		Groups: []DuplicateGroup{{
			Size:    64,
			Records: []*FileRecord{{Path: "/x/a"}, {Path: "/x/b"}},
		}},
	}

	var buf bytes.Buffer
	WriteConsoleReport(&buf, result, Options{BasePath: "/x"})

	out := buf.String()
	if strings.Contains(out, "file size") || strings.Contains(out, "reclaimable space") {
		t.Errorf("sizes shown without ShowSize:\n%s", out)
	}
}
