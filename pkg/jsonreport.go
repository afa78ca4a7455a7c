package dupfinder

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Report is the structured scan report written by the JSON export. The
// snake_case field layout is a stable interface; consumers parse it.
type Report struct {
	ScanInfo        ScanInfo      `json:"scan_info"`
	DuplicateGroups []GroupReport `json:"duplicate_groups"`
	Statistics      Statistics    `json:"statistics"`
}

// ScanInfo carries scan-level metadata.
type ScanInfo struct {
	BasePath    string `json:"base_path"`
	TotalGroups int    `json:"total_groups"`
	Timestamp   string `json:"timestamp"`
}

// GroupReport is one verified duplicate group.
type GroupReport struct {
	GroupID     int         `json:"group_id"`
	FileSize    int64       `json:"file_size"`
	FileCount   int         `json:"file_count"`
	Fingerprint string      `json:"fingerprint"`
	Files       []FileEntry `json:"files"`
}

// FileEntry is one group member, in both display and absolute form.
type FileEntry struct {
	Path         string `json:"path"`
	AbsolutePath string `json:"absolute_path"`
}

// Statistics aggregates the scan outcome.
type Statistics struct {
	TotalDuplicateFiles   int   `json:"total_duplicate_files"`
	DeletableFiles        int   `json:"deletable_files"`
	PotentialSpaceSavings int64 `json:"potential_space_savings"`
}

// BuildReport assembles the structured report from a scan result.
func BuildReport(result *ScanResult, opts Options, now time.Time) *Report {
	groups := make([]GroupReport, 0, len(result.Groups))
	for i := range result.Groups {
		group := &result.Groups[i]

		files := make([]FileEntry, 0, len(group.Records))
		for _, record := range group.Records {
			files = append(files, FileEntry{
				Path:         DisplayPath(record.Path, opts.RelativePaths, opts.BasePath),
				AbsolutePath: DisplayPath(record.Path, false, opts.BasePath),
			})
		}

		groups = append(groups, GroupReport{
			GroupID:     i + 1,
			FileSize:    group.Size,
			FileCount:   len(group.Records),
			Fingerprint: group.Fingerprint,
			Files:       files,
		})
	}

	return &Report{
		ScanInfo: ScanInfo{
			BasePath:    opts.BasePath,
			TotalGroups: len(result.Groups),
			Timestamp:   now.Format(time.RFC3339),
		},
		DuplicateGroups: groups,
		Statistics: Statistics{
			TotalDuplicateFiles:   result.TotalDuplicateFiles(),
			DeletableFiles:        result.DeletableFiles(),
			PotentialSpaceSavings: result.PotentialSavings(),
		},
	}
}

// WriteJSONReport writes the report to path. Failures are reported to
// the caller as warnings; the in-memory result stays valid and other
// exports proceed.
func WriteJSONReport(path string, report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
