package dupfinder

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// ScriptMeta carries the header metadata stamped into a removal script.
type ScriptMeta struct {
	BasePath  string
	Generated time.Time
}

// ScriptRenderer renders a removal script for the verified duplicate
// groups. Each group keeps its first (anchor) file and emits guarded
// removal commands for the rest. Rendering produces the script as a
// sequence of sections so the writer can hand them to writev as-is.
type ScriptRenderer interface {
	// Name identifies the script flavor ("bash", "powershell").
	Name() string
	// Render produces the script sections in order.
	Render(result *ScanResult, meta ScriptMeta) [][]byte
}

// RendererForOS selects the renderer for the given GOOS. Chosen once at
// startup; the pipeline itself carries no platform conditionals.
func RendererForOS(goos string) ScriptRenderer {
	if goos == "windows" {
		return powershellRenderer{}
	}
	return bashRenderer{}
}

type bashRenderer struct{}

func (bashRenderer) Name() string { return "bash" }

// shellQuote wraps a path in double quotes, escaping the characters
// bash would otherwise interpret inside them.
func shellQuote(path string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"`", "\\`",
		`$`, `\$`,
	)
	return `"` + replacer.Replace(path) + `"`
}

func (bashRenderer) Render(result *ScanResult, meta ScriptMeta) [][]byte {
	var sections [][]byte

	var header bytes.Buffer
	fmt.Fprintf(&header, "#!/bin/bash\n")
	fmt.Fprintf(&header, "# dupfinder removal script\n")
	fmt.Fprintf(&header, "# generated: %s\n", meta.Generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&header, "# scan path: %s\n", meta.BasePath)
	fmt.Fprintf(&header, "# duplicate groups: %d\n", len(result.Groups))
	fmt.Fprintf(&header, "#\n")
	fmt.Fprintf(&header, "# Each group keeps its first file and removes the rest.\n")
	fmt.Fprintf(&header, "# Review the commands below before running.\n\n")
	fmt.Fprintf(&header, "set -u\n\n")
	sections = append(sections, header.Bytes())

	var confirm bytes.Buffer
	fmt.Fprintf(&confirm, "echo \"WARNING: this script deletes duplicate files!\"\n")
	fmt.Fprintf(&confirm, "echo \"scan path: %s\"\n", meta.BasePath)
	fmt.Fprintf(&confirm, "echo \"duplicate groups: %d\"\n", len(result.Groups))
	fmt.Fprintf(&confirm, "echo \"files to delete: %d\"\n", result.DeletableFiles())
	fmt.Fprintf(&confirm, "echo \"reclaimable space: %s\"\n", FormatSize(result.PotentialSavings()))
	fmt.Fprintf(&confirm, "echo \"\"\n")
	fmt.Fprintf(&confirm, "read -p \"continue? (yes/no): \" confirm\n")
	fmt.Fprintf(&confirm, "if [ \"$confirm\" != \"yes\" ]; then\n")
	fmt.Fprintf(&confirm, "    echo \"aborted\"\n")
	fmt.Fprintf(&confirm, "    exit 0\n")
	fmt.Fprintf(&confirm, "fi\n\n")
	fmt.Fprintf(&confirm, "deleted_count=0\n")
	fmt.Fprintf(&confirm, "deleted_size=0\n")
	fmt.Fprintf(&confirm, "failed_count=0\n")
	sections = append(sections, confirm.Bytes())

	for i := range result.Groups {
		group := &result.Groups[i]

		var block bytes.Buffer
		fmt.Fprintf(&block, "\n# group %d: %d duplicate files (%d bytes each)\n", i+1, len(group.Records), group.Size)
		fmt.Fprintf(&block, "# keep: %s\n", DisplayPath(group.Records[0].Path, false, meta.BasePath))

		for _, record := range group.Records[1:] {
			path := shellQuote(DisplayPath(record.Path, false, meta.BasePath))
			fmt.Fprintf(&block, "if [ -f %s ]; then\n", path)
			fmt.Fprintf(&block, "    echo \"removing: \"%s\n", path)
			fmt.Fprintf(&block, "    if rm %s; then\n", path)
			fmt.Fprintf(&block, "        deleted_count=$((deleted_count + 1))\n")
			fmt.Fprintf(&block, "        deleted_size=$((deleted_size + %d))\n", group.Size)
			fmt.Fprintf(&block, "    else\n")
			fmt.Fprintf(&block, "        echo \"failed to remove: \"%s\n", path)
			fmt.Fprintf(&block, "        failed_count=$((failed_count + 1))\n")
			fmt.Fprintf(&block, "    fi\n")
			fmt.Fprintf(&block, "else\n")
			fmt.Fprintf(&block, "    echo \"missing: \"%s\n", path)
			fmt.Fprintf(&block, "fi\n")
		}
		sections = append(sections, block.Bytes())
	}

	var footer bytes.Buffer
	fmt.Fprintf(&footer, "\necho \"\"\n")
	fmt.Fprintf(&footer, "echo \"deleted: $deleted_count files\"\n")
	fmt.Fprintf(&footer, "echo \"failed: $failed_count files\"\n")
	fmt.Fprintf(&footer, "echo \"reclaimed: $deleted_size bytes\"\n")
	sections = append(sections, footer.Bytes())

	return sections
}

type powershellRenderer struct{}

func (powershellRenderer) Name() string { return "powershell" }

// psQuote wraps a path in single quotes, PowerShell's literal string
// form, doubling any embedded single quotes.
func psQuote(path string) string {
	return "'" + strings.ReplaceAll(path, "'", "''") + "'"
}

func (powershellRenderer) Render(result *ScanResult, meta ScriptMeta) [][]byte {
	var sections [][]byte

	var header bytes.Buffer
	fmt.Fprintf(&header, "# dupfinder removal script (PowerShell)\n")
	fmt.Fprintf(&header, "# generated: %s\n", meta.Generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&header, "# scan path: %s\n", meta.BasePath)
	fmt.Fprintf(&header, "# duplicate groups: %d\n", len(result.Groups))
	fmt.Fprintf(&header, "#\n")
	fmt.Fprintf(&header, "# Each group keeps its first file and removes the rest.\n")
	fmt.Fprintf(&header, "# Run with: PowerShell -ExecutionPolicy Bypass -File <script>\n\n")
	sections = append(sections, header.Bytes())

	var confirm bytes.Buffer
	fmt.Fprintf(&confirm, "Write-Host \"WARNING: this script deletes duplicate files!\" -ForegroundColor Yellow\n")
	fmt.Fprintf(&confirm, "Write-Host \"scan path: %s\"\n", meta.BasePath)
	fmt.Fprintf(&confirm, "Write-Host \"duplicate groups: %d\"\n", len(result.Groups))
	fmt.Fprintf(&confirm, "Write-Host \"files to delete: %d\"\n", result.DeletableFiles())
	fmt.Fprintf(&confirm, "Write-Host \"reclaimable space: %s\"\n", FormatSize(result.PotentialSavings()))
	fmt.Fprintf(&confirm, "$confirm = Read-Host \"continue? (yes/no)\"\n")
	fmt.Fprintf(&confirm, "if ($confirm -ne \"yes\") {\n")
	fmt.Fprintf(&confirm, "    Write-Host \"aborted\" -ForegroundColor Red\n")
	fmt.Fprintf(&confirm, "    exit 0\n")
	fmt.Fprintf(&confirm, "}\n\n")
	fmt.Fprintf(&confirm, "$deletedCount = 0\n")
	fmt.Fprintf(&confirm, "$deletedSize = 0\n")
	fmt.Fprintf(&confirm, "$failedCount = 0\n")
	sections = append(sections, confirm.Bytes())

	for i := range result.Groups {
		group := &result.Groups[i]

		var block bytes.Buffer
		fmt.Fprintf(&block, "\n# group %d: %d duplicate files (%d bytes each)\n", i+1, len(group.Records), group.Size)
		fmt.Fprintf(&block, "# keep: %s\n", DisplayPath(group.Records[0].Path, false, meta.BasePath))

		for _, record := range group.Records[1:] {
			path := psQuote(DisplayPath(record.Path, false, meta.BasePath))
			fmt.Fprintf(&block, "if (Test-Path %s) {\n", path)
			fmt.Fprintf(&block, "    Write-Host \"removing: $(%s)\"\n", path)
			fmt.Fprintf(&block, "    try {\n")
			fmt.Fprintf(&block, "        Remove-Item %s -Force\n", path)
			fmt.Fprintf(&block, "        $deletedCount++\n")
			fmt.Fprintf(&block, "        $deletedSize += %d\n", group.Size)
			fmt.Fprintf(&block, "    } catch {\n")
			fmt.Fprintf(&block, "        Write-Host \"failed to remove: $(%s)\" -ForegroundColor Red\n", path)
			fmt.Fprintf(&block, "        $failedCount++\n")
			fmt.Fprintf(&block, "    }\n")
			fmt.Fprintf(&block, "} else {\n")
			fmt.Fprintf(&block, "    Write-Host \"missing: $(%s)\" -ForegroundColor Yellow\n", path)
			fmt.Fprintf(&block, "}\n")
		}
		sections = append(sections, block.Bytes())
	}

	var footer bytes.Buffer
	fmt.Fprintf(&footer, "\nWrite-Host \"\"\n")
	fmt.Fprintf(&footer, "Write-Host \"deleted: $deletedCount files\" -ForegroundColor Green\n")
	fmt.Fprintf(&footer, "Write-Host \"failed: $failedCount files\" -ForegroundColor Red\n")
	fmt.Fprintf(&footer, "Write-Host \"reclaimed: $deletedSize bytes\" -ForegroundColor Green\n")
	sections = append(sections, footer.Bytes())

	return sections
}

// WriteScript renders the removal script and writes it to path using
// the platform write path. Failures are warnings to the caller and do
// not invalidate the in-memory scan result.
func WriteScript(path string, renderer ScriptRenderer, result *ScanResult, meta ScriptMeta) error {
	sections := renderer.Render(result, meta)
	return writeScriptFile(path, sections)
}
