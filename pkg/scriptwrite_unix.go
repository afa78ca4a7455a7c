//go:build unix

package dupfinder

import (
	"fmt"
	"os"
	"syscall"

	"github.com/google/vectorio"
)

// IOV_MAX on Linux; writev calls are chunked below this.
const maxIovecs = 1024

// writeScriptFile writes the rendered sections with vectored IO and
// marks the result executable. Sections map one-to-one onto iovecs so
// the renderer output goes to disk without reassembly.
func writeScriptFile(path string, sections [][]byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create script file %s: %w", path, err)
	}
	defer file.Close()

	iovecs := make([]syscall.Iovec, 0, len(sections))
	var expected int
	for _, section := range sections {
		if len(section) == 0 {
			continue
		}
		iovec := syscall.Iovec{Base: &section[0]}
		iovec.SetLen(len(section))
		iovecs = append(iovecs, iovec)
		expected += len(section)
	}

	var written int
	for start := 0; start < len(iovecs); start += maxIovecs {
		end := start + maxIovecs
		if end > len(iovecs) {
			end = len(iovecs)
		}

		n, err := vectorio.WritevRaw(uintptr(file.Fd()), iovecs[start:end])
		if err != nil {
			return fmt.Errorf("failed to write script file %s: %w", path, err)
		}
		written += n
	}

	if written != expected {
		return fmt.Errorf("short write to script file %s: wrote %d of %d bytes", path, written, expected)
	}

	if err := file.Chmod(0755); err != nil {
		return fmt.Errorf("failed to make script %s executable: %w", path, err)
	}

	return nil
}
