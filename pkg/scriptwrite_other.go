//go:build !unix

package dupfinder

import (
	"bytes"
	"fmt"
	"os"
)

// writeScriptFile writes the rendered sections with a single buffered
// write. No execute bit here; Windows dispatches on extension.
func writeScriptFile(path string, sections [][]byte) error {
	var buf bytes.Buffer
	for _, section := range sections {
		buf.Write(section)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write script file %s: %w", path, err)
	}
	return nil
}
