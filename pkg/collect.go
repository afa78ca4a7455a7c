package dupfinder

import (
	"fmt"
	"os"
	"path/filepath"
)

// queuedDir is a directory waiting to be read during collection.
type queuedDir struct {
	path  string
	depth int
}

// CollectCandidates walks root and returns the candidate file paths in
// discovery order. Only regular files are considered; symlinks,
// directories and special files are excluded. When recurse is false
// only the direct children of root are examined. Directories that
// cannot be read are skipped so a single unreadable subtree never fails
// the whole run; only an unreadable root is an error.
func CollectCandidates(root string, recurse bool, filter *NameFilter, notify Notifier) (*candidateList, error) {
	candidates := newCandidateList()

	queue := []queuedDir{{path: root, depth: 0}}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir.path)
		if err != nil {
			if dir.depth == 0 {
				return nil, fmt.Errorf("failed to read scan root %s: %w", dir.path, err)
			}
			notify.SkippingEntry(dir.path, err)
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir.path, entry.Name())

			if entry.IsDir() {
				if recurse {
					queue = append(queue, queuedDir{path: path, depth: dir.depth + 1})
				}
				continue
			}
			if !entry.Type().IsRegular() {
				continue
			}
			if filter.Accepts(entry.Name()) {
				candidates.Add(path)
			}
		}
	}

	return candidates, nil
}
