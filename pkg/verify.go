package dupfinder

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
)

// verifyBuckets confirms true byte equality for every surviving
// fingerprint bucket. The first record of each bucket is the anchor and
// every other member is compared against it; byte equality is
// transitive, so members equal to the anchor are equal to each other.
// Hard-link pairs are dropped before comparison unless hard links are
// included, since removing a hard link reclaims no space. Groups with
// fewer than two confirmed members are discarded.
func verifyBuckets(fullBuckets map[fingerprintKey][]*FileRecord, includeHardlinks bool, bufferSize int, notify Notifier) []DuplicateGroup {
	notify.StageBanner("stage 4: verifying byte-for-byte")

	var groups []DuplicateGroup
	comparisons := 0

	for key, records := range fullBuckets {
		anchor := records[0]
		group := DuplicateGroup{
			Size:        key.size,
			Fingerprint: key.digest,
			Records:     []*FileRecord{anchor},
		}

		for _, record := range records[1:] {
			if !includeHardlinks {
				same, err := sameStorage(anchor.Path, record.Path)
				if err == nil && same {
					notify.SkippingHardlink(anchor.Path, record.Path)
					continue
				}
			}

			equal, err := compareFiles(anchor.Path, record.Path, bufferSize)
			comparisons++
			if err != nil {
				notify.SkippingEntry(record.Path, err)
				continue
			}
			if equal {
				group.Records = append(group.Records, record)
			}
		}

		if len(group.Records) >= 2 {
			groups = append(groups, group)
		}
	}

	// Map iteration order is random; order groups by their anchor path
	// so repeated runs report the same group numbering.
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Records[0].Path < groups[j].Records[0].Path
	})

	total := 0
	for i := range groups {
		total += len(groups[i].Records)
	}
	notify.VerifyResult(comparisons, len(groups), total)
	return groups
}

// compareFiles reads both files in lock-step with bounded buffers and
// reports equality only if every chunk pair and the end-of-file point
// coincide exactly.
func compareFiles(pathA, pathB string, bufferSize int) (bool, error) {
	fileA, err := os.Open(pathA)
	if err != nil {
		return false, fmt.Errorf("failed to open file %s: %w", pathA, err)
	}
	defer fileA.Close()

	fileB, err := os.Open(pathB)
	if err != nil {
		return false, fmt.Errorf("failed to open file %s: %w", pathB, err)
	}
	defer fileB.Close()

	bufferA := make([]byte, bufferSize)
	bufferB := make([]byte, bufferSize)

	for {
		nA, errA := io.ReadFull(fileA, bufferA)
		nB, errB := io.ReadFull(fileB, bufferB)

		if nA != nB {
			return false, nil
		}
		if !bytes.Equal(bufferA[:nA], bufferB[:nB]) {
			return false, nil
		}

		endA := errA == io.EOF || errA == io.ErrUnexpectedEOF
		endB := errB == io.EOF || errB == io.ErrUnexpectedEOF
		if errA != nil && !endA {
			return false, fmt.Errorf("failed to read from file %s: %w", pathA, errA)
		}
		if errB != nil && !endB {
			return false, fmt.Errorf("failed to read from file %s: %w", pathB, errB)
		}
		if endA || endB {
			return endA && endB, nil
		}
	}
}
