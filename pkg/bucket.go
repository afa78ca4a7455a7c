package dupfinder

import (
	"errors"
	"os"
)

// fingerprintKey buckets records by digest without ever mixing sizes.
// Two files of different lengths can share a prefix digest, so size
// stays part of the key through both fingerprint stages.
type fingerprintKey struct {
	size   int64
	digest string
}

// pruneSingletons drops every bucket with fewer than two members.
// Singleton buckets carry no duplicate information; discarding them
// immediately is what keeps each following stage cheap.
func pruneSingletons[K comparable](buckets map[K][]*FileRecord) {
	for key, records := range buckets {
		if len(records) < 2 {
			delete(buckets, key)
		}
	}
}

// bucketBySize stats every candidate and groups the survivors by exact
// byte length. Files that fail to stat are skipped silently; zero-length
// files are excluded unconditionally because they cannot be duplicates
// worth reporting and would otherwise form one enormous false-positive
// bucket.
func bucketBySize(candidates *candidateList, notify Notifier) map[int64][]*FileRecord {
	notify.StageBanner("stage 1: grouping by file size")

	buckets := make(map[int64][]*FileRecord)
	candidates.ForEach(func(path string) bool {
		info, err := os.Stat(path)
		if err != nil {
			return true
		}
		if info.Size() == 0 {
			return true
		}

		record := newFileRecord(path, info.Size())
		buckets[record.Size] = append(buckets[record.Size], record)
		return true
	})

	pruneSingletons(buckets)
	notify.StageResult(len(buckets), countRecords(buckets))
	return buckets
}

// bucketByPartialFingerprint digests the first PartialReadLimit bytes of
// every size-stage survivor and re-buckets by (size, digest). Files that
// cannot be opened or read are skipped.
func bucketByPartialFingerprint(alg *FingerprintAlgorithm, sizeBuckets map[int64][]*FileRecord, notify Notifier) map[fingerprintKey][]*FileRecord {
	notify.StageBanner("stage 2: computing partial fingerprints")

	buckets := make(map[fingerprintKey][]*FileRecord)
	checked := 0
	for _, records := range sizeBuckets {
		for _, record := range records {
			digest, err := partialFingerprint(record.Path, alg)
			if err != nil {
				notify.SkippingEntry(record.Path, err)
				continue
			}
			record.setPartialFingerprint(digest)
			key := fingerprintKey{size: record.Size, digest: digest}
			buckets[key] = append(buckets[key], record)
			checked++
		}
	}

	pruneSingletons(buckets)
	notify.StageChecked(checked, len(buckets), countRecords(buckets))
	return buckets
}

// bucketByFullFingerprint streams the entire content of every partial-
// stage survivor through the digest and re-buckets by (size, digest).
// The shutdown channel is observed between read chunks; an interrupted
// scan aborts rather than producing partial buckets.
func bucketByFullFingerprint(alg *FingerprintAlgorithm, partialBuckets map[fingerprintKey][]*FileRecord, bufferSize int, notify Notifier, shutdown <-chan struct{}) (map[fingerprintKey][]*FileRecord, error) {
	notify.StageBanner("stage 3: computing full fingerprints")

	buckets := make(map[fingerprintKey][]*FileRecord)
	checked := 0
	for _, records := range partialBuckets {
		for _, record := range records {
			digest, err := fullFingerprint(record.Path, alg, bufferSize, shutdown)
			if err != nil {
				if errors.Is(err, ErrInterrupted) {
					return nil, err
				}
				notify.SkippingEntry(record.Path, err)
				continue
			}
			record.setFullFingerprint(digest)
			key := fingerprintKey{size: record.Size, digest: digest}
			buckets[key] = append(buckets[key], record)
			checked++
		}
	}

	pruneSingletons(buckets)
	notify.StageChecked(checked, len(buckets), countRecords(buckets))
	return buckets, nil
}

func countRecords[K comparable](buckets map[K][]*FileRecord) int {
	total := 0
	for _, records := range buckets {
		total += len(records)
	}
	return total
}
