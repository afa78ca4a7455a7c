package dupfinder

// scanStage tracks how far a record has advanced through the pipeline.
// Stages only ever move forward; a record is never revisited by an
// earlier stage.
type scanStage int

const (
	stageSized scanStage = iota
	stagePartialHashed
	stageFullHashed
)

// FileRecord represents one regular file under consideration during a
// scan. Records are created by the size stage with Path and Size
// populated; the fingerprint fields are set exactly once each by their
// respective stages and never recomputed.
type FileRecord struct {
	Path string
	Size int64

	partialFingerprint string
	fullFingerprint    string
	stage              scanStage
}

func newFileRecord(path string, size int64) *FileRecord {
	return &FileRecord{Path: path, Size: size, stage: stageSized}
}

// PartialFingerprint returns the prefix digest and whether it has been
// computed yet.
func (r *FileRecord) PartialFingerprint() (string, bool) {
	return r.partialFingerprint, r.stage >= stagePartialHashed
}

// FullFingerprint returns the whole-content digest and whether it has
// been computed yet.
func (r *FileRecord) FullFingerprint() (string, bool) {
	return r.fullFingerprint, r.stage >= stageFullHashed
}

// setPartialFingerprint records the stage-two digest. The fingerprint
// fields are write-once; attempting to set one out of order indicates a
// stage sequencing bug, not a recoverable condition.
func (r *FileRecord) setPartialFingerprint(fp string) {
	if r.stage != stageSized {
		panic("dupfinder: partial fingerprint set out of order for " + r.Path)
	}
	r.partialFingerprint = fp
	r.stage = stagePartialHashed
}

// setFullFingerprint records the stage-three digest.
func (r *FileRecord) setFullFingerprint(fp string) {
	if r.stage != stagePartialHashed {
		panic("dupfinder: full fingerprint set out of order for " + r.Path)
	}
	r.fullFingerprint = fp
	r.stage = stageFullHashed
}

// DuplicateGroup is an ordered set of files confirmed byte-identical by
// the verifier. The first record is the kept representative; every
// following record is removable. Groups are immutable once produced.
type DuplicateGroup struct {
	Size        int64         `json:"size"`
	Fingerprint string        `json:"fingerprint"`
	Records     []*FileRecord `json:"-"`
}

// Paths returns the member paths in group order.
func (g *DuplicateGroup) Paths() []string {
	paths := make([]string, len(g.Records))
	for i, rec := range g.Records {
		paths[i] = rec.Path
	}
	return paths
}

// ScanResult is the terminal artifact of one pipeline run.
type ScanResult struct {
	Groups []DuplicateGroup

	// CandidateCount is the number of files the collector accepted,
	// before any bucketing. A zero count with a configured name filter
	// is reported differently from "no duplicates found".
	CandidateCount int
}

// TotalDuplicateFiles counts every member of every verified group.
func (r *ScanResult) TotalDuplicateFiles() int {
	total := 0
	for i := range r.Groups {
		total += len(r.Groups[i].Records)
	}
	return total
}

// DeletableFiles counts removable members (everything except each
// group's kept representative).
func (r *ScanResult) DeletableFiles() int {
	deletable := 0
	for i := range r.Groups {
		deletable += len(r.Groups[i].Records) - 1
	}
	return deletable
}

// PotentialSavings is the reclaimable byte count: for each group of n
// files of size s, s*(n-1).
func (r *ScanResult) PotentialSavings() int64 {
	var savings int64
	for i := range r.Groups {
		g := &r.Groups[i]
		savings += g.Size * int64(len(g.Records)-1)
	}
	return savings
}
