package dupfinder

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func runScan(t *testing.T, opts Options) *ScanResult {
	t.Helper()
	finder := NewFinder(opts, Notifier{})
	result, err := finder.Run(make(chan struct{}))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return result
}

func TestFinderFindsDuplicateGroup(t *testing.T) {
	dir := t.TempDir()
	content := bytes.Repeat([]byte("data"), 256)
	writeTestFile(t, filepath.Join(dir, "one.bin"), content)
	writeTestFile(t, filepath.Join(dir, "two.bin"), content)
	writeTestFile(t, filepath.Join(dir, "sub", "three.bin"), content)
	writeTestFile(t, filepath.Join(dir, "unique.bin"), []byte("something else"))

	result := runScan(t, Options{Root: dir, Recursive: true})

	if result.CandidateCount != 4 {
		t.Errorf("CandidateCount = %d, want 4", result.CandidateCount)
	}
	if len(result.Groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(result.Groups))
	}
	group := result.Groups[0]
	if len(group.Records) != 3 {
		t.Errorf("group has %d members, want 3: %v", len(group.Records), group.Paths())
	}
	if group.Size != int64(len(content)) {
		t.Errorf("group size = %d, want %d", group.Size, len(content))
	}
	if got := result.PotentialSavings(); got != 2*int64(len(content)) {
		t.Errorf("PotentialSavings() = %d, want %d", got, 2*len(content))
	}
}

func TestFinderNoDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "a"), []byte("alpha"))
	writeTestFile(t, filepath.Join(dir, "b"), []byte("bravo++"))
	writeTestFile(t, filepath.Join(dir, "c"), []byte("charlie+++"))

	result := runScan(t, Options{Root: dir, Recursive: true})
	if len(result.Groups) != 0 {
		t.Errorf("unique files produced groups: %v", result.Groups)
	}
}

func TestFinderEmptyDirectory(t *testing.T) {
	result := runScan(t, Options{Root: t.TempDir(), Recursive: true})
	if result.CandidateCount != 0 || len(result.Groups) != 0 {
		t.Errorf("empty directory scan = %+v, want empty result", result)
	}
}

func TestFinderDistinctSizesNeverGroup(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "short"), []byte("aaaa"))
	writeTestFile(t, filepath.Join(dir, "long"), []byte("aaaaaaaa"))

	result := runScan(t, Options{Root: dir, Recursive: true})
	if len(result.Groups) != 0 {
		t.Errorf("files of different sizes grouped: %v", result.Groups)
	}
}

func TestFinderZeroByteFilesNeverGroup(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "empty1"), nil)
	writeTestFile(t, filepath.Join(dir, "empty2"), nil)

	result := runScan(t, Options{Root: dir, Recursive: true})
	if len(result.Groups) != 0 {
		t.Errorf("zero-byte files grouped: %v", result.Groups)
	}
}

func TestFinderNonRecursiveIgnoresSubdirs(t *testing.T) {
	dir := t.TempDir()
	content := []byte("duplicate content")
	writeTestFile(t, filepath.Join(dir, "top.bin"), content)
	writeTestFile(t, filepath.Join(dir, "sub", "nested.bin"), content)

	result := runScan(t, Options{Root: dir, Recursive: false})
	if result.CandidateCount != 1 {
		t.Errorf("CandidateCount = %d, want 1", result.CandidateCount)
	}
	if len(result.Groups) != 0 {
		t.Errorf("non-recursive scan grouped a nested file: %v", result.Groups)
	}
}

func TestFinderFilterExcludesDuplicates(t *testing.T) {
	dir := t.TempDir()
	content := []byte("identical image bytes")
	writeTestFile(t, filepath.Join(dir, "a.jpg"), content)
	writeTestFile(t, filepath.Join(dir, "b.jpg"), content)
	writeTestFile(t, filepath.Join(dir, "c.txt"), []byte("text"))

	filter, err := NewNameFilter([]string{"*.txt"}, "")
	if err != nil {
		t.Fatal(err)
	}

	result := runScan(t, Options{Root: dir, Recursive: true, Filter: filter})
	if result.CandidateCount != 1 {
		t.Errorf("CandidateCount = %d, want 1 (filter excludes the jpg pair)", result.CandidateCount)
	}
	if len(result.Groups) != 0 {
		t.Errorf("filtered-out duplicates still grouped: %v", result.Groups)
	}
}

func TestFinderInterrupted(t *testing.T) {
	dir := t.TempDir()
	content := []byte("to be interrupted")
	writeTestFile(t, filepath.Join(dir, "a"), content)
	writeTestFile(t, filepath.Join(dir, "b"), content)

	shutdown := make(chan struct{})
	close(shutdown)

	finder := NewFinder(Options{Root: dir, Recursive: true}, Notifier{})
	if _, err := finder.Run(shutdown); !errors.Is(err, ErrInterrupted) {
		t.Errorf("interrupted run = %v, want ErrInterrupted", err)
	}
}

func TestNewFinderDefaults(t *testing.T) {
	finder := NewFinder(Options{Root: "/some/dir"}, Notifier{})
	opts := finder.Options()

	if opts.Algorithm == nil || opts.Algorithm.Name != DefaultAlgorithm {
		t.Errorf("default algorithm = %v, want %s", opts.Algorithm, DefaultAlgorithm)
	}
	if opts.ReadBuffer != DefaultReadBuffer {
		t.Errorf("default read buffer = %d, want %d", opts.ReadBuffer, DefaultReadBuffer)
	}
	if opts.BasePath != "/some/dir" {
		t.Errorf("default base path = %s, want the root", opts.BasePath)
	}
}
