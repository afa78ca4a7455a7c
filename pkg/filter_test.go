package dupfinder

import "testing"

func TestNameFilterAccepts(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		regex    string
		fileName string
		expected bool
	}{
		{"no patterns accepts everything", nil, "", "anything.bin", true},
		{"glob match", []string{"*.txt"}, "", "notes.txt", true},
		{"glob mismatch", []string{"*.txt"}, "", "photo.jpg", false},
		{"any of several globs", []string{"*.txt", "*.md"}, "", "readme.md", true},
		{"regex match", nil, `^IMG_\d+`, "IMG_0042.jpg", true},
		{"regex mismatch", nil, `^IMG_\d+`, "holiday.jpg", false},
		{"glob or regex", []string{"*.txt"}, `^IMG_\d+`, "IMG_1.raw", true},
		{"empty name rejected when configured", []string{"*"}, "", "", false},
		{"empty name accepted when unconfigured", nil, "", "", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			filter, err := NewNameFilter(test.patterns, test.regex)
			if err != nil {
				t.Fatalf("NewNameFilter returned error: %v", err)
			}
			if got := filter.Accepts(test.fileName); got != test.expected {
				t.Errorf("Accepts(%q) = %v, want %v", test.fileName, got, test.expected)
			}
		})
	}
}

func TestNameFilterCompileErrors(t *testing.T) {
	if _, err := NewNameFilter([]string{"[unclosed"}, ""); err == nil {
		t.Error("expected error for invalid glob pattern")
	}
	if _, err := NewNameFilter(nil, "(unclosed"); err == nil {
		t.Error("expected error for invalid regular expression")
	}
}

func TestNameFilterNilSafe(t *testing.T) {
	var filter *NameFilter
	if filter.Configured() {
		t.Error("nil filter should not report as configured")
	}
	if !filter.Accepts("anything") {
		t.Error("nil filter should accept everything")
	}
}
