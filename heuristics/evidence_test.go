package heuristics

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestValidateEvidence(t *testing.T) {
	rules := newTestRules(t)
	dir := t.TempDir()

	matching := writeTestFile(t, dir, "policy.md",
		"Access control policy. Control AC-2 is implemented via IAM roles.")
	nonMatching := writeTestFile(t, dir, "notes.txt", "Unrelated meeting notes.")
	missing := filepath.Join(dir, "absent.txt")

	result := rules.ValidateEvidence("AC-2", []string{matching, nonMatching, missing})

	if result.ControlID != "AC-2" {
		t.Errorf("ControlID = %q, want %q", result.ControlID, "AC-2")
	}
	if len(result.FileResults) != 3 {
		t.Fatalf("got %d file results, want 3", len(result.FileResults))
	}

	tests := []struct {
		name         string
		got          FileResult
		wantPath     string
		wantReadable bool
		wantMatch    bool
	}{
		{"matching file", result.FileResults[0], matching, true, true},
		{"non-matching file", result.FileResults[1], nonMatching, true, false},
		{"missing file", result.FileResults[2], missing, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", tt.got.Path, tt.wantPath)
			}
			if tt.got.Readable != tt.wantReadable {
				t.Errorf("Readable = %v, want %v", tt.got.Readable, tt.wantReadable)
			}
			if tt.got.HeuristicMatch != tt.wantMatch {
				t.Errorf("HeuristicMatch = %v, want %v", tt.got.HeuristicMatch, tt.wantMatch)
			}
			if !tt.wantReadable && tt.got.Excerpt != "" {
				t.Errorf("Excerpt = %q for unreadable file, want empty", tt.got.Excerpt)
			}
		})
	}
}

func TestValidateEvidenceExcerptLimit(t *testing.T) {
	rules := newTestRules(t, WithExcerptLimit(10))
	dir := t.TempDir()
	path := writeTestFile(t, dir, "long.txt", strings.Repeat("ac-2 ", 100))

	result := rules.ValidateEvidence("AC-2", []string{path})
	if len(result.FileResults) != 1 {
		t.Fatalf("got %d file results, want 1", len(result.FileResults))
	}
	fr := result.FileResults[0]
	if len(fr.Excerpt) != 10 {
		t.Errorf("Excerpt length = %d, want 10", len(fr.Excerpt))
	}
	if !fr.HeuristicMatch {
		t.Error("HeuristicMatch = false, want true (match runs on full content, not the excerpt)")
	}
}

func TestValidateEvidenceEmptyPaths(t *testing.T) {
	rules := newTestRules(t)
	result := rules.ValidateEvidence("AC-2", nil)
	if len(result.FileResults) != 0 {
		t.Errorf("got %d file results, want 0", len(result.FileResults))
	}
}

func TestResolveEvidencePaths(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.md", "a")
	b := writeTestFile(t, dir, "b.md", "b")
	writeTestFile(t, dir, "c.txt", "c")

	tests := []struct {
		name   string
		inputs []string
		want   []string
	}{
		{
			name:   "glob expansion",
			inputs: []string{filepath.Join(dir, "*.md")},
			want:   []string{a, b},
		},
		{
			name:   "plain paths pass through even when missing",
			inputs: []string{filepath.Join(dir, "absent.txt")},
			want:   []string{filepath.Join(dir, "absent.txt")},
		},
		{
			name:   "duplicates removed in order",
			inputs: []string{a, filepath.Join(dir, "*.md"), b},
			want:   []string{a, b},
		},
		{
			name:   "glob with no matches yields nothing",
			inputs: []string{filepath.Join(dir, "*.pdf")},
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveEvidencePaths(tt.inputs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveEvidencePaths(%v) = %v, want %v", tt.inputs, got, tt.want)
			}
		})
	}
}

func TestLoadEvidence(t *testing.T) {
	dir := t.TempDir()
	readable := writeTestFile(t, dir, "evidence.txt", "screenshot transcript")
	missing := filepath.Join(dir, "gone.txt")

	files := LoadEvidence([]string{readable, missing})
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0].Content != "screenshot transcript" {
		t.Errorf("files[0].Content = %q", files[0].Content)
	}
	if files[1].Content != "[ERROR: File could not be read]" {
		t.Errorf("files[1].Content = %q, want placeholder", files[1].Content)
	}
}

func TestEvidenceFileExcerpt(t *testing.T) {
	f := EvidenceFile{Path: "x", Content: "abcdefgh"}
	if got := f.Excerpt(4); got != "abcd" {
		t.Errorf("Excerpt(4) = %q, want %q", got, "abcd")
	}
	if got := f.Excerpt(100); got != "abcdefgh" {
		t.Errorf("Excerpt(100) = %q, want full content", got)
	}
	if got := f.Excerpt(0); got != "abcdefgh" {
		t.Errorf("Excerpt(0) = %q, want full content", got)
	}
}

func TestExcerptRuneBoundary(t *testing.T) {
	// "é" is 2 bytes, "日" is 3; limits landing mid-rune must back up to the
	// previous boundary instead of emitting invalid UTF-8.
	tests := []struct {
		name    string
		content string
		limit   int
		want    string
	}{
		{"limit splits 2-byte rune", "aéb", 2, "a"},
		{"limit at rune end", "aéb", 3, "aé"},
		{"limit splits 3-byte rune", "日本語", 4, "日"},
		{"limit mid second 3-byte rune", "日本語", 5, "日"},
		{"limit at second rune end", "日本語", 6, "日本"},
		{"ascii unaffected", "plain text", 5, "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := EvidenceFile{Content: tt.content}
			got := f.Excerpt(tt.limit)
			if got != tt.want {
				t.Errorf("Excerpt(%d) of %q = %q, want %q", tt.limit, tt.content, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Excerpt(%d) of %q = %q is not valid UTF-8", tt.limit, tt.content, got)
			}
		})
	}
}

func TestValidateEvidenceExcerptRuneBoundary(t *testing.T) {
	rules := newTestRules(t, WithExcerptLimit(4))
	dir := t.TempDir()
	path := writeTestFile(t, dir, "multibyte.txt", "日本語 ac-2")

	result := rules.ValidateEvidence("AC-2", []string{path})
	if len(result.FileResults) != 1 {
		t.Fatalf("got %d file results, want 1", len(result.FileResults))
	}
	fr := result.FileResults[0]
	if fr.Excerpt != "日" {
		t.Errorf("Excerpt = %q, want %q", fr.Excerpt, "日")
	}
	if !utf8.ValidString(fr.Excerpt) {
		t.Errorf("Excerpt = %q is not valid UTF-8", fr.Excerpt)
	}
	if !fr.HeuristicMatch {
		t.Error("HeuristicMatch = false, want true (match runs on full content)")
	}
}
