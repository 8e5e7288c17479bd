package heuristics

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ethanolivertroy/grc-core/framework"
)

// FileResult is the per-path outcome of evidence validation. Unreadable
// paths are flagged rather than failing the batch, so a request over N paths
// always yields N results.
type FileResult struct {
	Path           string `json:"path"`
	Readable       bool   `json:"readable"`
	Excerpt        string `json:"excerpt"`
	HeuristicMatch bool   `json:"heuristic_match"`
}

// EvidenceResult holds the validation outcome for one control across a set
// of evidence files.
type EvidenceResult struct {
	ControlID   string       `json:"control_id"`
	FileResults []FileResult `json:"file_results"`
}

// ValidateEvidence reads each evidence path and reports whether the control
// id appears in the file content. The match is a hint only; evidence
// sufficiency is the caller's judgment.
func (r *Rules) ValidateEvidence(controlID string, paths []string) EvidenceResult {
	token := framework.Normalize(controlID)
	results := make([]FileResult, 0, len(paths))

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			results = append(results, FileResult{Path: path})
			continue
		}
		text := string(content)
		results = append(results, FileResult{
			Path:           path,
			Readable:       true,
			Excerpt:        truncate(text, r.excerptLimit),
			HeuristicMatch: strings.Contains(framework.Normalize(text), token),
		})
	}

	return EvidenceResult{ControlID: controlID, FileResults: results}
}

// truncate bounds s to at most limit bytes, backing up to a rune boundary so
// the excerpt is never cut mid-rune.
func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// unreadablePlaceholder keeps failed paths traceable in loaded evidence so
// findings can still reference which files were attempted.
const unreadablePlaceholder = "[ERROR: File could not be read]"

// EvidenceFile is one loaded evidence document.
type EvidenceFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Excerpt returns the file content truncated to limit bytes.
func (f EvidenceFile) Excerpt(limit int) string {
	return truncate(f.Content, limit)
}

var globRe = regexp.MustCompile(`[\*\?\[]`)

// ResolveEvidencePaths expands glob patterns among the inputs and removes
// duplicates while preserving order. Plain paths pass through untouched,
// even if they do not exist; load failures surface later as unreadable
// entries.
func ResolveEvidencePaths(inputs []string) []string {
	var resolved []string
	for _, input := range inputs {
		if globRe.MatchString(input) {
			matches, err := filepath.Glob(input)
			if err == nil {
				resolved = append(resolved, matches...)
			}
			continue
		}
		resolved = append(resolved, input)
	}

	seen := make(map[string]bool, len(resolved))
	deduped := resolved[:0]
	for _, path := range resolved {
		if seen[path] {
			continue
		}
		seen[path] = true
		deduped = append(deduped, path)
	}
	return deduped
}

// LoadEvidence reads each path, substituting a placeholder for files that
// cannot be read. The result always has one entry per input path.
func LoadEvidence(paths []string) []EvidenceFile {
	files := make([]EvidenceFile, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			files = append(files, EvidenceFile{Path: path, Content: unreadablePlaceholder})
			continue
		}
		files = append(files, EvidenceFile{Path: path, Content: string(content)})
	}
	return files
}
