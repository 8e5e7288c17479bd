// Package mapping resolves cross-framework control equivalence from a
// framework-mappings document.
package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/ethanolivertroy/grc-core/framework"
)

// Pair is one source-to-target control mapping within an entry.
type Pair struct {
	SourceControlID string `json:"source_control_id"`
	TargetControlID string `json:"target_control_id"`
}

// Entry maps controls of one source framework onto one target framework.
type Entry struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Mappings []Pair `json:"mappings"`
}

// document is the on-disk shape of the mappings file.
type document struct {
	Mappings []Entry `json:"mappings"`
}

// RelatedControl identifies a target-framework control equivalent to a
// queried source control.
type RelatedControl struct {
	Framework string `json:"framework"`
	ControlID string `json:"control_id"`
}

// Index answers cross-framework equivalence queries. The mappings document
// is loaded once on first use and is read-only afterwards; concurrent first
// queries share a single underlying load.
type Index struct {
	path string

	once    sync.Once
	entries []Entry
	err     error
}

// NewIndex creates an index over the given mappings document path. The file
// is not read until the first query.
func NewIndex(path string) *Index {
	return &Index{path: path}
}

func (ix *Index) load() ([]Entry, error) {
	ix.once.Do(func() {
		raw, err := os.ReadFile(ix.path)
		if err != nil {
			ix.err = fmt.Errorf("failed to read framework mappings: %w", err)
			return
		}
		var doc document
		if err := json.Unmarshal(raw, &doc); err != nil {
			ix.err = fmt.Errorf("failed to parse framework mappings: %w", err)
			return
		}
		ix.entries = doc.Mappings
	})
	return ix.entries, ix.err
}

// Entries returns all mapping entries in document order.
func (ix *Index) Entries() ([]Entry, error) {
	return ix.load()
}

// Related collects every target pair for a source framework and control id.
// Control-id matching is case- and whitespace-insensitive; document order is
// preserved and duplicates are kept as-is.
func (ix *Index) Related(sourceFramework, controlID string) ([]RelatedControl, error) {
	entries, err := ix.load()
	if err != nil {
		return nil, err
	}

	target := framework.Normalize(controlID)
	var related []RelatedControl
	for _, entry := range entries {
		if entry.Source != sourceFramework {
			continue
		}
		for _, pair := range entry.Mappings {
			if framework.Normalize(pair.SourceControlID) == target {
				related = append(related, RelatedControl{
					Framework: entry.Target,
					ControlID: pair.TargetControlID,
				})
			}
		}
	}
	return related, nil
}
