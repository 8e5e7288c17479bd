package heuristics

import (
	"fmt"

	"github.com/ethanolivertroy/grc-core/mapping"
)

// MappedGroup holds every known equivalent of one source control.
type MappedGroup struct {
	SourceControlID string                   `json:"source_control_id"`
	Related         []mapping.RelatedControl `json:"related"`
}

// MapResult groups cross-framework equivalents per queried control id,
// preserving input order. Groups are not deduplicated against each other.
type MapResult struct {
	SourceFramework string        `json:"source_framework"`
	Mappings        []MappedGroup `json:"mappings"`
}

// MapControls resolves cross-framework equivalents for each control id. Ids
// with no known equivalents produce a group with an empty Related list so
// the caller sees one group per input.
func (r *Rules) MapControls(sourceFramework string, controlIDs []string) (MapResult, error) {
	if r.index == nil {
		return MapResult{}, fmt.Errorf("no mapping index configured")
	}

	result := MapResult{SourceFramework: sourceFramework}
	for _, id := range controlIDs {
		related, err := r.index.Related(sourceFramework, id)
		if err != nil {
			return MapResult{}, err
		}
		result.Mappings = append(result.Mappings, MappedGroup{
			SourceControlID: id,
			Related:         related,
		})
	}
	return result, nil
}
