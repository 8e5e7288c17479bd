package heuristics

import (
	"strings"

	"github.com/ethanolivertroy/grc-core/framework"
)

// GapResult pairs a control's requirements with the heuristic gaps found in
// an implementation description.
type GapResult struct {
	ControlID      string   `json:"control_id"`
	Found          bool     `json:"found"`
	Requirements   []string `json:"requirements"`
	Implementation string   `json:"implementation_description"`
	HeuristicGaps  []string `json:"heuristic_gaps"`
}

// AnalyzeGaps reports every requirement of a control whose text does not
// appear verbatim (case-insensitively) in the implementation description.
// Substring containment is a fast first-pass signal, not semantic analysis.
func (r *Rules) AnalyzeGaps(fw, controlID, implementation string) (GapResult, error) {
	ctrl, ok, err := r.resolver.Lookup(fw, controlID)
	if err != nil {
		return GapResult{}, err
	}
	if !ok {
		return GapResult{
			ControlID:      controlID,
			Implementation: implementation,
			HeuristicGaps:  []string{"Control not found in data set."},
		}, nil
	}

	described := framework.Normalize(implementation)
	var gaps []string
	for _, req := range ctrl.Requirements {
		if !strings.Contains(described, framework.Normalize(req)) {
			gaps = append(gaps, req)
		}
	}

	return GapResult{
		ControlID:      controlID,
		Found:          true,
		Requirements:   ctrl.Requirements,
		Implementation: implementation,
		HeuristicGaps:  gaps,
	}, nil
}
