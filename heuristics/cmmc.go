package heuristics

import (
	"fmt"

	"github.com/ethanolivertroy/grc-core/framework"
)

// Implementation reports the status of one practice or control.
type Implementation struct {
	ControlID string `json:"control_id"`
	Status    string `json:"status"`
}

// LevelResult is the outcome of a CMMC level check. Level is "None" when no
// level's practice set is fully covered.
type LevelResult struct {
	Level           string `json:"level"`
	GapsToNextLevel int    `json:"gaps_to_next_level"`
}

// CheckCMMCLevel walks the declared CMMC levels in order. A level is
// achieved only when every one of its practices is implemented or satisfied;
// the walk halts at the first level with missing practices and reports how
// many block progression. Levels beyond the halt point are not evaluated.
func (r *Rules) CheckCMMCLevel(impls []Implementation) (LevelResult, error) {
	doc, ok, err := r.store.Load("CMMC")
	if err != nil {
		return LevelResult{}, err
	}
	if !ok {
		return LevelResult{}, fmt.Errorf("CMMC framework is not registered")
	}

	implemented := make(map[string]bool, len(impls))
	for _, impl := range impls {
		switch framework.Normalize(impl.Status) {
		case "implemented", "satisfied":
			implemented[framework.Normalize(impl.ControlID)] = true
		}
	}

	result := LevelResult{Level: "None"}
	for _, level := range doc.Levels {
		missing := 0
		for _, practice := range level.Practices {
			if !implemented[framework.Normalize(practice.ID)] {
				missing++
			}
		}
		if missing > 0 {
			result.GapsToNextLevel = missing
			break
		}
		result.Level = level.Level
	}
	return result, nil
}
