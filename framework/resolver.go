package framework

import "fmt"

// Resolver answers control lookups across every registered framework,
// normalizing the four document shapes into the Control contract.
type Resolver struct {
	store *Store
}

// NewResolver creates a resolver backed by the given store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// Lookup finds a control by id within a framework. Control-id matching is
// case- and whitespace-insensitive; the first match wins. An unknown
// framework or unmatched id returns found=false, never an error; errors are
// reserved for read or parse failures of the framework data itself.
func (r *Resolver) Lookup(framework, controlID string) (Control, bool, error) {
	doc, ok, err := r.store.Load(framework)
	if err != nil {
		return Control{}, false, err
	}
	if !ok {
		return Control{}, false, nil
	}

	shape, _ := r.store.Shape(framework)
	target := Normalize(controlID)

	switch shape {
	case ShapeFlat:
		return matchFlat(framework, doc.Controls, target)
	case ShapeLeveled:
		return matchLeveled(framework, doc.Levels, target)
	case ShapeFunctional:
		return matchFunctional(framework, doc.Functions, target)
	case ShapeBaseline:
		return matchBaseline(framework, doc.Baselines, target)
	}
	return Control{}, false, nil
}

func fromRaw(framework string, raw RawControl) Control {
	return Control{
		Framework:            framework,
		ID:                   raw.ID,
		Name:                 raw.Name,
		Requirements:         raw.Requirements,
		AssessmentObjectives: raw.AssessmentObjectives,
	}
}

func matchFlat(framework string, controls []RawControl, target string) (Control, bool, error) {
	for _, raw := range controls {
		if Normalize(raw.ID) == target {
			return fromRaw(framework, raw), true, nil
		}
	}
	return Control{}, false, nil
}

func matchLeveled(framework string, levels []Level, target string) (Control, bool, error) {
	for _, level := range levels {
		for _, practice := range level.Practices {
			if Normalize(practice.ID) == target {
				ctrl := fromRaw(framework, practice)
				ctrl.Level = level.Level
				return ctrl, true, nil
			}
		}
	}
	return Control{}, false, nil
}

func matchFunctional(framework string, functions []Function, target string) (Control, bool, error) {
	for _, fn := range functions {
		for _, category := range fn.Categories {
			if Normalize(category.ID) == target {
				ctrl := fromRaw(framework, category)
				ctrl.Function = fn.ID
				return ctrl, true, nil
			}
		}
	}
	return Control{}, false, nil
}

// matchBaseline synthesizes a single-requirement Control from a baseline
// entry; the baseline name serves as the control id.
func matchBaseline(framework string, baselines []Baseline, target string) (Control, bool, error) {
	for _, baseline := range baselines {
		if Normalize(baseline.Baseline) == target {
			return Control{
				Framework:    framework,
				ID:           baseline.Baseline,
				Name:         fmt.Sprintf("FedRAMP %s baseline", baseline.Baseline),
				Requirements: []string{baseline.Description},
			}, true, nil
		}
	}
	return Control{}, false, nil
}
