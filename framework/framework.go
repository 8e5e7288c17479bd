// Package framework loads compliance framework definitions and normalizes
// their incompatible document shapes behind one control lookup contract.
package framework

import "strings"

// Control is the normalized view of a control, practice, category, or
// baseline from any supported framework. Immutable once resolved.
type Control struct {
	Framework            string   `json:"framework"`
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Requirements         []string `json:"requirements"`
	AssessmentObjectives []string `json:"assessment_objectives"`
	Level                string   `json:"level,omitempty"`    // CMMC only
	Function             string   `json:"function,omitempty"` // AI RMF only
}

// Document is the raw parsed form of a framework definition file. A
// well-formed document populates exactly one shape: Controls (flat),
// Levels (CMMC), Functions (AI RMF), or Baselines (FedRAMP).
type Document struct {
	Name      string       `json:"name,omitempty"`
	Version   string       `json:"version,omitempty"`
	Controls  []RawControl `json:"controls,omitempty"`
	Levels    []Level      `json:"levels,omitempty"`
	Functions []Function   `json:"functions,omitempty"`
	Baselines []Baseline   `json:"baselines,omitempty"`
}

// RawControl is a single control as it appears in framework data.
type RawControl struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Requirements         []string `json:"requirements"`
	AssessmentObjectives []string `json:"assessment_objectives,omitempty"`
}

// Level groups practices under a CMMC maturity level.
type Level struct {
	Level     string       `json:"level"`
	Practices []RawControl `json:"practices"`
}

// Function groups categories under a NIST AI RMF function.
type Function struct {
	ID         string       `json:"id"`
	Name       string       `json:"name,omitempty"`
	Categories []RawControl `json:"categories"`
}

// Baseline is one entry of a FedRAMP baseline document. The baseline name
// doubles as the control id.
type Baseline struct {
	Baseline    string `json:"baseline"`
	Description string `json:"description"`
}

// Normalize produces the canonical form used for all control-id and text
// comparisons: trimmed and lowercased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
