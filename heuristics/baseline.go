package heuristics

import (
	"fmt"
	"strings"

	"github.com/ethanolivertroy/grc-core/framework"
)

// BaselineInput carries the FIPS 199 impact categorization and system
// context used for baseline selection.
type BaselineInput struct {
	ConfidentialityImpact  string
	IntegrityImpact        string
	AvailabilityImpact     string
	DataTypes              []string
	Mission                string
	RegulatoryRequirements []string
}

// FIPS199Categorization records the per-objective impacts and the
// high-water-mark overall level.
type FIPS199Categorization struct {
	Confidentiality string `json:"confidentiality"`
	Integrity       string `json:"integrity"`
	Availability    string `json:"availability"`
	Overall         string `json:"overall"`
}

// BaselineResult recommends a FedRAMP baseline and, where the data types
// call for one, a DoD Impact Level. Rationale is an ordered audit trail of
// which rule fired.
type BaselineResult struct {
	FedRAMPBaseline string                `json:"fedramp_baseline"`
	DoDImpactLevel  string                `json:"dod_impact_level,omitempty"`
	FIPS199         FIPS199Categorization `json:"fips_199_categorization"`
	Rationale       []string              `json:"rationale"`
}

var impactRank = map[string]int{"low": 1, "moderate": 2, "high": 3}

var rankToLevel = map[int]string{1: "low", 2: "moderate", 3: "high"}

var baselineByLevel = map[string]string{
	"low":      "FedRAMP Low",
	"moderate": "FedRAMP Moderate",
	"high":     "FedRAMP High",
}

// SelectBaseline applies the FIPS 199 high-water mark (overall impact is the
// highest of C/I/A), then derives the FedRAMP baseline and DoD Impact Level.
// Unknown impact strings rank as low.
func SelectBaseline(in BaselineInput) BaselineResult {
	cRank := impactRank[framework.Normalize(in.ConfidentialityImpact)]
	iRank := impactRank[framework.Normalize(in.IntegrityImpact)]
	aRank := impactRank[framework.Normalize(in.AvailabilityImpact)]
	overall := rankToLevel[max(max(cRank, iRank), max(aRank, 1))]
	fedrampBaseline := baselineByLevel[overall]

	dataTypes := make([]string, len(in.DataTypes))
	for i, t := range in.DataTypes {
		dataTypes[i] = framework.Normalize(t)
	}
	mission := framework.Normalize(in.Mission)

	dodIL := impactLevel(dataTypes, mission, overall)

	rationale := []string{
		fmt.Sprintf("FIPS 199 categorization: C=%s, I=%s, A=%s",
			in.ConfidentialityImpact, in.IntegrityImpact, in.AvailabilityImpact),
		fmt.Sprintf("High-water mark: %s (highest of C/I/A determines overall impact)", overall),
		fmt.Sprintf("FedRAMP baseline: %s", fedrampBaseline),
	}
	if dodIL != "" {
		rationale = append(rationale, fmt.Sprintf("DoD Impact Level: %s", dodIL))
		if dodIL == "IL5" || dodIL == "IL6" {
			rationale = append(rationale,
				"Note: IL5/IL6 require DISA Cloud Computing SRG overlays beyond FedRAMP controls")
		}
	}
	rationale = append(rationale,
		fmt.Sprintf("Data types: %s", strings.Join(in.DataTypes, ", ")),
		fmt.Sprintf("Mission: %s", in.Mission),
	)
	if len(in.RegulatoryRequirements) > 0 {
		rationale = append(rationale,
			fmt.Sprintf("Regulatory requirements: %s", strings.Join(in.RegulatoryRequirements, ", ")))
	}

	return BaselineResult{
		FedRAMPBaseline: fedrampBaseline,
		DoDImpactLevel:  dodIL,
		FIPS199: FIPS199Categorization{
			Confidentiality: in.ConfidentialityImpact,
			Integrity:       in.IntegrityImpact,
			Availability:    in.AvailabilityImpact,
			Overall:         overall,
		},
		Rationale: rationale,
	}
}

// impactLevel applies the fixed DoD IL precedence over keyword-matched data
// types: classified material dominates, then CUI qualified by mission text,
// then CUI alone, then public or low-impact systems. Anything else is unset.
func impactLevel(dataTypes []string, mission, overall string) string {
	switch {
	case anyContains(dataTypes, "classified") || anyContains(dataTypes, "secret"):
		return "IL6"
	case anyContains(dataTypes, "cui") &&
		(strings.Contains(mission, "mission critical") || strings.Contains(mission, "national security")):
		return "IL5"
	case anyContains(dataTypes, "cui"):
		return "IL4"
	case anyContains(dataTypes, "public") || overall == "low":
		return "IL2"
	}
	return ""
}

func anyContains(values []string, substr string) bool {
	for _, v := range values {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}
