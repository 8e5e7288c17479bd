package heuristics

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Milestone is one dated remediation step in a POA&M entry.
type Milestone struct {
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

// POAMEntry follows the FedRAMP POA&M template fields.
type POAMEntry struct {
	WeaknessDescription     string      `json:"weakness_description"`
	PointOfContact          string      `json:"point_of_contact"`
	ResourcesRequired       string      `json:"resources_required"`
	ScheduledCompletionDate string      `json:"scheduled_completion_date"`
	Milestones              []Milestone `json:"milestones"`
	Source                  string      `json:"source"`
	Status                  string      `json:"status"`
	DeviationRequest        bool        `json:"deviation_request"`
	OriginalDetectionDate   string      `json:"original_detection_date"`
	VendorDependency        bool        `json:"vendor_dependency"`
	FalsePositive           bool        `json:"false_positive"`
}

// Finding is a structured gap finding with its POA&M entry. FindingID is an
// advisory label for humans reading the assessment, not a primary key; use
// UUIDFindingID when collision resistance matters.
type Finding struct {
	FindingID        string    `json:"finding_id"`
	POAMRequired     bool      `json:"poam_required"`
	POAMEntry        POAMEntry `json:"poam_entry"`
	RemediationSteps []string  `json:"remediation_steps"`
}

// remediationDays maps risk level to the federal remediation timeline.
// Unknown levels fall back to moderate.
func remediationDays(riskLevel string) int {
	switch riskLevel {
	case "critical":
		return 30
	case "high":
		return 90
	case "moderate":
		return 180
	case "low":
		return 365
	}
	return 180
}

// AdvisoryFindingID produces a date-stamped label with a random suffix. It
// is collision-tolerant, not unique.
func AdvisoryFindingID(now time.Time) string {
	return fmt.Sprintf("F-%s-%d", now.Format("20060102"), 100+rand.IntN(900))
}

// UUIDFindingID produces a collision-resistant identifier for callers that
// persist findings across concurrent runs.
func UUIDFindingID(now time.Time) string {
	return fmt.Sprintf("F-%s-%s", now.Format("20060102"), uuid.NewString())
}

// GenerateFinding synthesizes a finding and POA&M entry from a gap summary.
// The scheduled completion date is now plus the risk level's remediation
// offset; the planning milestone falls at the midpoint. Milestones use a
// two-phase structure: plan, then implement and validate.
func (r *Rules) GenerateFinding(gapSummary, riskLevel string) Finding {
	now := r.now().UTC()
	days := remediationDays(riskLevel)
	completion := now.AddDate(0, 0, days).Format("2006-01-02")
	midpoint := now.AddDate(0, 0, days/2).Format("2006-01-02")

	return Finding{
		FindingID:    r.findingID(now),
		POAMRequired: true,
		POAMEntry: POAMEntry{
			WeaknessDescription:     gapSummary,
			PointOfContact:          "ISSO (to be assigned)",
			ResourcesRequired:       "Engineering and security team remediation effort",
			ScheduledCompletionDate: completion,
			Milestones: []Milestone{
				{Description: "Develop remediation plan and assign resources", DueDate: midpoint},
				{Description: "Implement remediation and validate effectiveness", DueDate: completion},
			},
			Source:                "assessment",
			Status:                "open",
			OriginalDetectionDate: now.Format("2006-01-02"),
		},
		RemediationSteps: []string{
			gapSummary,
			fmt.Sprintf("Remediation target: %s (%d days based on %s risk level).", completion, days, riskLevel),
		},
	}
}
