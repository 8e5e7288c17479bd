// Package scaffold provides static OSCAL reference structures: the SSP and
// mapping-collection skeletons a conversion pass fills in, and the fixed set
// of cross-framework relationship types. These are lookup tables, not
// business logic; the only computation is substituting the caller's level
// and count hints into the descriptions.
package scaffold

import (
	"fmt"
	"strings"
)

// OSCALVersion is the OSCAL specification version the scaffolds target.
const OSCALVersion = "1.2.0"

// Field describes one required field of a scaffold section.
type Field struct {
	Field       string `json:"field"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Section is a named scaffold section with its required fields.
type Section struct {
	Section        string  `json:"section"`
	RequiredFields []Field `json:"required_fields"`
}

// Template enumerates the fields of a repeated scaffold entry.
type Template struct {
	Fields []Field `json:"fields"`
}

// RelationshipType is one of the fixed cross-framework control relationship
// kinds used in mapping collections.
type RelationshipType struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RelationshipTypes returns the enumerated relationship kinds, in precedence
// order for documentation purposes.
func RelationshipTypes() []RelationshipType {
	return []RelationshipType{
		{Type: "equivalent-to", Description: "Controls address the same requirement — functionally interchangeable"},
		{Type: "subset-of", Description: "Source is a narrower requirement contained within target"},
		{Type: "superset-of", Description: "Source is a broader requirement that encompasses target"},
		{Type: "intersects-with", Description: "Controls partially overlap — neither fully contains the other"},
	}
}

// SSPScaffold is the OSCAL SSP skeleton.
type SSPScaffold struct {
	OSCALVersion                   string    `json:"oscal_version"`
	RequiredSections               []Section `json:"required_sections"`
	ImplementedRequirementTemplate Template  `json:"implemented_requirement_template"`
	Notes                          []string  `json:"notes"`
}

// SSP returns the SSP skeleton for a security sensitivity level. A positive
// controlCountHint is echoed into the implemented-requirements description.
func SSP(level string, controlCountHint int) SSPScaffold {
	level = strings.ToLower(level)
	hintNote := ""
	if controlCountHint > 0 {
		hintNote = fmt.Sprintf("Hint: expect ~%d controls.", controlCountHint)
	}

	return SSPScaffold{
		OSCALVersion: OSCALVersion,
		RequiredSections: []Section{
			{
				Section: "metadata",
				RequiredFields: []Field{
					{Field: "title", Type: "string", Description: "SSP document title"},
					{Field: "last-modified", Type: "string", Description: "ISO 8601 datetime of last modification"},
					{Field: "version", Type: "string", Description: "Document version (e.g., '1.0')"},
					{Field: "oscal-version", Type: "string", Description: "OSCAL specification version (use '" + OSCALVersion + "')"},
					{Field: "roles", Type: "array", Description: "Organizational roles (id, title) referenced by parties"},
					{Field: "parties", Type: "array", Description: "Organizations and individuals (uuid, type, name)"},
				},
			},
			{
				Section: "import-profile",
				RequiredFields: []Field{
					{Field: "href", Type: "string", Description: "URI of the baseline profile this SSP is based on (e.g., FedRAMP Moderate profile URL)"},
				},
			},
			{
				Section: "system-characteristics",
				RequiredFields: []Field{
					{Field: "system-ids", Type: "array", Description: "Array of system identifier objects, each with identifier-type and id"},
					{Field: "system-name", Type: "string", Description: "Official system name"},
					{Field: "description", Type: "string", Description: "Narrative description of the system's purpose and function"},
					{Field: "security-sensitivity-level", Type: "string", Description: fmt.Sprintf("Impact level: '%s'", level)},
					{Field: "system-information", Type: "object", Description: "information-types array with NIST SP 800-60 categorizations and C/I/A impacts"},
					{Field: "security-impact-level", Type: "object", Description: "security-objective-confidentiality, security-objective-integrity, security-objective-availability"},
					{Field: "status", Type: "object", Description: "System status with 'state' field (operational, under-development, under-major-modification, disposition, other)"},
					{Field: "authorization-boundary", Type: "object", Description: "Narrative description of what is inside and outside the authorization boundary"},
				},
			},
			{
				Section: "system-implementation",
				RequiredFields: []Field{
					{Field: "users", Type: "array", Description: "System users with uuid, role-ids, and title (optional but recommended)"},
					{Field: "components", Type: "array", Description: "System components (required). Each needs uuid, type, title, description, and status. Use type 'this-system' for the primary system and 'leveraged-system' for inherited services."},
				},
			},
			{
				Section: "control-implementation",
				RequiredFields: []Field{
					{Field: "description", Type: "string", Description: "Overall description of the control implementation approach"},
					{Field: "implemented-requirements", Type: "array", Description: strings.TrimSpace("Array of control implementations. " + hintNote)},
				},
			},
		},
		ImplementedRequirementTemplate: Template{
			Fields: []Field{
				{Field: "uuid", Type: "string", Description: "Unique UUID for this requirement entry"},
				{Field: "control-id", Type: "string", Description: "NIST 800-53 control ID (lowercase, e.g., 'ac-2')"},
				{Field: "statements", Type: "array", Description: "Array of statement objects, each with statement-id, uuid, and by-components"},
				{Field: "by-components[].component-uuid", Type: "string", Description: "UUID of the component implementing this part of the control"},
				{Field: "by-components[].description", Type: "string", Description: "Narrative describing how this component satisfies the control requirement"},
				{Field: "by-components[].implementation-status.state", Type: "string", Description: "One of: implemented, partial, planned, alternative, not-applicable"},
			},
		},
		Notes: []string{
			"All UUIDs must be valid UUID v4 or v5 format.",
			"Control IDs must be lowercase (e.g., 'ac-2', not 'AC-2').",
			fmt.Sprintf("Security sensitivity level should be '%s'.", level),
			"Use the control_lookup tool to validate control IDs against the framework data.",
			"The by-components pattern supports shared responsibility — use separate entries for service provider vs. inherited controls.",
		},
	}
}

// MappingScaffold is the OSCAL mapping-collection skeleton.
type MappingScaffold struct {
	OSCALVersion      string             `json:"oscal_version"`
	RequiredSections  []Section          `json:"required_sections"`
	MapEntryTemplate  Template           `json:"map_entry_template"`
	RelationshipTypes []RelationshipType `json:"relationship_types"`
	Notes             []string           `json:"notes"`
}

// Mapping returns the mapping-collection skeleton for a source and target
// framework. A positive mappingCountHint is echoed into the maps description.
func Mapping(source, target string, mappingCountHint int) MappingScaffold {
	hintNote := ""
	if mappingCountHint > 0 {
		hintNote = fmt.Sprintf("Hint: expect ~%d control pairs.", mappingCountHint)
	}

	return MappingScaffold{
		OSCALVersion: OSCALVersion,
		RequiredSections: []Section{
			{
				Section: "metadata",
				RequiredFields: []Field{
					{Field: "title", Type: "string", Description: "Mapping collection title"},
					{Field: "last-modified", Type: "string", Description: "ISO 8601 datetime of last modification"},
					{Field: "version", Type: "string", Description: "Document version (e.g., '1.0')"},
					{Field: "oscal-version", Type: "string", Description: "OSCAL specification version (use '" + OSCALVersion + "')"},
				},
			},
			{
				Section: "mappings",
				RequiredFields: []Field{
					{Field: "uuid", Type: "string", Description: "Unique UUID for this mapping group"},
					{Field: "source-resource", Type: "object", Description: fmt.Sprintf("Source framework reference (e.g., '%s')", source)},
					{Field: "target-resource", Type: "object", Description: fmt.Sprintf("Target framework reference (e.g., '%s')", target)},
					{Field: "maps", Type: "array", Description: strings.TrimSpace("Array of individual control-to-control mappings. " + hintNote)},
				},
			},
		},
		MapEntryTemplate: Template{
			Fields: []Field{
				{Field: "uuid", Type: "string", Description: "Unique UUID for this map entry"},
				{Field: "source.type", Type: "string", Description: "Source element type (typically 'control')"},
				{Field: "source.id-ref", Type: "string", Description: "Source control ID (lowercase, e.g., 'ac-2')"},
				{Field: "target.type", Type: "string", Description: "Target element type (typically 'control')"},
				{Field: "target.id-ref", Type: "string", Description: "Target control ID (lowercase)"},
				{Field: "relationship.type", Type: "string", Description: "Relationship type (see relationship_types)"},
			},
		},
		RelationshipTypes: RelationshipTypes(),
		Notes: []string{
			"All UUIDs must be valid UUID v4 or v5 format.",
			"Control IDs must be lowercase (e.g., 'ac-2', not 'AC-2').",
			fmt.Sprintf("Source framework: '%s'.", source),
			fmt.Sprintf("Target framework: '%s'.", target),
			"Use the control_lookup tool to validate control IDs against the framework data.",
			"Default to 'equivalent-to' for direct control mappings unless context suggests otherwise.",
		},
	}
}
