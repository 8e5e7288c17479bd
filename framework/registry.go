package framework

// Shape identifies which of the four recognized document structures a
// framework file uses. Lookup dispatches on the shape rather than probing
// the document structurally.
type Shape int

const (
	ShapeFlat       Shape = iota // flat controls array
	ShapeLeveled                 // levels[].practices[] (CMMC)
	ShapeFunctional              // functions[].categories[] (NIST AI RMF)
	ShapeBaseline                // baselines[] (FedRAMP)
)

// RegistryEntry binds a framework name to its data file and document shape.
type RegistryEntry struct {
	File  string
	Shape Shape
}

// DefaultRegistry returns the built-in framework registry. Framework names
// are the human-readable keys callers pass to Lookup.
func DefaultRegistry() map[string]RegistryEntry {
	return map[string]RegistryEntry{
		"NIST 800-53":            {File: "nist-800-53-r5.json", Shape: ShapeFlat},
		"NIST 800-171":           {File: "nist-800-171-r2.json", Shape: ShapeFlat},
		"CMMC":                   {File: "cmmc-2.0-practices.json", Shape: ShapeLeveled},
		"NIST AI RMF":            {File: "nist-ai-rmf.json", Shape: ShapeFunctional},
		"ISO 42001":              {File: "iso-42001.json", Shape: ShapeFlat},
		"EU AI Act":              {File: "eu-ai-act.json", Shape: ShapeFlat},
		"ISO 27001":              {File: "iso-27001.json", Shape: ShapeFlat},
		"SOC 2":                  {File: "soc2.json", Shape: ShapeFlat},
		"CSA CCM":                {File: "csa-ccm.json", Shape: ShapeFlat},
		"NIST Privacy Framework": {File: "nist-privacy-framework.json", Shape: ShapeFlat},
		"GDPR":                   {File: "gdpr.json", Shape: ShapeFlat},
		"CCPA":                   {File: "ccpa.json", Shape: ShapeFlat},
		"OECD AI Principles":     {File: "oecd-ai-principles.json", Shape: ShapeFlat},
		"White House EO 14110":   {File: "white-house-eo-14110.json", Shape: ShapeFlat},
		"DFARS 252.204-7012":     {File: "dfars-252.204-7012.json", Shape: ShapeFlat},
		"FISMA":                  {File: "fisma.json", Shape: ShapeFlat},
		"FedRAMP":                {File: "fedramp-baselines.json", Shape: ShapeBaseline},
	}
}
