package heuristics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethanolivertroy/grc-core/framework"
	"github.com/ethanolivertroy/grc-core/mapping"
)

const testFrameworkFixture = `{
  "name": "Test Framework",
  "controls": [
    {
      "id": "TC-1",
      "name": "Access Enforcement",
      "requirements": ["least privilege", "audit logging"]
    },
    {
      "id": "TC-2",
      "name": "Session Lock",
      "requirements": ["session timeout"]
    }
  ]
}`

const cmmcFixture = `{
  "name": "CMMC",
  "levels": [
    {"level": "Level 1", "practices": [
      {"id": "AC.L1-3.1.1", "name": "Authorized Access Control"},
      {"id": "AC.L1-3.1.2", "name": "Transaction and Function Control"}
    ]},
    {"level": "Level 2", "practices": [
      {"id": "AU.L2-3.3.1", "name": "System Auditing"},
      {"id": "AU.L2-3.3.2", "name": "User Accountability"},
      {"id": "IR.L2-3.6.1", "name": "Incident Handling"}
    ]},
    {"level": "Level 3", "practices": [
      {"id": "CA.L3-3.12.1", "name": "Security Assessment"}
    ]}
  ]
}`

const testMappingsFixture = `{
  "mappings": [
    {
      "source": "Test Framework",
      "target": "ISO 27001",
      "mappings": [
        {"source_control_id": "TC-1", "target_control_id": "A.5.15"},
        {"source_control_id": "TC-1", "target_control_id": "A.8.2"}
      ]
    }
  ]
}`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

// newBareRules builds a Rules value over an empty data directory with no
// mapping index, for exercising missing-data and missing-configuration paths.
func newBareRules(t *testing.T) *Rules {
	t.Helper()
	return New(framework.NewStore(t.TempDir()), nil)
}

// newTestRules builds a Rules value over a temp-dir store preloaded with a
// flat test framework, a CMMC fixture, and a small mappings document.
func newTestRules(t *testing.T, opts ...Option) *Rules {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, dir, "test-framework.json", testFrameworkFixture)
	writeTestFile(t, dir, "cmmc.json", cmmcFixture)
	mappingsPath := writeTestFile(t, dir, "framework-mappings.json", testMappingsFixture)

	store := framework.NewStore(dir)
	store.Register("Test Framework", "test-framework.json", framework.ShapeFlat)
	store.Register("CMMC", "cmmc.json", framework.ShapeLeveled)

	return New(store, mapping.NewIndex(mappingsPath), opts...)
}
