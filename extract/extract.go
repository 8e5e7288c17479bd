// Package extract parses document table sequences into per-control records
// using the FedRAMP SSP paired-table pattern: a control summary table,
// optionally followed by an implementation statement table. The tables come
// from an external document-structure reader; each exposes its cell texts in
// order.
package extract

import (
	"io"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// Table is one document table, reduced to its cell texts in reading order.
// FedRAMP SSP tables are single-column, so metadata is embedded in each
// cell's text rather than spread across columns.
type Table struct {
	Cells []string
}

// ExtractedControl is the structured record produced per control. Parts maps
// part letters to their statement text; RawNarrative holds every statement
// line, part-labelled or not.
type ExtractedControl struct {
	ControlID    string            `json:"control_id"`
	Status       string            `json:"status"`
	Origination  string            `json:"origination"`
	Roles        string            `json:"roles"`
	Params       map[string]string `json:"params"`
	Parts        map[string]string `json:"parts"`
	RawNarrative string            `json:"raw_narrative"`
}

var (
	// Matches "AC-2 Control Summary Information" (optional enhancement number).
	summaryHeaderRe = regexp.MustCompile(`^([A-Z]{2}-\d+(?:\(\d+\))?)\s+Control Summary Information`)
	// Matches "AC-2 What is the solution...".
	statementHeaderRe = regexp.MustCompile(`^([A-Z]{2}-\d+(?:\(\d+\))?)\s+What is the solution`)
	// Matches "Part a:" or "Part (a):".
	partLabelRe = regexp.MustCompile(`(?i)^Part\s+\(?([a-z])\)?:`)
	paramRe     = regexp.MustCompile(`^Parameter\s+(\S+?):\s*(.*)`)
)

// Extractor scans table sequences. The zero value is usable; NewWithLogger
// enables debug traces for skipped tables.
type Extractor struct {
	log *logrus.Logger
}

// New creates an extractor with logging disabled.
func New() *Extractor {
	return NewWithLogger(nil)
}

// NewWithLogger creates an extractor that reports skipped tables to the
// given logger. A nil logger disables logging.
func NewWithLogger(log *logrus.Logger) *Extractor {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Extractor{log: log}
}

// Controls runs the paired-table scan over the sequence. Each summary table
// emits one record; a statement table is consumed only when it is the table
// immediately following a summary match — never speculatively. Tables that
// match neither pattern are skipped without stopping the scan.
func (e *Extractor) Controls(tables []Table) []ExtractedControl {
	var controls []ExtractedControl

	i := 0
	for i < len(tables) {
		ctrl, ok := parseSummary(tables[i].Cells)
		if !ok {
			e.log.WithField("table", i).Debug("table matches no control pattern, skipped")
			i++
			continue
		}

		if i+1 < len(tables) && isStatementTable(tables[i+1].Cells) {
			ctrl.Parts, ctrl.RawNarrative = parseStatement(tables[i+1].Cells)
			i += 2
		} else {
			i++
		}

		controls = append(controls, ctrl)
	}

	return controls
}

// parseSummary parses a Control Summary Information table. The first cell
// must carry the summary header; the remaining fields are matched by prefix
// in any order.
func parseSummary(cells []string) (ExtractedControl, bool) {
	if len(cells) == 0 {
		return ExtractedControl{}, false
	}
	match := summaryHeaderRe.FindStringSubmatch(cells[0])
	if match == nil {
		return ExtractedControl{}, false
	}

	ctrl := ExtractedControl{
		ControlID: strings.ToLower(match[1]),
		Params:    make(map[string]string),
		Parts:     make(map[string]string),
	}

	for _, cell := range cells {
		trimmed := strings.TrimSpace(cell)
		switch {
		case strings.HasPrefix(trimmed, "Responsible Role:"):
			ctrl.Roles = strings.TrimSpace(strings.TrimPrefix(trimmed, "Responsible Role:"))
		case strings.HasPrefix(trimmed, "Implementation Status"):
			ctrl.Status = trimmed
		case strings.HasPrefix(trimmed, "Control Origination"):
			ctrl.Origination = trimmed
		case strings.HasPrefix(trimmed, "Parameter "):
			if m := paramRe.FindStringSubmatch(trimmed); m != nil {
				ctrl.Params[m[1]] = m[2]
			}
		}
	}

	return ctrl, true
}

func isStatementTable(cells []string) bool {
	return len(cells) > 0 && statementHeaderRe.MatchString(cells[0])
}

// parseStatement splits a "What is the solution" table into part-labelled
// statements and the raw narrative. The header cell is skipped; part labels
// are stripped from the keyed text but the full line still joins the
// narrative.
func parseStatement(cells []string) (map[string]string, string) {
	parts := make(map[string]string)
	var lines []string

	for _, cell := range cells[1:] {
		text := strings.TrimSpace(cell)
		if text == "" {
			continue
		}
		if m := partLabelRe.FindStringSubmatch(text); m != nil {
			letter := strings.ToLower(m[1])
			parts[letter] = strings.TrimSpace(partLabelRe.ReplaceAllString(text, ""))
		}
		lines = append(lines, text)
	}

	return parts, strings.Join(lines, "\n")
}
