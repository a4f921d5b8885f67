// Package assessment turns an extracted policy document into a compliance
// report: it renders judge prompts per sub-requirement, normalizes the
// judge's free-form completions into typed verdicts, and rolls verdicts up
// into per-control results under deterministic threshold rules.
package assessment

import "strings"

// Status is a compliance verdict. The wire values match the literals the
// judge is instructed to emit.
type Status string

const (
	StatusFullyMeets     Status = "Fully Meets"
	StatusPartiallyMeets Status = "Partially Meets"
	StatusDoesNotMeet    Status = "Does Not Meet"

	// StatusError marks a sub-requirement whose judgment failed (transport or
	// parse). Error verdicts are excluded from aggregation, never propagated.
	StatusError Status = "Error"
)

// NoEvidence is the placeholder the judge uses when the document contains
// nothing relevant. Aggregation skips it when concatenating evidence.
const NoEvidence = "No evidence found"

// ParseStatus matches a raw status string against the valid verdict
// literals, tolerating case and underscore/space noise. Error is not a valid
// judge-emitted status.
func ParseStatus(raw string) (Status, bool) {
	normalized := strings.Join(strings.Fields(strings.ReplaceAll(strings.ToLower(raw), "_", " ")), " ")
	switch normalized {
	case "fully meets":
		return StatusFullyMeets, true
	case "partially meets":
		return StatusPartiallyMeets, true
	case "does not meet":
		return StatusDoesNotMeet, true
	}
	return "", false
}

// EvidenceVerdict is the judged outcome of one sub-requirement against one
// document. Created once per sub-requirement per request, never mutated.
type EvidenceVerdict struct {
	SubRequirementID string  `json:"sub_requirement_id"`
	Evidence         string  `json:"evidence"`
	Status           Status  `json:"status"`
	Confidence       float64 `json:"confidence"`
}

// ControlResult is the deterministic rollup of a control's sub-requirement
// verdicts.
type ControlResult struct {
	ControlID         string            `json:"control_id"`
	ControlTitle      string            `json:"control_title"`
	OverallStatus     Status            `json:"overall_status"`
	OverallConfidence float64           `json:"overall_confidence"`
	OverallEvidence   string            `json:"overall_evidence"`
	SubResults        []EvidenceVerdict `json:"sub_results"`
}

// Report is the full response for one uploaded document. Request-scoped,
// never persisted.
type Report struct {
	Results []ControlResult `json:"results"`
}
