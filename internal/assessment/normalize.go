package assessment

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Judges wrap their JSON in markdown fences often enough that stripping the
// delimiters (never the content) is the first recovery step.
var (
	fenceOpen  = regexp.MustCompile("^```[a-zA-Z]*[ \t]*\r?\n?")
	fenceClose = regexp.MustCompile("\r?\n?[ \t]*```$")
)

// Normalize parses a raw judge completion into a verdict. Total: every
// input, however malformed, yields a well-formed verdict — parse failures
// become Error-status verdicts, never panics or returned errors. The caller
// fills SubRequirementID.
//
// Recovery order: trim whitespace, strip one pair of enclosing quotes,
// strip code-fence delimiters, then parse a single JSON object. Field
// fallbacks: invalid status → Does Not Meet, non-numeric confidence → 0,
// absent evidence → the no-evidence placeholder.
func Normalize(raw string) EvidenceVerdict {
	text := strings.TrimSpace(raw)
	text = stripEnclosingQuotes(text)
	text = strings.TrimSpace(fenceClose.ReplaceAllString(fenceOpen.ReplaceAllString(text, ""), ""))

	var fields map[string]any
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return EvidenceVerdict{
			Status:     StatusError,
			Confidence: 0,
			Evidence:   fmt.Sprintf("failed to parse judge response: %v", err),
		}
	}

	verdict := EvidenceVerdict{
		Status:   StatusDoesNotMeet,
		Evidence: NoEvidence,
	}

	if rawStatus, ok := fields["status"].(string); ok {
		if status, valid := ParseStatus(rawStatus); valid {
			verdict.Status = status
		}
	}

	// Confidence values are trusted to already sit in [0,1]; they are not
	// re-derived or clamped here.
	verdict.Confidence = toFloat(fields["confidence"])

	if evidence := toEvidence(fields["evidence"]); evidence != "" {
		verdict.Evidence = evidence
	}

	return verdict
}

// stripEnclosingQuotes removes a single pair of matching quote characters
// when the text both starts and ends with one.
func stripEnclosingQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return 0
}

func toEvidence(v any) string {
	switch e := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(e)
	default:
		return strings.TrimSpace(fmt.Sprint(e))
	}
}
