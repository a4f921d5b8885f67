package assessment

import "strings"

// Confidence weights by verdict status. Confident full-compliance evidence
// counts for more in the aggregate than confident non-compliance evidence; a
// deliberate asymmetry favoring detected compliance signals.
const (
	weightFullyMeets     = 1.2
	weightPartiallyMeets = 1.0
	weightDoesNotMeet    = 0.8
)

// Thresholds for the status rollup. fullyMeetsFraction is inclusive (>=),
// doesNotMeetFraction is strict (>); both boundaries are pinned by tests.
const (
	fullyMeetsFraction  = 0.8
	doesNotMeetFraction = 0.5
)

// maxEvidenceExcerpts bounds how many sub-requirement evidence texts the
// overall evidence concatenates.
const maxEvidenceExcerpts = 2

// Aggregate rolls a control's sub-requirement verdicts into one overall
// status, confidence, and evidence string. Deterministic for a fixed input
// order.
//
// Error verdicts are excluded first; an empty remainder yields
// (Does Not Meet, 0, no-evidence). The status rule is asymmetric: one
// failing sub-requirement blocks Fully Meets even with otherwise-perfect
// evidence, but a minority of failures does not force Does Not Meet.
func Aggregate(subResults []EvidenceVerdict) (Status, float64, string) {
	filtered := make([]EvidenceVerdict, 0, len(subResults))
	for _, v := range subResults {
		if v.Status != StatusError {
			filtered = append(filtered, v)
		}
	}
	if len(filtered) == 0 {
		return StatusDoesNotMeet, 0, NoEvidence
	}

	var fully, none int
	for _, v := range filtered {
		switch v.Status {
		case StatusFullyMeets:
			fully++
		case StatusDoesNotMeet:
			none++
		}
	}

	n := float64(len(filtered))
	status := StatusPartiallyMeets
	switch {
	case none == 0 && float64(fully) >= fullyMeetsFraction*n:
		status = StatusFullyMeets
	case float64(none) > doesNotMeetFraction*n:
		status = StatusDoesNotMeet
	}

	return status, weightedConfidence(filtered), combinedEvidence(filtered)
}

func weightedConfidence(verdicts []EvidenceVerdict) float64 {
	var sum, weights float64
	for _, v := range verdicts {
		w := weightPartiallyMeets
		switch v.Status {
		case StatusFullyMeets:
			w = weightFullyMeets
		case StatusDoesNotMeet:
			w = weightDoesNotMeet
		}
		sum += v.Confidence * w
		weights += w
	}
	return sum / weights
}

// combinedEvidence joins the first excerpts (in original sub-requirement
// order) whose evidence is not the placeholder.
func combinedEvidence(verdicts []EvidenceVerdict) string {
	excerpts := make([]string, 0, maxEvidenceExcerpts)
	for _, v := range verdicts {
		if v.Evidence == NoEvidence || v.Evidence == "" {
			continue
		}
		excerpts = append(excerpts, v.Evidence)
		if len(excerpts) == maxEvidenceExcerpts {
			break
		}
	}
	if len(excerpts) == 0 {
		return NoEvidence
	}
	return strings.Join(excerpts, " | ")
}
