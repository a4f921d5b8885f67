package assessment

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"attest/internal/catalog"
)

// maxDocumentChars bounds the document text embedded in a prompt. Longer
// documents are truncated from the end (the prefix is kept), so evidence past
// the cutoff is lost. Known precision/recall tradeoff; chunked multi-pass
// judging would remove it without changing the aggregation contract.
const maxDocumentChars = 8000

// BuildPrompt renders one sub-requirement plus the document text into a
// judge-ready instruction. Pure function of its inputs and the supplied
// clock; the date matters because some requirements are time-relative
// ("reviewed within three years").
func BuildPrompt(sub catalog.SubRequirement, ctrl catalog.Control, documentText string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a NIST 800-53 compliance assessor. Today's date is %s.\n\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "Assess whether the policy document below provides evidence of compliance with this requirement.\n\n")
	fmt.Fprintf(&b, "Control: %s (%s)\n", ctrl.Title, ctrl.ID)
	fmt.Fprintf(&b, "Requirement %s: %s\n", sub.ID, sub.Title)
	fmt.Fprintf(&b, "Requirement text: %s\n\n", sub.Definition)

	b.WriteString(evidenceClassGuidance(sub.EvidenceClass))
	b.WriteString("\n\nAssessment criteria:\n")
	for _, name := range sortedCriteria(sub.AssessmentCriteria) {
		fmt.Fprintf(&b, "- %s: %s\n", name, sub.AssessmentCriteria[name])
	}

	b.WriteString("\nScoring rubric, based on the fraction of criteria with evidence found in the document:\n")
	b.WriteString("- 80% or more: \"Fully Meets\"\n")
	b.WriteString("- 50% to 79%: \"Partially Meets\"\n")
	b.WriteString("- below 50%: \"Does Not Meet\"\n")

	b.WriteString("\nPolicy document text:\n---\n")
	b.WriteString(truncate(documentText, maxDocumentChars))
	b.WriteString("\n---\n")

	b.WriteString("\nRespond with a single JSON object and nothing else:\n")
	b.WriteString(`{"evidence": "<quoted or paraphrased evidence, or 'No evidence found'>", `)
	b.WriteString(`"status": "<Fully Meets|Partially Meets|Does Not Meet>", `)
	b.WriteString(`"confidence": <0.0-1.0>, "reasoning": "<optional>"}`)

	return b.String()
}

func evidenceClassGuidance(class catalog.EvidenceClass) string {
	switch class {
	case catalog.EvidenceTechnical:
		return "This requirement is levied on the information system itself. Policy or procedure " +
			"text alone cannot prove a technical mechanism is implemented, so the maximum " +
			"attainable status from this document is \"Partially Meets\"."
	case catalog.EvidenceOrganizational:
		return "This requirement is levied on the organization. Documented policy and procedure " +
			"text is itself the required evidence, so \"Fully Meets\" is attainable from this document."
	default:
		return "The responsible party for this requirement is unclear; treat the maximum attainable " +
			"status as \"Partially Meets\" and flag the requirement for manual review."
	}
}

// sortedCriteria gives a stable rendering order; map iteration would make
// prompts non-reproducible.
func sortedCriteria(criteria map[string]string) []string {
	names := make([]string, 0, len(criteria))
	for name := range criteria {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
