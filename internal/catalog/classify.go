package catalog

import "strings"

// Subject phrases NIST 800-53 control text opens with. The comparison is
// case-insensitive because decomposed clauses inherit the preamble verbatim.
const (
	subjectOrganization = "the organization"
	subjectSystem       = "the information system"
)

// Classify inspects a definition's leading clause to decide the maximum
// status policy-only evidence can attain. System-subject requirements demand
// implementation proof, so policy text caps at PartiallyMeets; organization-
// subject requirements are policy-satisfiable. Anything else is Unclear and
// capped at PartiallyMeets pending manual review.
//
// The result is advisory rubric text embedded in the judge prompt, never a
// post-hoc filter on the returned status.
func Classify(definition string) EvidenceClass {
	lead := strings.ToLower(strings.TrimSpace(definition))
	switch {
	case strings.HasPrefix(lead, subjectSystem):
		return EvidenceTechnical
	case strings.HasPrefix(lead, subjectOrganization):
		return EvidenceOrganizational
	default:
		return EvidenceUnclear
	}
}
