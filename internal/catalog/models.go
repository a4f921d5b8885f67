// Package catalog holds the static NIST access-control requirement catalog:
// the controls, their decomposition into atomic sub-requirements, and the
// evidence classification that tells the judge how far policy text alone can
// carry a score. The catalog is immutable and loaded once at process start.
package catalog

// EvidenceClass states whether a requirement's grammatical subject is the
// organization (policy text can fully satisfy it) or the information system
// (policy text alone cannot prove implementation).
type EvidenceClass string

const (
	EvidenceOrganizational EvidenceClass = "organizational"
	EvidenceTechnical      EvidenceClass = "technical_implementation"
	EvidenceUnclear        EvidenceClass = "unclear"
)

// Control is one named NIST access-control requirement. SubRequirements is
// populated by Load from the definition's outline markers and cached for the
// process lifetime.
type Control struct {
	ID         string
	Title      string
	Definition string

	// AssessmentCriteria maps criterion name to the guidance text the judge
	// scores against. Shared by every sub-requirement of the control.
	AssessmentCriteria map[string]string

	SubRequirements []SubRequirement
}

// SubRequirement is an atomic, independently assessable clause. Its ID is
// always prefixed by the owning control's ID, e.g. AC-1(A)(a).
type SubRequirement struct {
	ID                 string
	Title              string
	Definition         string
	AssessmentCriteria map[string]string
	EvidenceClass      EvidenceClass
}
