package assessment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"attest/internal/catalog"
)

var promptClock = time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

func promptFixtures() (catalog.SubRequirement, catalog.Control) {
	ctrl := catalog.Control{
		ID:    "AC-1",
		Title: "Access Control Policy and Procedures",
		AssessmentCriteria: map[string]string{
			"policy_exists": "A written access control policy is present",
			"dissemination": "The policy is disseminated to personnel",
		},
	}
	sub := catalog.SubRequirement{
		ID:                 "AC-1(A)(a)",
		Title:              "Access Control Policy and Procedures (A)(a)",
		Definition:         "The organization: Develops and disseminates: An access control policy.",
		AssessmentCriteria: ctrl.AssessmentCriteria,
		EvidenceClass:      catalog.EvidenceOrganizational,
	}
	return sub, ctrl
}

func TestBuildPrompt(t *testing.T) {
	sub, ctrl := promptFixtures()

	t.Run("contains identifiers, definition, criteria, rubric, and date", func(t *testing.T) {
		prompt := BuildPrompt(sub, ctrl, "Policy text here.", promptClock)

		assert.Contains(t, prompt, "AC-1(A)(a)")
		assert.Contains(t, prompt, ctrl.Title)
		assert.Contains(t, prompt, sub.Definition)
		assert.Contains(t, prompt, "2026-08-24")
		assert.Contains(t, prompt, "policy_exists: A written access control policy is present")
		assert.Contains(t, prompt, "dissemination: The policy is disseminated to personnel")
		assert.Contains(t, prompt, "80% or more")
		assert.Contains(t, prompt, "Policy text here.")
		assert.Contains(t, prompt, `"status"`)
	})

	t.Run("organizational class says fully meets is attainable", func(t *testing.T) {
		prompt := BuildPrompt(sub, ctrl, "doc", promptClock)
		assert.Contains(t, prompt, "levied on the organization")
	})

	t.Run("technical class caps the score guidance", func(t *testing.T) {
		sub.EvidenceClass = catalog.EvidenceTechnical
		prompt := BuildPrompt(sub, ctrl, "doc", promptClock)
		assert.Contains(t, prompt, "levied on the information system")
		assert.Contains(t, prompt, `maximum attainable status from this document is "Partially Meets"`)
	})

	t.Run("unclear class flags manual review", func(t *testing.T) {
		sub.EvidenceClass = catalog.EvidenceUnclear
		prompt := BuildPrompt(sub, ctrl, "doc", promptClock)
		assert.Contains(t, prompt, "manual review")
	})

	t.Run("document text is truncated to the budget keeping the prefix", func(t *testing.T) {
		long := strings.Repeat("a", maxDocumentChars) + "TAIL"
		prompt := BuildPrompt(sub, ctrl, long, promptClock)
		assert.NotContains(t, prompt, "TAIL")
		assert.Contains(t, prompt, strings.Repeat("a", maxDocumentChars))
	})

	t.Run("criteria render in stable order", func(t *testing.T) {
		first := BuildPrompt(sub, ctrl, "doc", promptClock)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, BuildPrompt(sub, ctrl, "doc", promptClock))
		}
	})
}
