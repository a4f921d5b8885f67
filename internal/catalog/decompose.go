package catalog

import (
	"regexp"
	"strings"
)

// markerPattern matches the outline markers NIST control text uses:
// uppercase (A)..(Z) for top-level clauses, lowercase (a)..(z) for nested
// clauses under a stem.
var markerPattern = regexp.MustCompile(`\(([A-Za-z])\)`)

type clause struct {
	marker string // including parentheses, e.g. "(A)"
	upper  bool
	text   string
}

// Decompose splits a control definition's outline into atomic
// sub-requirements.
//
// An uppercase marker whose following text is itself followed by lowercase
// markers (before the next uppercase marker) is a stem: its text is not
// independently assessable, so each lowercase clause joins the stem text to
// form one sub-requirement with ID {control}{stem}{lower}. An uppercase
// marker with no lowercase children stands alone as {control}{marker} — this
// includes stems that introduce an enumeration but have no children, which
// are emitted rather than dropped so no requirement silently escapes
// assessment. A definition without markers becomes a single sub-requirement
// carrying the control's own ID.
//
// Text before the first marker (typically "The organization:" or "The
// information system:") is the grammatical subject; it is prepended to every
// sub-requirement definition so classification still sees it. Lowercase
// markers appearing before any uppercase marker are malformed and skipped.
func Decompose(c Control) []SubRequirement {
	locs := markerPattern.FindAllStringIndex(c.Definition, -1)
	if len(locs) == 0 {
		return []SubRequirement{{
			ID:                 c.ID,
			Title:              c.Title,
			Definition:         strings.TrimSpace(c.Definition),
			AssessmentCriteria: c.AssessmentCriteria,
			EvidenceClass:      Classify(c.Definition),
		}}
	}

	preamble := strings.TrimSpace(c.Definition[:locs[0][0]])

	clauses := make([]clause, 0, len(locs))
	for i, loc := range locs {
		end := len(c.Definition)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		marker := c.Definition[loc[0]:loc[1]]
		letter := marker[1]
		clauses = append(clauses, clause{
			marker: marker,
			upper:  letter >= 'A' && letter <= 'Z',
			text:   strings.TrimSpace(c.Definition[loc[1]:end]),
		})
	}

	var subs []SubRequirement
	for i := 0; i < len(clauses); {
		if !clauses[i].upper {
			// Lowercase clause with no owning stem; skip as malformed.
			i++
			continue
		}
		stem := clauses[i]
		i++

		children := make([]clause, 0, 4)
		for i < len(clauses) && !clauses[i].upper {
			children = append(children, clauses[i])
			i++
		}

		if len(children) == 0 {
			subs = append(subs, c.newSub(stem.marker, preamble, stem.text))
			continue
		}
		for _, child := range children {
			subs = append(subs, c.newSub(stem.marker+child.marker, preamble, stem.text, child.text))
		}
	}
	return subs
}

func (c Control) newSub(markerPath string, parts ...string) SubRequirement {
	definition := joinClauses(parts)
	return SubRequirement{
		ID:                 c.ID + markerPath,
		Title:              c.Title + " " + markerPath,
		Definition:         definition,
		AssessmentCriteria: c.AssessmentCriteria,
		EvidenceClass:      Classify(definition),
	}
}

func joinClauses(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
