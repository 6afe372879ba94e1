// Package ats provides a deterministic resume completeness scorer modeled on
// applicant-tracking-system parsing heuristics.
package ats

// Category max points. The weights sum to 100 so the total is always 0-100.
const (
	maxContact   = 20
	maxSummary   = 15
	maxWork      = 30
	maxEducation = 15
	maxSkills    = 20
)

// Rubric holds the tunable thresholds of the scoring heuristics. The defaults
// are load-bearing for score comparability; change them only deliberately.
type Rubric struct {
	// Contact Information
	MinNameLen int // name counts only at this length or longer

	// Professional Summary length tiers (characters)
	SummaryFullLen   int // full points at this length
	SummaryStrongLen int
	SummaryBasicLen  int

	// Work Experience
	HighlightsPerEntry    int // non-empty highlights for an entry to count as achievement-dense
	DenseEntriesForFull   int // achievement-dense entries needed for full density points
	WorkCountFull         int // entries needed for the top count tier
	WorkCountStrong       int

	// Education: no thresholds beyond presence and field completeness.

	// Skills
	SkillGroupsFull       int // groups needed for the top count tier
	SkillGroupsStrong     int
	KeywordsPerGroup      int // keywords for a group to count as keyword-dense
	DenseGroupsForFull    int // keyword-dense groups needed for full density points
}

// DefaultRubric returns the rubric with the standard thresholds.
func DefaultRubric() Rubric {
	return Rubric{
		MinNameLen:          2,
		SummaryFullLen:      150,
		SummaryStrongLen:    100,
		SummaryBasicLen:     50,
		HighlightsPerEntry:  2,
		DenseEntriesForFull: 2,
		WorkCountFull:       3,
		WorkCountStrong:     2,
		SkillGroupsFull:     4,
		SkillGroupsStrong:   2,
		KeywordsPerGroup:    3,
		DenseGroupsForFull:  3,
	}
}

// Band returns the presentation label for a total score.
func Band(total int) string {
	switch {
	case total >= 80:
		return "Excellent"
	case total >= 60:
		return "Good"
	case total >= 40:
		return "Fair"
	default:
		return "Needs Work"
	}
}
