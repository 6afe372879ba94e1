package ats

import (
	"strings"

	"github.com/jonathan/cv-studio/internal/types"
)

// CategoryResult holds the score and improvement suggestions for one rubric category.
type CategoryResult struct {
	Name        string   `json:"name"`
	MaxPoints   int      `json:"max_points"`
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
}

// Result is the full scoring output. Total always equals the sum of the
// category scores and lies in [0, 100].
type Result struct {
	Total      int              `json:"total"`
	Band       string           `json:"band"`
	Categories []CategoryResult `json:"categories"`
}

// Score computes the weighted completeness score for a document. It is a pure
// function: no I/O, deterministic for a given input, safe to call from any
// number of concurrent readers. It never fails; a maximally empty document
// scores 0 with every suggestion populated.
func Score(doc types.ResumeDocument, r Rubric) Result {
	categories := []CategoryResult{
		scoreContact(doc, r),
		scoreSummary(doc, r),
		scoreWork(doc, r),
		scoreEducation(doc),
		scoreSkills(doc, r),
	}

	total := 0
	for _, c := range categories {
		total += c.Score
	}

	return Result{
		Total:      total,
		Band:       Band(total),
		Categories: categories,
	}
}

func scoreContact(doc types.ResumeDocument, r Rubric) CategoryResult {
	c := CategoryResult{Name: "Contact Information", MaxPoints: maxContact, Suggestions: []string{}}

	if len(doc.Basics.Name) >= r.MinNameLen {
		c.Score += 5
	} else {
		c.Suggestions = append(c.Suggestions, "Add your full name")
	}
	if doc.Basics.Email != "" {
		c.Score += 5
	} else {
		c.Suggestions = append(c.Suggestions, "Add an email address")
	}
	if doc.Basics.Phone != "" {
		c.Score += 5
	} else {
		c.Suggestions = append(c.Suggestions, "Add a phone number")
	}
	if doc.Basics.Location.City != "" {
		c.Score += 3
	} else {
		c.Suggestions = append(c.Suggestions, "Add your city")
	}
	if hasLinkedInProfile(doc.Basics.Profiles) {
		c.Score += 2
	} else {
		c.Suggestions = append(c.Suggestions, "Add a LinkedIn profile")
	}

	return c
}

func hasLinkedInProfile(profiles []types.Profile) bool {
	for _, p := range profiles {
		if strings.Contains(strings.ToLower(p.Network), "linkedin") {
			return true
		}
	}
	return false
}

func scoreSummary(doc types.ResumeDocument, r Rubric) CategoryResult {
	c := CategoryResult{Name: "Professional Summary", MaxPoints: maxSummary, Suggestions: []string{}}

	length := len(doc.Basics.Summary)
	switch {
	case length >= r.SummaryFullLen:
		c.Score = maxSummary
	case length >= r.SummaryStrongLen:
		c.Score = 12
	case length >= r.SummaryBasicLen:
		c.Score = 8
	case length > 0:
		c.Score = 4
	}

	if length == 0 {
		c.Suggestions = append(c.Suggestions, "Add a professional summary")
	} else if length < r.SummaryStrongLen {
		c.Suggestions = append(c.Suggestions, "Expand your summary to at least 100 characters")
	}

	return c
}

func scoreWork(doc types.ResumeDocument, r Rubric) CategoryResult {
	c := CategoryResult{Name: "Work Experience", MaxPoints: maxWork, Suggestions: []string{}}

	// Count tier
	switch n := len(doc.Work); {
	case n >= r.WorkCountFull:
		c.Score += 10
	case n >= r.WorkCountStrong:
		c.Score += 8
	case n >= 1:
		c.Score += 5
	default:
		c.Suggestions = append(c.Suggestions, "Add your work experience")
	}

	// Achievement density tier
	dense := 0
	for _, w := range doc.Work {
		if countNonEmpty(w.Highlights) >= r.HighlightsPerEntry {
			dense++
		}
	}
	switch {
	case dense >= r.DenseEntriesForFull:
		c.Score += 15
	case dense >= 1:
		c.Score += 10
	default:
		c.Suggestions = append(c.Suggestions, "Add 2-3 achievements per work experience")
	}

	// Date completeness bonus, only evaluated when work entries exist
	if len(doc.Work) > 0 {
		complete := true
		for _, w := range doc.Work {
			if w.StartDate == "" {
				complete = false
				break
			}
		}
		if complete {
			c.Score += 5
		} else {
			c.Suggestions = append(c.Suggestions, "Add start dates to all work entries")
		}
	}

	return c
}

func scoreEducation(doc types.ResumeDocument) CategoryResult {
	c := CategoryResult{Name: "Education", MaxPoints: maxEducation, Suggestions: []string{}}

	if len(doc.Education) == 0 {
		c.Suggestions = append(c.Suggestions, "Add your education")
		return c
	}
	c.Score += 10

	for _, e := range doc.Education {
		if e.Institution != "" && e.StudyType != "" && e.Area != "" {
			c.Score += 5
			return c
		}
	}
	c.Suggestions = append(c.Suggestions, "Complete institution, degree and field of study for at least one entry")
	return c
}

func scoreSkills(doc types.ResumeDocument, r Rubric) CategoryResult {
	c := CategoryResult{Name: "Skills", MaxPoints: maxSkills, Suggestions: []string{}}

	switch n := len(doc.Skills); {
	case n >= r.SkillGroupsFull:
		c.Score += 10
	case n >= r.SkillGroupsStrong:
		c.Score += 7
	case n >= 1:
		c.Score += 4
	default:
		c.Suggestions = append(c.Suggestions, "Add skill groups with relevant keywords")
		return c
	}

	// Keyword density tier, only evaluated when skill groups exist
	dense := 0
	for _, g := range doc.Skills {
		if countNonEmpty(g.Keywords) >= r.KeywordsPerGroup {
			dense++
		}
	}
	switch {
	case dense >= r.DenseGroupsForFull:
		c.Score += 10
	case dense >= 1:
		c.Score += 5
	default:
		c.Suggestions = append(c.Suggestions, "List at least 3 keywords per skill group")
	}

	return c
}

func countNonEmpty(items []string) int {
	n := 0
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}
