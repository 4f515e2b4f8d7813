package resume

import "strings"

const (
	SectionEducation  = "education"
	SectionExperience = "experience"
	SectionSummary    = "summary"
)

var (
	educationKeywords  = []string{"education", "academic", "qualification"}
	experienceKeywords = []string{"experience", "work history", "employment", "internship"}
	summaryKeywords    = []string{"summary", "objective", "profile"}
)

// SplitSections buckets resume lines under the section header most recently
// seen. Header lines themselves are discarded, and lines before the first
// recognized header are dropped. Header detection is case-insensitive
// substring containment, tested in fixed priority order: education, then
// experience, then summary.
func SplitSections(lines []string) map[string][]string {
	sections := map[string][]string{
		SectionEducation:  {},
		SectionExperience: {},
		SectionSummary:    {},
	}

	current := ""
	for _, line := range lines {
		lower := strings.ToLower(line)
		if containsAny(lower, educationKeywords) {
			current = SectionEducation
			continue
		}
		if containsAny(lower, experienceKeywords) {
			current = SectionExperience
			continue
		}
		if containsAny(lower, summaryKeywords) {
			current = SectionSummary
			continue
		}

		if current == "" {
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			sections[current] = append(sections[current], trimmed)
		}
	}

	return sections
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
