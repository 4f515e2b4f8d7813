package resume

import (
	"regexp"
	"strings"

	"resume-ai/internal/domain/skills"
	"resume-ai/internal/pkg/textutil"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`\b(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)
	yearRe  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// Character budgets for the statistical model. Resumes front-load identity
// info, so the model never needs the full document.
const (
	nameScanLimit   = 5000
	entityScanLimit = 15000

	maxEducationLines  = 8
	maxExperienceLines = 10
	maxOrganizations   = 20
	maxDates           = 30
)

var metadataTokens = []string{"resume", "curriculum", "vitae", "email", "phone"}

// Parse builds a structured record from extracted resume text. All steps are
// best effort: the recognizer may be nil or fail, and every field falls back
// to a regex/heuristic path or stays empty.
func Parse(text string, vocab skills.Vocabulary, ner EntityRecognizer) Parsed {
	normalized := textutil.NormalizeWhitespace(text)
	lines := textutil.Lines(text)
	sections := SplitSections(lines)

	parsed := Empty()
	parsed.Name = extractName(lines, normalized, ner)
	parsed.Email = firstMatch(emailRe, text)
	parsed.Phone = firstMatch(phoneRe, text)
	parsed.Summary = extractSummary(sections[SectionSummary], lines)
	parsed.Education = parseEducation(sections[SectionEducation])
	parsed.Experience = parseExperience(sections[SectionExperience])
	parsed.Skills = vocab.Extract(normalized)
	parsed.Organizations, parsed.Dates = extractOrgsAndDates(text, ner)
	return parsed
}

func firstMatch(re *regexp.Regexp, text string) *string {
	m := re.FindString(text)
	if m == "" {
		return nil
	}
	return &m
}

// extractName prefers the first PERSON entity of at most four words; without
// a usable model it scans the first ten lines, skipping resume metadata, for
// a short line that looks like a name.
func extractName(lines []string, normalized string, ner EntityRecognizer) *string {
	if ner != nil {
		ents, err := ner.Entities(textutil.TruncateRunes(normalized, nameScanLimit))
		if err == nil {
			for _, ent := range ents {
				if ent.Label != "PERSON" {
					continue
				}
				candidate := strings.TrimSpace(ent.Text)
				if candidate != "" && len(strings.Fields(candidate)) <= 4 {
					return &candidate
				}
			}
		}
	}

	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}
		if containsAny(strings.ToLower(clean), metadataTokens) {
			continue
		}
		if len(strings.Fields(clean)) <= 4 && len([]rune(clean)) <= 40 {
			return &clean
		}
	}
	return nil
}

// extractSummary joins up to three lines of the summary bucket; when the
// bucket is empty it falls back to the first line mentioning a summary
// keyword that is long enough to be prose rather than a header.
func extractSummary(summaryLines, allLines []string) *string {
	if len(summaryLines) > 0 {
		take := summaryLines
		if len(take) > 3 {
			take = take[:3]
		}
		joined := strings.TrimSpace(strings.Join(take, " "))
		if joined != "" {
			return &joined
		}
	}

	for _, line := range allLines {
		if containsAny(strings.ToLower(line), summaryKeywords) && len(line) > 20 {
			l := line
			return &l
		}
	}
	return nil
}

func parseEducation(lines []string) []Education {
	if len(lines) > maxEducationLines {
		lines = lines[:maxEducationLines]
	}

	entries := make([]Education, 0, len(lines))
	for _, line := range lines {
		year := yearRe.FindString(line)
		cleaned := line
		if year != "" {
			cleaned = strings.Trim(strings.ReplaceAll(line, year, ""), " ,-")
		} else {
			cleaned = strings.TrimSpace(line)
		}
		if cleaned == "" {
			continue
		}
		entries = append(entries, Education{Institution: cleaned, Year: year})
	}
	return entries
}

func parseExperience(lines []string) []Experience {
	if len(lines) > maxExperienceLines {
		lines = lines[:maxExperienceLines]
	}

	entries := make([]Experience, 0, len(lines))
	for _, line := range lines {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}

		years := yearRe.FindAllString(line, -1)
		duration := ""
		switch {
		case len(years) >= 2:
			duration = years[0] + " - " + years[len(years)-1]
		case len(years) == 1:
			duration = years[0]
		}

		entries = append(entries, Experience{
			Company:     clean,
			Duration:    duration,
			Description: clean,
		})
	}
	return entries
}

// extractOrgsAndDates collects ORG and DATE/TIME entities from the model when
// one is available. When the model yields no dates, every distinct 4-digit
// year in the full text stands in for them.
func extractOrgsAndDates(text string, ner EntityRecognizer) ([]string, []string) {
	organizations := make([]string, 0)
	dates := make([]string, 0)

	if ner != nil {
		ents, err := ner.Entities(textutil.TruncateRunes(text, entityScanLimit))
		if err == nil {
			seenOrg := make(map[string]struct{})
			seenDate := make(map[string]struct{})
			for _, ent := range ents {
				t := strings.TrimSpace(ent.Text)
				if t == "" {
					continue
				}
				switch ent.Label {
				case "ORG":
					if _, ok := seenOrg[t]; !ok {
						seenOrg[t] = struct{}{}
						organizations = append(organizations, t)
					}
				case "DATE", "TIME":
					if _, ok := seenDate[t]; !ok {
						seenDate[t] = struct{}{}
						dates = append(dates, t)
					}
				}
			}
		}
	}

	if len(dates) == 0 {
		seen := make(map[string]struct{})
		for _, year := range yearRe.FindAllString(text, -1) {
			if _, ok := seen[year]; ok {
				continue
			}
			seen[year] = struct{}{}
			dates = append(dates, year)
		}
	}

	if len(organizations) > maxOrganizations {
		organizations = organizations[:maxOrganizations]
	}
	if len(dates) > maxDates {
		dates = dates[:maxDates]
	}
	return organizations, dates
}
