package skills

import (
	"strings"
	"unicode"
)

// Vocabulary is the fixed list of canonical skill terms used for keyword
// spotting. Terms are lowercase phrases; matching is substring containment,
// so order decides the order of extracted labels.
type Vocabulary []string

func Default() Vocabulary {
	return Vocabulary{
		"python", "javascript", "typescript", "java", "c++", "c#", "ruby", "go", "rust", "php",
		"react", "angular", "vue", "node.js", "express", "django", "flask", "spring", "rails",
		"html", "css", "sass", "tailwind", "bootstrap",
		"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins", "git",
		"machine learning", "deep learning", "tensorflow", "pytorch", "keras", "scikit-learn",
		"data analysis", "data science", "data engineering", "etl", "pandas", "numpy",
		"nlp", "natural language processing", "computer vision", "opencv",
		"agile", "scrum", "jira", "confluence",
		"rest api", "graphql", "microservices",
		"linux", "unix", "bash", "shell scripting",
		"testing", "unit testing", "integration testing", "selenium", "jest",
		"ci/cd", "devops", "firebase", "figma",
	}
}

// Extract scans text for vocabulary terms and returns their formatted labels
// in vocabulary order, deduplicated by label. Matching is plain substring
// containment on the lowercased text, with no word-boundary enforcement:
// short terms can match inside larger words, which is accepted behavior.
func (v Vocabulary) Extract(text string) []string {
	lower := strings.ToLower(text)

	found := make([]string, 0)
	seen := make(map[string]struct{})
	for _, term := range v {
		if !strings.Contains(lower, term) {
			continue
		}
		label := Format(term)
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		found = append(found, label)
	}
	return found
}

// Format renders a vocabulary term as its canonical label: terms longer than
// 3 characters are title-cased, shorter terms are upper-cased so acronyms
// like "sql" and "aws" come out as "SQL" and "AWS".
func Format(term string) string {
	if len(term) <= 3 {
		return strings.ToUpper(term)
	}
	return titleCase(term)
}

// titleCase upper-cases every letter that follows a non-letter, so
// "machine learning" becomes "Machine Learning" and "node.js" "Node.Js".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
