package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"resume-ai/internal/domain/skills"
)

// Weights of the blended score: skill overlap dominates, textual similarity
// refines.
const (
	overlapWeight    = 0.6
	similarityWeight = 0.4
)

// TextSimilarity scores how close two free-text documents are, in [0,1].
// Implementations may fail (degenerate corpus, missing library); the engine
// then falls back to plain skill-set overlap.
type TextSimilarity interface {
	Similarity(resumeText, jobText string) (float64, error)
}

type Result struct {
	MatchScore    float64
	MatchedSkills []string
	MissingSkills []string
	Explanation   *string
}

type Engine struct {
	vocab skills.Vocabulary
	sim   TextSimilarity
}

func NewEngine(vocab skills.Vocabulary, sim TextSimilarity) *Engine {
	return &Engine{vocab: vocab, sim: sim}
}

// Calculate compares a candidate's skill list against free-text job
// requirements. Matched and missing sets carry canonical skill formatting
// ("aws" renders as "AWS" in both), sorted and deduplicated.
func (e *Engine) Calculate(resumeSkills []string, jobRequirements string, includeExplanation bool) Result {
	cleaned := make([]string, 0, len(resumeSkills))
	for _, s := range resumeSkills {
		if t := strings.TrimSpace(s); t != "" {
			cleaned = append(cleaned, t)
		}
	}

	jobSkills := e.vocab.Extract(jobRequirements)

	resumeSet := lowerSet(cleaned)
	jobSet := lowerSet(jobSkills)

	matched := make([]string, 0, len(jobSet))
	missing := make([]string, 0, len(jobSet))
	for s := range jobSet {
		if _, ok := resumeSet[s]; ok {
			matched = append(matched, skills.Format(s))
		} else {
			missing = append(missing, skills.Format(s))
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	overlap := 0.0
	if len(jobSet) > 0 {
		overlap = float64(len(matched)) / float64(len(jobSet))
	}

	similarity := e.textualSimilarity(cleaned, jobRequirements, resumeSet, jobSet)

	score := math.Round((overlap*overlapWeight+similarity*similarityWeight)*100) / 100
	score = clamp01(score)

	res := Result{
		MatchScore:    score,
		MatchedSkills: matched,
		MissingSkills: missing,
	}
	if includeExplanation {
		expl := explain(score, matched, missing)
		res.Explanation = &expl
	}
	return res
}

// textualSimilarity runs the vectorized similarity over the joined candidate
// skills and the raw job text, clamped to [0,1]. When the candidate has no
// skills or the job text is blank the score is 0; when the vectorizer is
// absent or errors, a Jaccard-style overlap of the two skill sets stands in.
func (e *Engine) textualSimilarity(resumeSkills []string, jobText string, resumeSet, jobSet map[string]struct{}) float64 {
	if len(resumeSkills) == 0 || strings.TrimSpace(jobText) == "" {
		return 0
	}

	if e.sim != nil {
		score, err := e.sim.Similarity(strings.Join(resumeSkills, " "), jobText)
		if err == nil {
			return clamp01(score)
		}
	}

	if len(jobSet) == 0 {
		return 0
	}
	inter := 0
	for s := range resumeSet {
		if _, ok := jobSet[s]; ok {
			inter++
		}
	}
	return float64(inter) / float64(len(jobSet))
}

func explain(score float64, matched, missing []string) string {
	verdict := "low match"
	switch {
	case score >= 0.75:
		verdict = "strong match"
	case score >= 0.5:
		verdict = "moderate match"
	}

	matchedHint := strings.Join(capList(matched, 6), ", ")
	if matchedHint == "" {
		matchedHint = "none"
	}
	missingHint := strings.Join(capList(missing, 5), ", ")
	if missingHint == "" {
		missingHint = "no major gaps"
	}

	return fmt.Sprintf("Candidate is a %s. Matched skills: %s. Missing focus areas: %s.", verdict, matchedHint, missingHint)
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[strings.ToLower(it)] = struct{}{}
	}
	return set
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
