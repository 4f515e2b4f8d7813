package similarity

import (
	"errors"
	"math"
	"strings"

	"github.com/james-bowman/nlp"
	"github.com/james-bowman/nlp/measures/pairwise"
	"gonum.org/v1/gonum/mat"
)

var errNoColumnView = errors.New("tfidf matrix does not support column views")

// TFIDF scores two documents by cosine similarity over a term-frequency
// vectorisation. Documents are augmented with joined bigram tokens before
// vectorising, so adjacent-word phrases contribute alongside single terms.
type TFIDF struct{}

func NewTFIDF() *TFIDF {
	return &TFIDF{}
}

func (s *TFIDF) Similarity(resumeText, jobText string) (float64, error) {
	pipeline := nlp.NewPipeline(nlp.NewCountVectoriser(), nlp.NewTfidfTransformer())

	m, err := pipeline.FitTransform(withBigrams(resumeText), withBigrams(jobText))
	if err != nil {
		return 0, err
	}

	cv, ok := m.(mat.ColViewer)
	if !ok {
		return 0, errNoColumnView
	}

	score := pairwise.CosineSimilarity(cv.ColView(0), cv.ColView(1))
	if math.IsNaN(score) {
		return 0, nil
	}
	if score < 0 {
		return 0, nil
	}
	if score > 1 {
		return 1, nil
	}
	return score, nil
}

// withBigrams appends underscore-joined word pairs to the document so the
// unigram vectoriser also sees two-word phrases as terms.
func withBigrams(text string) string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) < 2 {
		return strings.ToLower(text)
	}

	var b strings.Builder
	b.WriteString(strings.Join(words, " "))
	for i := 0; i+1 < len(words); i++ {
		b.WriteByte(' ')
		b.WriteString(words[i])
		b.WriteByte('_')
		b.WriteString(words[i+1])
	}
	return b.String()
}
