package ner

import (
	"github.com/jdkato/prose/v2"

	"resume-ai/internal/domain/resume"
)

// ProseRecognizer backs the optional NER capability with the prose
// statistical model. The model ships with the library, so construction never
// fails; per-document errors are reported to the caller, which falls back to
// its heuristics. The bundled model labels only PERSON and GPE, so ORG and
// DATE entities come from other recognizers or the caller's regex fallback.
type ProseRecognizer struct{}

func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

func (r *ProseRecognizer) Entities(text string) ([]resume.Entity, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}

	ents := doc.Entities()
	out := make([]resume.Entity, 0, len(ents))
	for _, ent := range ents {
		out = append(out, resume.Entity{Text: ent.Text, Label: ent.Label})
	}
	return out, nil
}
