package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"resume-ai/internal/domain/resume"
	"resume-ai/internal/domain/skills"
	"resume-ai/internal/infrastructure/pdftext"
)

type ParseUsecase interface {
	ParseResume(ctx context.Context, content []byte) (resume.Parsed, error)
}

type Parse struct {
	extractor pdftext.Extractor
	ner       resume.EntityRecognizer
	vocab     skills.Vocabulary
	log       *log.Logger
}

func NewParseUsecase(extractor pdftext.Extractor, ner resume.EntityRecognizer, vocab skills.Vocabulary, logger *log.Logger) *Parse {
	if logger == nil {
		logger = log.Default()
	}
	return &Parse{extractor: extractor, ner: ner, vocab: vocab, log: logger}
}

// ParseResume turns uploaded PDF bytes into a structured record. Extraction
// failures (malformed or image-only PDFs) degrade to a fully-empty record
// rather than an error; only context cancellation surfaces to the caller.
func (u *Parse) ParseResume(ctx context.Context, content []byte) (resume.Parsed, error) {
	text, err := u.extractor.ExtractText(ctx, content)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return resume.Empty(), err
		}
		u.log.Printf("op=parse_resume status=degraded bytes=%d err=%v", len(content), err)
		return resume.Empty(), nil
	}
	if strings.TrimSpace(text) == "" {
		return resume.Empty(), nil
	}

	return resume.Parse(text, u.vocab, u.ner), nil
}
