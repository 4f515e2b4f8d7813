package app

import (
	"log"

	"resume-ai/internal/config"
	"resume-ai/internal/delivery/http/handler"
	"resume-ai/internal/domain/matching"
	"resume-ai/internal/domain/resume"
	"resume-ai/internal/domain/skills"
	"resume-ai/internal/infrastructure/ner"
	"resume-ai/internal/infrastructure/pdftext"
	"resume-ai/internal/infrastructure/similarity"
	"resume-ai/internal/usecase"
)

// Container wires every component once at startup. The vocabulary and the
// recognizer are the only process-wide state and are never mutated after
// construction.
type Container struct {
	Config     config.Config
	Log        *log.Logger
	Vocabulary skills.Vocabulary
	Extractor  pdftext.Extractor
	Recognizer resume.EntityRecognizer

	HealthHandler *handler.HealthHandler
	ResumeHandler *handler.ResumeHandler
	MatchHandler  *handler.MatchHandler
	SkillHandler  *handler.SkillHandler
}

func NewContainer(cfg config.Config, logger *log.Logger) *Container {
	if logger == nil {
		logger = log.Default()
	}

	vocab := skills.Default()
	extractor := buildExtractor(cfg.AI, logger)

	var recognizer resume.EntityRecognizer
	if cfg.AI.NEREnabled {
		recognizer = ner.NewProseRecognizer()
	}

	engine := matching.NewEngine(vocab, similarity.NewTFIDF())

	parseUC := usecase.NewParseUsecase(extractor, recognizer, vocab, logger)
	matchUC := usecase.NewMatchingUsecase(engine)
	skillUC := usecase.NewSkillUsecase(vocab)

	return &Container{
		Config:     cfg,
		Log:        logger,
		Vocabulary: vocab,
		Extractor:  extractor,
		Recognizer: recognizer,

		HealthHandler: handler.NewHealthHandler(cfg.App.AppName),
		ResumeHandler: handler.NewResumeHandler(parseUC),
		MatchHandler:  handler.NewMatchHandler(matchUC),
		SkillHandler:  handler.NewSkillHandler(skillUC),
	}
}

func buildExtractor(cfg config.AIConfig, logger *log.Logger) pdftext.Extractor {
	switch cfg.PDFBackend {
	case config.PDFBackendFitz:
		return pdftext.NewChain(logger, pdftext.NewFitzExtractor())
	case config.PDFBackendPlain:
		return pdftext.NewChain(logger, pdftext.NewPlainExtractor())
	default:
		return pdftext.NewChain(logger, pdftext.NewFitzExtractor(), pdftext.NewPlainExtractor())
	}
}
