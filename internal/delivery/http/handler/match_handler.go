package handler

import (
	"resume-ai/internal/delivery/http/dto"
	"resume-ai/internal/delivery/http/middleware"
	"resume-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.Match)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	res, err := h.uc.Match(c.Context(), usecase.MatchParams{
		ResumeSkills:       req.ResumeSkills,
		JobRequirements:    req.JobRequirements,
		IncludeExplanation: req.IncludeExplanation,
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Error matching: "+err.Error(), err)
	}

	return c.JSON(dto.MatchResponse{
		MatchScore:    res.MatchScore,
		MatchedSkills: res.MatchedSkills,
		MissingSkills: res.MissingSkills,
		Explanation:   res.Explanation,
	})
}
