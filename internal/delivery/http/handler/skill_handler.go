package handler

import (
	"resume-ai/internal/delivery/http/dto"
	"resume-ai/internal/delivery/http/middleware"
	"resume-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/extract-skills", h.ExtractSkills)
}

// ExtractSkills reads the "text" form field. An absent or empty field is not
// an error: it simply yields no skills.
func (h *SkillHandler) ExtractSkills(c fiber.Ctx) error {
	text := c.FormValue("text")

	found, err := h.uc.ExtractSkills(c.Context(), text)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Error extracting skills: "+err.Error(), err)
	}

	return c.JSON(dto.SkillExtractionResponse{Skills: found})
}
