package handler

import (
	"io"
	"path/filepath"
	"strings"

	"resume-ai/internal/delivery/http/dto"
	"resume-ai/internal/delivery/http/middleware"
	"resume-ai/internal/domain/resume"
	"resume-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const msgOnlyPDF = "Only PDF files are supported"

type ResumeHandler struct {
	uc usecase.ParseUsecase
}

func NewResumeHandler(uc usecase.ParseUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/parse-resume", h.ParseResume)
}

func (h *ResumeHandler) ParseResume(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded", err)
	}
	if strings.ToLower(filepath.Ext(fileHeader.Filename)) != ".pdf" {
		return middleware.NewAppError(fiber.StatusBadRequest, msgOnlyPDF, nil)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Error parsing resume: "+err.Error(), err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Error parsing resume: "+err.Error(), err)
	}

	parsed, err := h.uc.ParseResume(c.Context(), content)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Error parsing resume: "+err.Error(), err)
	}

	return c.JSON(toParseResponse(parsed))
}

func toParseResponse(p resume.Parsed) dto.ParseResumeResponse {
	data := dto.ParsedResumeData{
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		Summary:       p.Summary,
		Education:     make([]dto.EducationEntry, 0, len(p.Education)),
		Experience:    make([]dto.ExperienceEntry, 0, len(p.Experience)),
		Skills:        p.Skills,
		Organizations: p.Organizations,
		Dates:         p.Dates,
	}
	for _, e := range p.Education {
		data.Education = append(data.Education, dto.EducationEntry{
			Institution: e.Institution,
			Degree:      e.Degree,
			Field:       e.Field,
			Year:        e.Year,
		})
	}
	for _, e := range p.Experience {
		data.Experience = append(data.Experience, dto.ExperienceEntry{
			Company:     e.Company,
			Title:       e.Title,
			Duration:    e.Duration,
			Description: e.Description,
		})
	}

	return dto.ParseResumeResponse{ParsedData: data, Skills: data.Skills}
}
