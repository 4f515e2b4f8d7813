package routes

import (
	"resume-ai/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	resume *handler.ResumeHandler
	match  *handler.MatchHandler
	skill  *handler.SkillHandler
}

func NewRegistry(health *handler.HealthHandler, resume *handler.ResumeHandler, match *handler.MatchHandler, skill *handler.SkillHandler) *Registry {
	return &Registry{health: health, resume: resume, match: match, skill: skill}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	ai := app.Group("/ai")
	r.resume.RegisterRoutes(ai)
	r.match.RegisterRoutes(ai)
	r.skill.RegisterRoutes(ai)
}
