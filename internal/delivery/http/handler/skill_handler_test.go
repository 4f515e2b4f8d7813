package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"resume-ai/internal/delivery/http/dto"
	"resume-ai/internal/delivery/http/middleware"
	"resume-ai/internal/domain/skills"
	"resume-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func newSkillTestApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewSkillHandler(usecase.NewSkillUsecase(skills.Default())).RegisterRoutes(app.Group("/ai"))
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestExtractSkills_Example(t *testing.T) {
	app := newSkillTestApp()

	resp := postForm(t, app, "/ai/extract-skills", url.Values{
		"text": {"I know Docker, Kubernetes and REST API design"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var out dto.SkillExtractionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(out.Skills, []string{"Docker", "Kubernetes", "Rest Api"}) {
		t.Fatalf("skills = %v", out.Skills)
	}
}

func TestExtractSkills_EmptyText(t *testing.T) {
	app := newSkillTestApp()

	resp := postForm(t, app, "/ai/extract-skills", url.Values{})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var out dto.SkillExtractionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Skills) != 0 {
		t.Fatalf("skills = %v", out.Skills)
	}
}
