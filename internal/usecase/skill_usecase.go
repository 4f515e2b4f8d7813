package usecase

import (
	"context"

	"resume-ai/internal/domain/skills"
	"resume-ai/internal/pkg/textutil"
)

type SkillUsecase interface {
	ExtractSkills(ctx context.Context, text string) ([]string, error)
}

type Skill struct {
	vocab skills.Vocabulary
}

func NewSkillUsecase(vocab skills.Vocabulary) *Skill {
	return &Skill{vocab: vocab}
}

func (u *Skill) ExtractSkills(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return u.vocab.Extract(textutil.NormalizeWhitespace(text)), nil
}
