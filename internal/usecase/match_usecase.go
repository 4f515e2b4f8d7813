package usecase

import (
	"context"

	"resume-ai/internal/domain/matching"
)

type MatchParams struct {
	ResumeSkills       []string
	JobRequirements    string
	IncludeExplanation bool
}

type MatchingUsecase interface {
	Match(ctx context.Context, params MatchParams) (matching.Result, error)
}

type Matching struct {
	engine *matching.Engine
}

func NewMatchingUsecase(engine *matching.Engine) *Matching {
	return &Matching{engine: engine}
}

func (u *Matching) Match(ctx context.Context, params MatchParams) (matching.Result, error) {
	if err := ctx.Err(); err != nil {
		return matching.Result{}, err
	}
	return u.engine.Calculate(params.ResumeSkills, params.JobRequirements, params.IncludeExplanation), nil
}
