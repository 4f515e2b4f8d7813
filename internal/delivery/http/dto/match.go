package dto

type MatchRequest struct {
	ResumeSkills       []string `json:"resumeSkills"`
	JobRequirements    string   `json:"jobRequirements"`
	IncludeExplanation bool     `json:"includeExplanation"`
}

type MatchResponse struct {
	MatchScore    float64  `json:"matchScore"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	Explanation   *string  `json:"explanation"`
}

type SkillExtractionResponse struct {
	Skills []string `json:"skills"`
}
