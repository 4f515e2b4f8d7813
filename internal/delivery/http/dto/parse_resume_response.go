package dto

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Year        string `json:"year"`
}

type ExperienceEntry struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type ParsedResumeData struct {
	Name          *string           `json:"name"`
	Email         *string           `json:"email"`
	Phone         *string           `json:"phone"`
	Summary       *string           `json:"summary"`
	Education     []EducationEntry  `json:"education"`
	Experience    []ExperienceEntry `json:"experience"`
	Skills        []string          `json:"skills"`
	Organizations []string          `json:"organizations"`
	Dates         []string          `json:"dates"`
}

type ParseResumeResponse struct {
	ParsedData ParsedResumeData `json:"parsedData"`
	Skills     []string         `json:"skills"`
}
