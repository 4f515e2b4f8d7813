package resume

// Education is one parsed education line. Degree and Field stay empty when
// the line cannot be split further.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Year        string `json:"year"`
}

// Experience is one parsed experience line. The raw line doubles as company
// and description; Title stays empty.
type Experience struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Parsed is the structured record extracted from one resume. Every field
// degrades to empty/absent when its extraction fails; a record is never
// partially built then discarded.
type Parsed struct {
	Name          *string      `json:"name"`
	Email         *string      `json:"email"`
	Phone         *string      `json:"phone"`
	Summary       *string      `json:"summary"`
	Education     []Education  `json:"education"`
	Experience    []Experience `json:"experience"`
	Skills        []string     `json:"skills"`
	Organizations []string     `json:"organizations"`
	Dates         []string     `json:"dates"`
}

// Empty returns a fully-empty record with non-nil slices so it serializes
// as empty arrays rather than nulls.
func Empty() Parsed {
	return Parsed{
		Education:     []Education{},
		Experience:    []Experience{},
		Skills:        []string{},
		Organizations: []string{},
		Dates:         []string{},
	}
}

// Entity is one span recognized by a statistical language model.
type Entity struct {
	Text  string
	Label string
}

// EntityRecognizer is the optional statistical NER capability. A nil
// recognizer is a normal configuration; every caller falls back to regex
// heuristics when the recognizer is absent or errors.
type EntityRecognizer interface {
	Entities(text string) ([]Entity, error)
}
