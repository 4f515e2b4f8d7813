package resume

import (
	"errors"
	"reflect"
	"testing"

	"resume-ai/internal/domain/skills"
)

const sampleResume = `Jane Doe
jane.doe@example.com
(555) 123-4567
Professional Summary
Seasoned Python engineer who enjoys AWS and distributed systems.
Education
MIT, 2015
Experience
Acme Corp 2016 - 2020
`

type stubRecognizer struct {
	ents []Entity
	err  error
}

func (s stubRecognizer) Entities(string) ([]Entity, error) { return s.ents, s.err }

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func TestParse_HeuristicsOnly(t *testing.T) {
	p := Parse(sampleResume, skills.Default(), nil)

	if p.Name == nil || *p.Name != "Jane Doe" {
		t.Fatalf("name = %v", deref(p.Name))
	}
	if p.Email == nil || *p.Email != "jane.doe@example.com" {
		t.Fatalf("email = %v", deref(p.Email))
	}
	// The leading "(" sits before the \b anchor, so the match starts at the
	// first digit while \)? still eats the closing paren.
	if p.Phone == nil || *p.Phone != "555) 123-4567" {
		t.Fatalf("phone = %v", deref(p.Phone))
	}
	if p.Summary == nil || *p.Summary != "Seasoned Python engineer who enjoys AWS and distributed systems." {
		t.Fatalf("summary = %v", deref(p.Summary))
	}

	if len(p.Education) != 1 || p.Education[0].Institution != "MIT" || p.Education[0].Year != "2015" {
		t.Fatalf("education = %+v", p.Education)
	}
	if len(p.Experience) != 1 {
		t.Fatalf("experience = %+v", p.Experience)
	}
	if p.Experience[0].Duration != "2016 - 2020" {
		t.Fatalf("duration = %q", p.Experience[0].Duration)
	}
	if p.Experience[0].Company != "Acme Corp 2016 - 2020" || p.Experience[0].Description != p.Experience[0].Company {
		t.Fatalf("experience line = %+v", p.Experience[0])
	}
	if p.Experience[0].Title != "" {
		t.Fatalf("title should stay empty, got %q", p.Experience[0].Title)
	}

	if !reflect.DeepEqual(p.Skills, []string{"Python", "AWS"}) {
		t.Fatalf("skills = %v", p.Skills)
	}

	// Without a model, dates fall back to distinct 4-digit years.
	if !reflect.DeepEqual(p.Dates, []string{"2015", "2016", "2020"}) {
		t.Fatalf("dates = %v", p.Dates)
	}
	if len(p.Organizations) != 0 {
		t.Fatalf("organizations = %v", p.Organizations)
	}
}

func TestPhonePattern_LeadingParenDropped(t *testing.T) {
	cases := []struct{ in, want string }{
		{"(555) 123-4567", "555) 123-4567"},
		{"call (555) 123-4567 now", "555) 123-4567"},
		{"555-123-4567", "555-123-4567"},
		{"+1 555 123 4567", "+1 555 123 4567"},
	}
	for _, c := range cases {
		if got := phoneRe.FindString(c.in); got != c.want {
			t.Fatalf("FindString(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParse_RecognizerPreferred(t *testing.T) {
	rec := stubRecognizer{ents: []Entity{
		{Text: "Jane A. Doe", Label: "PERSON"},
		{Text: "Acme Corp", Label: "ORG"},
		{Text: "Acme Corp", Label: "ORG"},
		{Text: "June 2016", Label: "DATE"},
	}}

	p := Parse(sampleResume, skills.Default(), rec)

	if p.Name == nil || *p.Name != "Jane A. Doe" {
		t.Fatalf("name = %v", deref(p.Name))
	}
	if !reflect.DeepEqual(p.Organizations, []string{"Acme Corp"}) {
		t.Fatalf("organizations = %v", p.Organizations)
	}
	if !reflect.DeepEqual(p.Dates, []string{"June 2016"}) {
		t.Fatalf("dates = %v", p.Dates)
	}
}

func TestParse_RecognizerFailureFallsBack(t *testing.T) {
	rec := stubRecognizer{err: errors.New("model exploded")}

	p := Parse(sampleResume, skills.Default(), rec)

	if p.Name == nil || *p.Name != "Jane Doe" {
		t.Fatalf("name = %v", deref(p.Name))
	}
	if !reflect.DeepEqual(p.Dates, []string{"2015", "2016", "2020"}) {
		t.Fatalf("dates = %v", p.Dates)
	}
}

func TestParse_LongPersonEntitySkipped(t *testing.T) {
	rec := stubRecognizer{ents: []Entity{
		{Text: "Jane Doe And Four More Words", Label: "PERSON"},
		{Text: "Jane Doe", Label: "PERSON"},
	}}

	p := Parse(sampleResume, skills.Default(), rec)
	if p.Name == nil || *p.Name != "Jane Doe" {
		t.Fatalf("name = %v", deref(p.Name))
	}
}

func TestExtractName_SkipsMetadataLines(t *testing.T) {
	lines := []string{"Curriculum Vitae", "Email: jane@example.com", "Jane Doe"}
	name := extractName(lines, "", nil)
	if name == nil || *name != "Jane Doe" {
		t.Fatalf("name = %v", deref(name))
	}
}

func TestExtractName_NoCandidate(t *testing.T) {
	lines := []string{"Resume", "A very long line that cannot possibly be anyone's name because it rambles"}
	if name := extractName(lines, "", nil); name != nil {
		t.Fatalf("expected nil, got %q", *name)
	}
}

func TestExtractSummary_KeywordFallback(t *testing.T) {
	all := []string{"Jane", "Career objective: build reliable systems"}
	got := extractSummary(nil, all)
	if got == nil || *got != "Career objective: build reliable systems" {
		t.Fatalf("summary = %v", deref(got))
	}
}

func TestParseExperience_SingleYearDuration(t *testing.T) {
	entries := parseExperience([]string{"Startup Inc 2019"})
	if len(entries) != 1 || entries[0].Duration != "2019" {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestParseExperience_CapsAtTenLines(t *testing.T) {
	lines := make([]string, 15)
	for i := range lines {
		lines[i] = "Some Role"
	}
	if got := parseExperience(lines); len(got) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(got))
	}
}

func TestParseEducation_CapsAtEightLines(t *testing.T) {
	lines := make([]string, 12)
	for i := range lines {
		lines[i] = "Some School"
	}
	if got := parseEducation(lines); len(got) != 8 {
		t.Fatalf("expected 8 entries, got %d", len(got))
	}
}

func TestEmpty_SerializableShape(t *testing.T) {
	p := Empty()
	if p.Education == nil || p.Experience == nil || p.Skills == nil || p.Organizations == nil || p.Dates == nil {
		t.Fatalf("empty record must have non-nil slices: %+v", p)
	}
	if p.Name != nil || p.Email != nil || p.Phone != nil || p.Summary != nil {
		t.Fatalf("empty record must have absent scalars: %+v", p)
	}
}
