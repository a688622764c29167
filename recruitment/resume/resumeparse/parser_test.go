package resumeparse

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/devhire/matchbox/recruitment/resume"
)

const sampleResume = `John Smith
john.smith@example.com | +1 415-555-0134
linkedin.com/in/john-smith

SUMMARY
Backend engineer focused on distributed systems.
Shipped payment infrastructure at scale.

WORK EXPERIENCE
Senior Software Engineer
Acme Technologies
Jun 2021 - Present
• Developed microservices in Python with Django

EDUCATION
Bachelor of Technology in Computer Science, 2018

SKILLS
python, django, postgresql, docker, communication
`

func TestParseFullResume(t *testing.T) {
	parsed := newTestParser().Parse(context.Background(), sampleResume)

	if parsed.ContactInfo.Email != "john.smith@example.com" {
		t.Errorf("email = %q", parsed.ContactInfo.Email)
	}
	if parsed.ContactInfo.Name != "John Smith" {
		t.Errorf("name = %q", parsed.ContactInfo.Name)
	}
	if parsed.Summary == "" {
		t.Error("summary not extracted")
	}
	for _, want := range []string{"python", "django", "postgresql", "docker"} {
		if !contains(parsed.TechnicalSkills, want) {
			t.Errorf("technical skills missing %q: %v", want, parsed.TechnicalSkills)
		}
	}
	if !contains(parsed.SoftSkills, "communication") {
		t.Errorf("soft skills = %v", parsed.SoftSkills)
	}
	if len(parsed.WorkExperience) == 0 {
		t.Fatal("no work experience extracted")
	}
	if !parsed.WorkExperience[0].IsCurrent {
		t.Error("current role not flagged")
	}
	if len(parsed.Education) == 0 {
		t.Error("no education extracted")
	}

	// Experience partition: every entry lands in exactly one bucket.
	if len(parsed.AllExperience) != len(parsed.WorkExperience)+len(parsed.InternshipExperience) {
		t.Errorf("all = %d, work = %d, internships = %d",
			len(parsed.AllExperience), len(parsed.WorkExperience), len(parsed.InternshipExperience))
	}
}

func TestParseEmptyText(t *testing.T) {
	for _, text := range []string{"", "   \n\t  "} {
		parsed := newTestParser().Parse(context.Background(), text)
		if !reflect.DeepEqual(parsed, resume.ParsedResume{}) {
			t.Errorf("Parse(%q) = %+v, want zero record", text, parsed)
		}
	}
}

func TestParsedResumeJSONRoundTrip(t *testing.T) {
	parsed := newTestParser().Parse(context.Background(), sampleResume)

	data, err := json.Marshal(parsed)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back resume.ParsedResume
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(parsed, back) {
		t.Errorf("round trip changed the record:\n%+v\nvs\n%+v", parsed, back)
	}
}

func TestExtractSummarySkipsHeadersAndBlankLines(t *testing.T) {
	text := `PROFESSIONAL SUMMARY

Ten years building data platforms.

TECHNICAL SKILLS
python
`

	summary := newTestParser().ExtractSummary(text)

	if summary != "Ten years building data platforms." {
		t.Errorf("summary = %q", summary)
	}
}

func TestExtractSummaryMissing(t *testing.T) {
	if s := newTestParser().ExtractSummary("just a plain resume body"); s != "" {
		t.Errorf("summary = %q, want empty", s)
	}
}
