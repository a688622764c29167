package resumeparse

import (
	"reflect"
	"testing"

	"github.com/devhire/matchbox/recruitment/resume"
)

func TestExtractExperienceWorkSection(t *testing.T) {
	text := `WORK EXPERIENCE
Senior Software Engineer
Acme Technologies
Jun 2021 - Present
• Developed microservices in Go
• Improved deployment speed by half

EDUCATION
Bachelor of Technology in Computer Science
`

	all, work, internships := newTestParser().ExtractExperience(text)

	if len(work) != 1 || len(internships) != 0 {
		t.Fatalf("work = %d, internships = %d, want 1 and 0", len(work), len(internships))
	}
	if len(all) != len(work)+len(internships) {
		t.Fatalf("all = %d entries, want %d", len(all), len(work)+len(internships))
	}

	entry := work[0]
	if entry.JobTitle != "Senior Software Engineer" {
		t.Errorf("job title = %q", entry.JobTitle)
	}
	if entry.Company != "Acme Technologies" {
		t.Errorf("company = %q", entry.Company)
	}
	if entry.Duration != "Jun 2021 - Present" {
		t.Errorf("duration = %q", entry.Duration)
	}
	if entry.StartDate != "jun 2021" || entry.EndDate != "present" {
		t.Errorf("dates = %q .. %q, want jun 2021 .. present", entry.StartDate, entry.EndDate)
	}
	if !entry.IsCurrent {
		t.Error("entry with present marker should be current")
	}
	if len(entry.Responsibilities) != 2 {
		t.Errorf("responsibilities = %v, want both bullet lines", entry.Responsibilities)
	}
	if entry.Kind != resume.ExperienceKindWork {
		t.Errorf("kind = %q", entry.Kind)
	}
}

func TestExtractExperiencePartitionsByKind(t *testing.T) {
	text := `WORK EXPERIENCE
Senior Software Engineer
Acme Technologies
Jun 2021 - Present

EDUCATION
Bachelor of Technology

INTERNSHIPS
Software Engineering Intern
Initech Solutions
Summer 2022
`

	all, work, internships := newTestParser().ExtractExperience(text)

	if len(work) != 1 || len(internships) != 1 {
		t.Fatalf("work = %d, internships = %d, want 1 and 1", len(work), len(internships))
	}
	if len(all) != 2 {
		t.Fatalf("all = %d entries, want 2", len(all))
	}
	if internships[0].Kind != resume.ExperienceKindInternship {
		t.Errorf("internship kind = %q", internships[0].Kind)
	}
	if internships[0].Company != "Initech Solutions" {
		t.Errorf("internship company = %q", internships[0].Company)
	}
	if internships[0].Duration != "Summer 2022" {
		t.Errorf("internship duration = %q", internships[0].Duration)
	}
}

func TestExtractExperienceFallbackClassifiesByTitle(t *testing.T) {
	_, work, _ := newTestParser().ExtractExperience("Senior Developer at Acme Corp\n")
	if len(work) != 1 {
		t.Fatalf("work = %+v, want one fallback entry", work)
	}
	if work[0].JobTitle != "Senior Developer" || work[0].Company != "Acme Corp" {
		t.Errorf("fallback entry = %+v", work[0])
	}
	if work[0].Kind != resume.ExperienceKindWork {
		t.Errorf("kind = %q, want work", work[0].Kind)
	}

	_, _, internships := newTestParser().ExtractExperience("Marketing Intern at Initech\n")
	if len(internships) != 1 {
		t.Fatalf("internships = %+v, want one fallback entry", internships)
	}
	if internships[0].JobTitle != "Marketing Intern" {
		t.Errorf("fallback internship = %+v", internships[0])
	}
}

func TestExtractExperienceEmptyText(t *testing.T) {
	all, work, internships := newTestParser().ExtractExperience("")
	if len(all) != 0 || len(work) != 0 || len(internships) != 0 {
		t.Errorf("expected no entries, got all=%v work=%v internships=%v", all, work, internships)
	}
}

func TestExtractDates(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"Jun 2021 - Present", []string{"jun 2021", "present"}},
		{"2018 - 2021", []string{"2018", "2021"}},
		{"2019 to Mar 2021", []string{"2019", "mar 2021"}},
		{"Jan 2015 - Dec 2017", []string{"jan 2015", "dec 2017"}},
		{"since 2020, ongoing", []string{"2020", "present"}},
		{"no dates here", nil},
	}

	for _, tt := range tests {
		got := extractDates(tt.line)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("extractDates(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestLineHeuristics(t *testing.T) {
	if !isJobTitleLine("Senior Software Engineer") {
		t.Error("role keyword line should be a title")
	}
	if !isJobTitleLine("Chief Of Staff") {
		t.Error("short title-cased line should be a title")
	}
	if isJobTitleLine("worked on various things across several products and teams") {
		t.Error("long lowercase line should not be a title")
	}

	if !looksLikeCompany("Acme Technologies") {
		t.Error("suffix match should look like a company")
	}
	if !looksLikeCompany("Initech") {
		t.Error("single title-cased word should look like a company")
	}
	if looksLikeCompany("Joined in Jun 2019") {
		t.Error("date-like line should not look like a company")
	}

	if !startsWithActionVerb("Developed the billing pipeline") {
		t.Error("action verb line not detected")
	}
	if startsWithActionVerb("The billing pipeline") {
		t.Error("non-verb line misdetected")
	}
}
