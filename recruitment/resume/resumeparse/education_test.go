package resumeparse

import "testing"

func TestExtractEducationDegrees(t *testing.T) {
	text := `EDUCATION
Bachelor of Technology in Computer Science, 2018
Master of Science in Data Engineering, 2021

SKILLS
python, sql
`

	entries := newTestParser().ExtractEducation(text)

	var degrees []string
	for _, e := range entries {
		degrees = append(degrees, e.Degree)
	}
	// The short patterns also fire inside the long matches; the full phrases
	// just have to be present.
	if !contains(degrees, "Bachelor of Technology in Computer Science") {
		t.Errorf("degrees = %v, missing bachelor match", degrees)
	}
	if !contains(degrees, "Master of Science in Data Engineering") {
		t.Errorf("degrees = %v, missing master match", degrees)
	}
}

func TestExtractEducationStopsAtNextSection(t *testing.T) {
	text := `EDUCATION
B.Tech in Electronics

EXPERIENCE
Bachelor of Arts quoted inside a job description
`

	entries := newTestParser().ExtractEducation(text)

	if len(entries) != 1 {
		t.Fatalf("entries = %+v, want only the B.Tech match", entries)
	}
	if entries[0].Degree != "B.Tech" {
		t.Errorf("degree = %q", entries[0].Degree)
	}
}

func TestExtractEducationWithoutSection(t *testing.T) {
	if entries := newTestParser().ExtractEducation("no section headers at all"); entries != nil {
		t.Errorf("entries = %+v, want nil without an education header", entries)
	}
}
