package resumeparse

import (
	"reflect"
	"testing"
)

func TestExtractSkillsBasic(t *testing.T) {
	text := `Built services in Python with Django and deployed on AWS using Docker.
Strong communication and leadership across distributed teams.`

	all, technical, soft := newTestParser().ExtractSkills(text)

	for _, want := range []string{"python", "django", "aws", "docker"} {
		if !contains(technical, want) {
			t.Errorf("technical skills missing %q: %v", want, technical)
		}
	}
	for _, want := range []string{"communication", "leadership"} {
		if !contains(soft, want) {
			t.Errorf("soft skills missing %q: %v", want, soft)
		}
	}
	if len(all) != len(technical)+len(soft) {
		t.Errorf("all = %d entries, want technical+soft = %d", len(all), len(technical)+len(soft))
	}
}

func TestAmbiguousSkillNeedsDisambiguatingPhrase(t *testing.T) {
	p := newTestParser()

	if _, technical, _ := p.ExtractSkills("I like to go hiking and go camping."); contains(technical, "go") {
		t.Error("bare word 'go' must not count as a skill")
	}
	if _, technical, _ := p.ExtractSkills("Backend services written in Golang."); !contains(technical, "go") {
		t.Error("'golang' should surface the go skill")
	}
	if _, technical, _ := p.ExtractSkills("Data analysis in R programming and r studio."); !contains(technical, "r") {
		t.Error("'r programming' should surface the r skill")
	}
	if _, technical, _ := p.ExtractSkills("Grade c in mathematics."); contains(technical, "c") {
		t.Error("bare letter 'c' must not count as a skill")
	}
}

func TestSingleCharSkillRequiresNearbyProgrammingContext(t *testing.T) {
	tax := DefaultTaxonomy()
	tax.TechnicalSkills["programming_languages"] = append(tax.TechnicalSkills["programming_languages"], "k")
	p := NewParser(tax, nil)

	if _, technical, _ := p.ExtractSkills("Vitamin k supplements daily."); contains(technical, "k") {
		t.Error("single letter without programming context must not match")
	}
	if _, technical, _ := p.ExtractSkills("Array programming in k for time series work."); !contains(technical, "k") {
		t.Error("single letter near 'programming' should match")
	}
}

func TestExtractSkillsDeterministicOrder(t *testing.T) {
	text := "Experience with docker, python, react and sql."

	first, _, _ := newTestParser().ExtractSkills(text)
	for i := 0; i < 5; i++ {
		again, _, _ := newTestParser().ExtractSkills(text)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("skill order not deterministic: %v vs %v", first, again)
		}
	}
}

func TestExtractSkillsEmptyText(t *testing.T) {
	all, technical, soft := newTestParser().ExtractSkills("")
	if len(all) != 0 || len(technical) != 0 || len(soft) != 0 {
		t.Errorf("expected no skills, got all=%v technical=%v soft=%v", all, technical, soft)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
