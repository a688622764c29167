// Package resumeparse turns raw resume text into a structured record using
// pattern-scanning heuristics. Extraction is best-effort: a field that cannot
// be recognized is left empty, and no input ever causes an error.
package resumeparse

import (
	"context"
	"regexp"
	"strings"

	"github.com/devhire/matchbox/pkg/logx"
	"github.com/devhire/matchbox/recruitment/resume"
)

// EntityFinder locates a person name in the leading resume text. It is
// optional; the contact extractor falls back to line heuristics without it.
type EntityFinder interface {
	PersonName(ctx context.Context, text string) (string, error)
}

// Parser assembles a ParsedResume from raw text.
type Parser struct {
	tax   Taxonomy
	names EntityFinder
}

// NewParser creates a parser over the given taxonomy. finder may be nil.
func NewParser(tax Taxonomy, finder EntityFinder) *Parser {
	return &Parser{tax: tax, names: finder}
}

// Parse runs every extractor over the text and assembles the record.
// Empty or whitespace-only text yields an empty record.
func (p *Parser) Parse(ctx context.Context, text string) resume.ParsedResume {
	if strings.TrimSpace(text) == "" {
		return resume.ParsedResume{}
	}

	contact := p.ExtractContact(ctx, text)
	skills, technical, soft := p.ExtractSkills(text)
	all, work, internships := p.ExtractExperience(text)
	education := p.ExtractEducation(text)
	summary := p.ExtractSummary(text)
	years, internMonths := p.ExperienceMetrics(work, internships)

	return resume.ParsedResume{
		ContactInfo:           contact,
		Summary:               summary,
		Skills:                skills,
		TechnicalSkills:       technical,
		SoftSkills:            soft,
		AllExperience:         all,
		WorkExperience:        work,
		InternshipExperience:  internships,
		Education:             education,
		YearsOfExperience:     years,
		TotalInternshipMonths: internMonths,
	}
}

var (
	summaryHeaderRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:professional\s+)?summary`),
		regexp.MustCompile(`(?i)objective`),
		regexp.MustCompile(`(?i)profile`),
		regexp.MustCompile(`(?i)about\s+me`),
	}
	allCapsHeaderRe = regexp.MustCompile(`^[A-Z\s]+$`)
)

// ExtractSummary pulls the professional summary or objective: up to five
// non-header lines following the first summary-like header.
func (p *Parser) ExtractSummary(text string) string {
	for _, re := range summaryHeaderRes {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}

		section := text[loc[1]:]
		if len(section) > 500 {
			section = section[:500]
		}

		lines := strings.Split(section, "\n")
		if len(lines) > 5 {
			lines = lines[:5]
		}
		var picked []string
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" || allCapsHeaderRe.MatchString(line) {
				continue
			}
			picked = append(picked, line)
		}
		return strings.Join(picked, " ")
	}
	return ""
}

// logExtractionIssue records a non-fatal extractor problem. Extraction never
// surfaces errors to callers, so this is the only trace left behind.
func logExtractionIssue(stage string, err error) {
	if err != nil {
		logx.Warnf("resume %s extraction degraded: %v", stage, err)
	}
}
