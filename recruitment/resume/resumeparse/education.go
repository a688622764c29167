package resumeparse

import (
	"regexp"
	"strings"

	"github.com/devhire/matchbox/recruitment/resume"
)

var (
	educationHeaderRe = regexp.MustCompile(`(?i)education`)

	// Section names that terminate the education section, tried in order.
	educationNextSections = []string{"experience", "skills", "projects", "certifications"}
)

// ExtractEducation locates the education section and matches degree patterns
// inside it. Each match becomes an entry with only the degree populated; this
// extractor does not correlate degrees to institutions.
func (p *Parser) ExtractEducation(text string) []resume.EducationEntry {
	loc := educationHeaderRe.FindStringIndex(text)
	if loc == nil {
		return nil
	}

	start := loc[0]
	end := len(text)
	lower := strings.ToLower(text)
	for _, name := range educationNextSections {
		if idx := strings.Index(lower[loc[1]:], name); idx >= 0 {
			end = loc[1] + idx
			break
		}
	}

	section := text[start:end]

	var entries []resume.EducationEntry
	for _, pattern := range p.tax.DegreePatterns {
		re, err := regexp.Compile(`(?i)` + pattern)
		if err != nil {
			logExtractionIssue("education", err)
			continue
		}
		for _, match := range re.FindAllString(section, -1) {
			entries = append(entries, resume.EducationEntry{Degree: match})
		}
	}
	return entries
}
