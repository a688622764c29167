package resumeparse

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/devhire/matchbox/recruitment/resume"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Tried most to least specific; the first pattern with any match wins.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3,}[-.\s]?\d{3,}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\+?[\d\s\-()]{10,}`),
	}

	linkedinRe = regexp.MustCompile(`(?:linkedin\.com/in/|linkedin\.com/profile/view\?id=)([a-z0-9\-]+)`)
	githubRe   = regexp.MustCompile(`github\.com/([a-z0-9\-]+)`)
)

// ExtractContact scans the text with independent single-purpose patterns;
// the first match wins for each field. A field with no match stays empty.
func (p *Parser) ExtractContact(ctx context.Context, text string) resume.ContactInfo {
	var contact resume.ContactInfo
	lower := strings.ToLower(text)

	contact.Email = emailRe.FindString(text)

	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			contact.Phone = strings.TrimSpace(m)
			break
		}
	}

	// Social handles are re-emitted as domain.com/segment, dropping scheme
	// and anything after the path segment.
	if m := linkedinRe.FindStringSubmatch(lower); m != nil {
		contact.LinkedIn = "linkedin.com/in/" + m[1]
	}
	if m := githubRe.FindStringSubmatch(lower); m != nil {
		contact.GitHub = "github.com/" + m[1]
	}

	contact.Name = p.extractName(ctx, text)

	return contact
}

// extractName prefers the entity finder over the leading 500 characters and
// falls back to scanning the first five non-empty lines.
func (p *Parser) extractName(ctx context.Context, text string) string {
	if p.names != nil {
		head := text
		if len(head) > 500 {
			head = head[:500]
		}
		name, err := p.names.PersonName(ctx, head)
		if err != nil {
			logExtractionIssue("name", err)
		} else if name != "" {
			return name
		}
	}

	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		if looksLikeName(line) {
			return line
		}
	}
	return ""
}

// looksLikeName accepts a line with at least two tokens, no digits, and
// no email marker.
func looksLikeName(line string) bool {
	if strings.Contains(line, "@") {
		return false
	}
	for _, r := range line {
		if unicode.IsDigit(r) {
			return false
		}
	}
	return len(strings.Fields(line)) >= 2
}
