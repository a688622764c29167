package resumeparse

import (
	"regexp"
	"strings"
)

var programmingContext = []string{"programming", "language", "coding", "development", "script"}

// ExtractSkills matches the taxonomy against the text and returns three
// deduplicated, order-preserving lists: all skills, technical skills, and
// soft skills.
func (p *Parser) ExtractSkills(text string) (all, technical, soft []string) {
	lower := strings.ToLower(text)

	for _, category := range p.tax.TechnicalCategories {
		for _, skill := range p.tax.TechnicalSkills[category] {
			if p.skillPresent(skill, lower) {
				technical = append(technical, skill)
			}
		}
	}

	for _, skill := range p.tax.SoftSkills {
		if p.skillPresent(skill, lower) {
			soft = append(soft, skill)
		}
	}

	all = dedupe(append(append([]string{}, technical...), soft...))
	technical = dedupe(technical)
	soft = dedupe(soft)
	return all, technical, soft
}

// skillPresent decides presence with context-aware matching. Naive substring
// matching makes short tokens ("r", "go", "c") match almost any resume, so
// those trade recall for precision: they only count alongside a
// disambiguating phrase or a nearby programming-context word.
func (p *Parser) skillPresent(skill, textLower string) bool {
	skill = strings.ToLower(skill)

	if phrases, ok := p.tax.AmbiguousSkills[skill]; ok {
		for _, phrase := range phrases {
			if strings.Contains(textLower, phrase) {
				return true
			}
		}
		return false
	}

	if len(skill) <= 2 {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)

		if len(skill) == 1 {
			// Single letters additionally need a programming-context word
			// within 50 characters on either side of the match.
			for _, loc := range re.FindAllStringIndex(textLower, -1) {
				start := loc[0] - 50
				if start < 0 {
					start = 0
				}
				end := loc[1] + 50
				if end > len(textLower) {
					end = len(textLower)
				}
				window := textLower[start:end]
				for _, ctx := range programmingContext {
					if strings.Contains(window, ctx) {
						return true
					}
				}
			}
			return false
		}

		return re.MatchString(textLower)
	}

	return strings.Contains(textLower, skill)
}

// dedupe removes duplicates while preserving first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
