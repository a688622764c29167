package resumeparse

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/devhire/matchbox/recruitment/resume"
)

var (
	workSectionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:work\s+)?experience`),
		regexp.MustCompile(`(?i)employment\s+history`),
		regexp.MustCompile(`(?i)professional\s+experience`),
		regexp.MustCompile(`(?i)career\s+history`),
		regexp.MustCompile(`(?i)work\s+history`),
	}

	internshipSectionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)internships?`),
		regexp.MustCompile(`(?i)intern\s+experience`),
		regexp.MustCompile(`(?i)summer\s+internships?`),
		regexp.MustCompile(`(?i)industrial\s+training`),
		regexp.MustCompile(`(?i)co-op\s+experience`),
	}

	genericSectionRe = regexp.MustCompile(`(?i)experience|employment`)

	// Section names that terminate an experience section, tried in order.
	nextSectionNames = []string{
		"education", "skills", "projects", "certifications",
		"awards", "publications", "references", "interests",
	}

	internshipKeywords = []string{
		"intern", "internship", "trainee", "co-op", "summer intern",
		"graduate trainee", "industrial training", "apprentice",
	}

	jobTitleIndicators = []string{
		"engineer", "developer", "manager", "analyst", "specialist",
		"intern", "consultant", "director", "coordinator", "lead",
		"senior", "junior", "associate", "executive", "designer",
		"architect", "scientist", "researcher", "administrator",
		"supervisor", "assistant", "officer", "representative",
	}

	companySuffixes = []string{"inc", "corp", "llc", "ltd", "pvt", "technologies", "systems", "solutions"}

	actionVerbs = map[string]struct{}{
		"managed": {}, "developed": {}, "created": {}, "implemented": {}, "designed": {}, "built": {},
		"led": {}, "coordinated": {}, "analyzed": {}, "maintained": {}, "improved": {}, "optimized": {},
		"collaborated": {}, "worked": {}, "assisted": {}, "supported": {}, "delivered": {}, "executed": {},
		"established": {}, "streamlined": {}, "enhanced": {}, "resolved": {}, "troubleshot": {},
	}

	dateLikeRes = []*regexp.Regexp{
		regexp.MustCompile(`\d{4}`),
		regexp.MustCompile(`\d{1,2}/\d{4}`),
		regexp.MustCompile(`\d{1,2}-\d{4}`),
		regexp.MustCompile(`jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`),
		regexp.MustCompile(`present|current|ongoing`),
	}

	yearRe      = regexp.MustCompile(`\d{4}`)
	monthYearRe = regexp.MustCompile(`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+\d{4}`)
	presentRe   = regexp.MustCompile(`present|current|ongoing`)

	fallbackTitleRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:^|\n)\s*([A-Z][a-zA-Z\s]+(?:Engineer|Developer|Manager|Analyst|Specialist|Intern|Consultant|Director|Coordinator|Lead|Senior|Junior|Associate))\s*\n`),
		regexp.MustCompile(`(?:^|\n)\s*([A-Z][a-zA-Z\s]+)\s*(?:-|at|@)\s*([A-Z][a-zA-Z\s&.,]+)\s*\n`),
	}
)

type sectionSpan struct {
	kind  resume.ExperienceKind
	start int
	end   int
}

// ExtractExperience locates work and internship sections, parses each into
// entries, and partitions the result by kind. If no section yields entries,
// a permissive whole-text scan runs instead.
func (p *Parser) ExtractExperience(text string) (all, work, internships []resume.ExperienceEntry) {
	for _, span := range discoverSections(text) {
		body := text[span.start:span.end]
		for _, entry := range parseExperienceSection(body, span.kind) {
			all = append(all, entry)
			if entry.Kind == resume.ExperienceKindInternship {
				internships = append(internships, entry)
			} else {
				work = append(work, entry)
			}
		}
	}

	if len(all) == 0 {
		for _, entry := range extractExperienceFromFullText(text) {
			if containsAnyKeyword(strings.ToLower(entry.JobTitle), internshipKeywords) {
				entry.Kind = resume.ExperienceKindInternship
				internships = append(internships, entry)
			} else {
				entry.Kind = resume.ExperienceKindWork
				work = append(work, entry)
			}
			all = append(all, entry)
		}
	}

	return all, work, internships
}

// discoverSections finds work and internship section headers, falling back
// to a generic experience search, and bounds each section at the next
// recognized section name.
func discoverSections(text string) []sectionSpan {
	type header struct {
		kind resume.ExperienceKind
		pos  [2]int
	}
	var headers []header

	for _, re := range workSectionRes {
		if loc := re.FindStringIndex(text); loc != nil {
			headers = append(headers, header{resume.ExperienceKindWork, [2]int{loc[0], loc[1]}})
		}
	}
	for _, re := range internshipSectionRes {
		if loc := re.FindStringIndex(text); loc != nil {
			headers = append(headers, header{resume.ExperienceKindInternship, [2]int{loc[0], loc[1]}})
		}
	}
	if len(headers) == 0 {
		if loc := genericSectionRe.FindStringIndex(text); loc != nil {
			headers = append(headers, header{resume.ExperienceKindWork, [2]int{loc[0], loc[1]}})
		}
	}

	spans := make([]sectionSpan, 0, len(headers))
	lower := strings.ToLower(text)
	for _, h := range headers {
		start := h.pos[1]
		end := len(text)
		for _, name := range nextSectionNames {
			if idx := strings.Index(lower[start:], name); idx >= 0 {
				end = start + idx
				break
			}
		}
		spans = append(spans, sectionSpan{kind: h.kind, start: start, end: end})
	}
	return spans
}

// parseExperienceSection runs the line-scanning state machine over one
// section body. A "current open entry" cursor accumulates fields until the
// next title line (or end of section) closes it.
func parseExperienceSection(body string, kind resume.ExperienceKind) []resume.ExperienceEntry {
	var entries []resume.ExperienceEntry

	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	var current *resume.ExperienceEntry

	closeCurrent := func() {
		if current != nil && current.JobTitle != "" {
			entries = append(entries, *current)
		}
		current = nil
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		switch strings.ToLower(line) {
		case "experience", "work experience", "internships", "employment history":
			continue
		}

		switch {
		case isJobTitleLine(line):
			closeCurrent()
			current = &resume.ExperienceEntry{
				JobTitle: line,
				Kind:     kind,
			}

			// The line right after a title is usually the company, as long
			// as it does not carry a date.
			if i+1 < len(lines) && looksLikeCompany(lines[i+1]) && !containsDate(lines[i+1]) {
				current.Company = lines[i+1]
				i++
			}

			// Duration shows up within the next few lines.
			for j := i + 1; j < len(lines) && j < i+4; j++ {
				if containsDate(lines[j]) {
					setDuration(current, lines[j])
					break
				}
			}

		case current != nil && containsDate(line):
			if current.Duration == "" {
				setDuration(current, line)
			}

		case current != nil && current.Company == "" && looksLikeCompany(line):
			current.Company = line

		case current != nil:
			if current.Description == "" {
				current.Description = line
			} else {
				current.Description += " " + line
			}
			if isBulletLine(line) || startsWithActionVerb(line) {
				current.Responsibilities = append(current.Responsibilities, strings.TrimLeft(line, "•-* "))
			}
		}
	}

	closeCurrent()
	return entries
}

// setDuration records the duration line and derives dates and currency.
func setDuration(entry *resume.ExperienceEntry, line string) {
	entry.Duration = line
	dates := extractDates(line)
	if len(dates) > 0 {
		entry.StartDate = dates[0]
		if len(dates) > 1 {
			entry.EndDate = dates[1]
		}
	}
	entry.IsCurrent = presentRe.MatchString(strings.ToLower(line))
}

// extractDates pulls up to two date tokens in positional order: month-year
// tokens first at their position, bare years not already covered by one, and
// a trailing "present" sentinel.
func extractDates(text string) []string {
	lower := strings.ToLower(text)

	type token struct {
		pos  int
		text string
	}
	var tokens []token

	monthYearSpans := monthYearRe.FindAllStringIndex(lower, -1)
	for _, span := range monthYearSpans {
		tokens = append(tokens, token{span[0], lower[span[0]:span[1]]})
	}

	for _, span := range yearRe.FindAllStringIndex(lower, -1) {
		covered := false
		for _, my := range monthYearSpans {
			if span[0] >= my[0] && span[1] <= my[1] {
				covered = true
				break
			}
		}
		if !covered {
			tokens = append(tokens, token{span[0], lower[span[0]:span[1]]})
		}
	}

	// Insertion kept them grouped by kind; order by position instead.
	for i := 1; i < len(tokens); i++ {
		for j := i; j > 0 && tokens[j-1].pos > tokens[j].pos; j-- {
			tokens[j-1], tokens[j] = tokens[j], tokens[j-1]
		}
	}

	dates := make([]string, 0, len(tokens)+1)
	for _, t := range tokens {
		dates = append(dates, t.text)
	}
	if presentRe.MatchString(lower) {
		dates = append(dates, "present")
	}

	if len(dates) > 2 {
		dates = dates[:2]
	}
	return dates
}

// extractExperienceFromFullText is the fallback when no structured section
// exists: permissive title/company pair patterns over the whole text.
func extractExperienceFromFullText(text string) []resume.ExperienceEntry {
	var entries []resume.ExperienceEntry
	for _, re := range fallbackTitleRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			entry := resume.ExperienceEntry{JobTitle: strings.TrimSpace(m[1])}
			if len(m) > 2 {
				entry.Company = strings.TrimSpace(m[2])
			}
			entries = append(entries, entry)
		}
	}
	return entries
}

// ============================================================================
// Line classification heuristics
// ============================================================================

// isJobTitleLine: contains a role keyword, or is title-cased with 2-6 tokens.
func isJobTitleLine(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	if containsAnyKeyword(lower, jobTitleIndicators) {
		return true
	}
	words := strings.Fields(line)
	return isTitleCased(line) && len(words) >= 2 && len(words) <= 6
}

// looksLikeCompany: has a known company suffix, or is 1-5 alphabetic-ish
// title-cased words; never date-like and never longer than 8 tokens.
func looksLikeCompany(line string) bool {
	if containsDate(line) || len(strings.Fields(line)) > 8 {
		return false
	}

	lower := strings.ToLower(line)
	for _, suffix := range companySuffixes {
		if strings.Contains(lower, suffix) {
			return true
		}
	}

	stripped := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '.', ',', '&':
			return -1
		}
		return r
	}, line)
	if !isAlpha(stripped) {
		return false
	}

	words := strings.Fields(line)
	if len(words) < 1 || len(words) > 5 {
		return false
	}
	for _, w := range words {
		r := []rune(w)[0]
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// containsDate: a 4-digit year, MM/YYYY, MM-YYYY, a month abbreviation, or a
// present marker.
func containsDate(line string) bool {
	lower := strings.ToLower(line)
	for _, re := range dateLikeRes {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*")
}

func startsWithActionVerb(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimRight(fields[0], ".,!?;:"))
	_, ok := actionVerbs[first]
	return ok
}

func containsAnyKeyword(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// isTitleCased mirrors a title-case check: every cased word starts uppercase
// and continues lowercase.
func isTitleCased(s string) bool {
	hasCased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			if prevCased {
				return false
			}
			hasCased = true
			prevCased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			hasCased = true
		default:
			prevCased = false
		}
	}
	return hasCased
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
