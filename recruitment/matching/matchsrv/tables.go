package matchsrv

// Tables is the read-only scoring configuration: category detection
// keywords, per-category skill weights, the synonym map, experience level
// vocabulary, and the country list for coarse location matching. The zero
// value is unusable; construct with DefaultTables.
type Tables struct {
	// CategoryKeywords is checked in order; the first category with a
	// keyword hit in the job title wins.
	CategoryKeywords []CategoryKeywords

	// SkillWeights maps job category to per-skill importance. Skills not
	// listed weigh 1.0.
	SkillWeights map[string]map[string]float64

	// Synonyms maps a canonical skill to its accepted variant spellings.
	// Matching a canonical against a variant (or the reverse) scores 0.9;
	// variant-to-variant pairs do not match.
	Synonyms map[string][]string

	// ExperienceLevels is checked in order against title+description.
	ExperienceLevels []LevelKeywords

	// YearRanges gives the acceptable candidate year span per level.
	YearRanges map[string]YearRange

	// LevelYears converts level phrases found in a candidate's free-text
	// experience field to a year estimate, checked in order.
	LevelYears []LevelYears

	// Countries is the coarse shared-region vocabulary.
	Countries []string
}

type CategoryKeywords struct {
	Category string
	Keywords []string
}

type LevelKeywords struct {
	Level    string
	Keywords []string
}

type YearRange struct {
	Min int
	Max int
}

type LevelYears struct {
	Phrase string
	Years  int
}

const defaultLevel = "mid"

// DefaultTables returns the hand-tuned scoring configuration.
func DefaultTables() Tables {
	return Tables{
		CategoryKeywords: []CategoryKeywords{
			{"frontend", []string{"frontend", "front-end", "ui", "react", "vue", "angular"}},
			{"backend", []string{"backend", "back-end", "api", "server"}},
			{"fullstack", []string{"fullstack", "full-stack", "full stack"}},
			{"data", []string{"data", "ml", "machine learning", "ai", "scientist", "analyst"}},
			{"mobile", []string{"mobile", "android", "ios", "flutter", "react native"}},
			{"devops", []string{"devops", "sre", "infrastructure", "cloud", "deployment"}},
		},
		SkillWeights: map[string]map[string]float64{
			"frontend": {
				"react": 1.5, "vue": 1.5, "angular": 1.5, "javascript": 1.8, "typescript": 1.6,
				"html": 1.2, "css": 1.2, "sass": 1.1, "bootstrap": 1.0,
			},
			"backend": {
				"python": 1.6, "java": 1.6, "node.js": 1.5, "django": 1.4, "flask": 1.3,
				"spring": 1.4, "express": 1.3, "php": 1.2, "laravel": 1.2,
			},
			"fullstack": {
				"javascript": 1.4, "python": 1.4, "react": 1.3, "node.js": 1.3,
				"django": 1.2, "mongodb": 1.1, "postgresql": 1.1,
			},
			"data": {
				"python": 1.8, "pandas": 1.6, "numpy": 1.5, "scikit-learn": 1.5,
				"tensorflow": 1.7, "pytorch": 1.7, "sql": 1.4, "r": 1.3,
			},
			"mobile": {
				"react native": 1.6, "flutter": 1.6, "swift": 1.5, "kotlin": 1.5,
				"java": 1.3, "objective-c": 1.2,
			},
			"devops": {
				"docker": 1.6, "kubernetes": 1.6, "aws": 1.5, "jenkins": 1.4,
				"terraform": 1.4, "ansible": 1.3, "linux": 1.3,
			},
		},
		Synonyms: map[string][]string{
			"react":            {"reactjs", "react.js"},
			"node":             {"nodejs", "node.js"},
			"javascript":       {"js", "ecmascript"},
			"typescript":       {"ts"},
			"python":           {"py"},
			"postgresql":       {"postgres", "psql"},
			"mongodb":          {"mongo"},
			"machine learning": {"ml", "artificial intelligence", "ai"},
		},
		ExperienceLevels: []LevelKeywords{
			{"entry", []string{"intern", "junior", "entry", "graduate", "trainee", "0-1", "0-2"}},
			{"mid", []string{"mid", "intermediate", "2-5", "3-5", "2-4"}},
			{"senior", []string{"senior", "lead", "principal", "5+", "5-8", "6+"}},
			{"expert", []string{"expert", "architect", "director", "8+", "10+", "staff"}},
		},
		YearRanges: map[string]YearRange{
			"entry":  {0, 2},
			"mid":    {2, 5},
			"senior": {5, 8},
			"expert": {8, 15},
		},
		LevelYears: []LevelYears{
			{"entry", 0},
			{"junior", 1},
			{"mid", 3},
			{"intermediate", 3},
			{"senior", 6},
			{"lead", 7},
			{"principal", 8},
			{"expert", 10},
		},
		Countries: []string{"india", "usa", "uk", "canada", "australia", "germany"},
	}
}
