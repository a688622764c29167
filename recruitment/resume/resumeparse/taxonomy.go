package resumeparse

// Taxonomy is the fixed vocabulary the parser matches against. It is
// read-only after construction; the parser never mutates it.
type Taxonomy struct {
	// TechnicalSkills maps a category name to lowercase skill tokens.
	TechnicalSkills map[string][]string

	// TechnicalCategories fixes the iteration order over TechnicalSkills so
	// extracted skill lists are deterministic.
	TechnicalCategories []string

	// SoftSkills are matched as whole lowercase phrases.
	SoftSkills []string

	// AmbiguousSkills maps short, collision-prone tokens to context phrases
	// that must appear verbatim for the skill to count.
	AmbiguousSkills map[string][]string

	// DegreePatterns are tried in order against the education section.
	DegreePatterns []string
}

// DefaultTaxonomy returns the curated skill and degree vocabulary.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		TechnicalCategories: []string{
			"programming_languages",
			"web_technologies",
			"databases",
			"cloud_platforms",
			"tools_frameworks",
			"data_science",
		},
		TechnicalSkills: map[string][]string{
			"programming_languages": {
				"python", "java", "javascript", "typescript", "c++", "c#", "c", "go", "rust", "php",
				"ruby", "swift", "kotlin", "scala", "r", "matlab", "perl", "shell", "bash", "powershell",
			},
			"web_technologies": {
				"html", "css", "react", "angular", "vue", "node.js", "express", "django", "flask",
				"spring", "laravel", "bootstrap", "jquery", "sass", "less", "webpack", "vite",
			},
			"databases": {
				"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle", "sql server",
				"cassandra", "dynamodb", "elasticsearch", "neo4j",
			},
			"cloud_platforms": {
				"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean", "linode",
				"cloudflare", "vercel", "netlify",
			},
			"tools_frameworks": {
				"docker", "kubernetes", "jenkins", "git", "github", "gitlab", "bitbucket",
				"jira", "confluence", "slack", "trello", "asana", "terraform", "ansible",
			},
			"data_science": {
				"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
				"matplotlib", "seaborn", "plotly", "jupyter", "tableau", "power bi",
			},
		},
		SoftSkills: []string{
			"leadership", "communication", "teamwork", "problem solving", "critical thinking",
			"time management", "project management", "adaptability", "creativity", "collaboration",
			"analytical thinking", "attention to detail", "multitasking", "decision making",
			"conflict resolution", "negotiation", "presentation skills", "customer service",
		},
		AmbiguousSkills: map[string][]string{
			"go": {"golang", "go programming", "go language", "go dev"},
			"r":  {"r programming", "r language", "r statistical", "r studio", "rstudio"},
			"c":  {"c programming", "c language", "c/c++", "c++"},
		},
		DegreePatterns: []string{
			`bachelor.*?(?:computer science|engineering|mathematics|physics|chemistry)`,
			`master.*?(?:computer science|engineering|business|mba)`,
			`phd.*?(?:computer science|engineering|mathematics|physics)`,
			`b\.?(?:sc|tech|eng|com|a)`,
			`m\.?(?:sc|tech|eng|com|ba|s)`,
			`(?:bachelor|master|phd|doctorate)`,
		},
	}
}
