package profile

import (
	"strings"
	"time"

	"github.com/devhire/matchbox/pkg/kernel"
)

// Profile is a candidate's developer profile: the free-text and structured
// fields the matching engine scores against job postings.
type Profile struct {
	ID             kernel.ProfileID  `db:"id" json:"id"`
	Username       string            `db:"username" json:"username"`
	FullName       string            `db:"full_name" json:"full_name,omitempty"`
	Phone          string            `db:"phone" json:"phone,omitempty"`
	Location       string            `db:"location" json:"location,omitempty"`
	Title          string            `db:"title" json:"title,omitempty"`
	Experience     string            `db:"experience" json:"experience,omitempty"`
	ExpectedSalary *float64          `db:"expected_salary" json:"expected_salary,omitempty"`
	Summary        string            `db:"summary" json:"summary,omitempty"`
	GitHubURL      string            `db:"github_url" json:"github_url,omitempty"`
	LinkedInURL    string            `db:"linkedin_url" json:"linkedin_url,omitempty"`
	Skills         kernel.StringList `db:"skills" json:"skills"`
	ResumeID       kernel.ResumeID   `db:"resume_id" json:"resume_id,omitempty"`
	CreatedAt      time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time         `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// HasSkills reports whether the profile carries at least one skill.
func (p *Profile) HasSkills() bool {
	return len(p.Skills) > 0
}

// HasSkill checks for a skill, case-insensitively.
func (p *Profile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

// HasResume reports whether a parsed resume is linked.
func (p *Profile) HasResume() bool {
	return !p.ResumeID.IsEmpty()
}

// IsMatchable reports whether the profile carries enough data for the
// matching engine to produce a non-degenerate score.
func (p *Profile) IsMatchable() bool {
	return p.HasSkills() || p.Experience != "" || p.Location != ""
}

// MergeSkills adds skills that are not already present, case-insensitively,
// preserving the order of both lists.
func (p *Profile) MergeSkills(skills []string) {
	for _, skill := range skills {
		if skill != "" && !p.HasSkill(skill) {
			p.Skills = append(p.Skills, skill)
		}
	}
}
