package resume

import (
	"fmt"
	"time"

	"github.com/devhire/matchbox/pkg/kernel"
)

// ExperienceKind partitions experience entries into work and internships.
type ExperienceKind string

const (
	ExperienceKindWork       ExperienceKind = "work"
	ExperienceKindInternship ExperienceKind = "internship"
)

// ContactInfo holds contact details pulled from the resume text. Every field
// is independently optional; extraction leaves a field empty rather than fail.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// IsEmpty reports whether no contact field was extracted.
func (c ContactInfo) IsEmpty() bool {
	return c == ContactInfo{}
}

// EducationEntry is one matched degree. Degree strings are the raw matched
// text, not normalized; institution/year/gpa stay empty unless a later pass
// correlates them.
type EducationEntry struct {
	Degree       string `json:"degree,omitempty"`
	Institution  string `json:"institution,omitempty"`
	Year         string `json:"year,omitempty"`
	GPA          string `json:"gpa,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
}

// ExperienceEntry is one parsed job or internship occurrence. Fields are
// filled progressively by the section state machine and frozen once the
// entry closes.
type ExperienceEntry struct {
	JobTitle         string         `json:"job_title,omitempty"`
	Company          string         `json:"company,omitempty"`
	Duration         string         `json:"duration,omitempty"`
	StartDate        string         `json:"start_date,omitempty"`
	EndDate          string         `json:"end_date,omitempty"`
	Description      string         `json:"description,omitempty"`
	Responsibilities []string       `json:"responsibilities,omitempty"`
	Kind             ExperienceKind `json:"experience_type,omitempty"`
	Location         string         `json:"location,omitempty"`
	IsCurrent        bool           `json:"is_current"`
}

// ParsedResume is the structured record assembled from one document.
type ParsedResume struct {
	ContactInfo ContactInfo `json:"contact_info"`
	Summary     string      `json:"summary,omitempty"`

	// Skills is technical plus soft, deduplicated, insertion order preserved.
	Skills          []string `json:"skills,omitempty"`
	TechnicalSkills []string `json:"technical_skills,omitempty"`
	SoftSkills      []string `json:"soft_skills,omitempty"`

	// AllExperience is the union of the two partitions, in emission order.
	AllExperience        []ExperienceEntry `json:"all_experience,omitempty"`
	WorkExperience       []ExperienceEntry `json:"work_experience,omitempty"`
	InternshipExperience []ExperienceEntry `json:"internship_experience,omitempty"`

	Education []EducationEntry `json:"education,omitempty"`

	YearsOfExperience     int `json:"years_of_experience"`
	TotalInternshipMonths int `json:"total_internship_months"`
}

// Resume is the stored aggregate: a parsed record plus ownership and file
// metadata.
type Resume struct {
	ID        kernel.ResumeID  `db:"id" json:"id"`
	ProfileID kernel.ProfileID `db:"profile_id" json:"profile_id"`

	Parsed ParsedResume `db:"parsed" json:"parsed"`

	FilePath  string    `db:"file_path" json:"file_path"`
	FileName  string    `db:"file_name" json:"file_name"`
	FileType  string    `db:"file_type" json:"file_type"`
	ParsedAt  time.Time `db:"parsed_at" json:"parsed_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// HasWorkExperience checks if any work entries were extracted.
func (p *ParsedResume) HasWorkExperience() bool {
	return len(p.WorkExperience) > 0
}

// HasEducation checks if any education entries were extracted.
func (p *ParsedResume) HasEducation() bool {
	return len(p.Education) > 0
}

// HasSkill checks for a skill by exact name.
func (p *ParsedResume) HasSkill(name string) bool {
	for _, s := range p.Skills {
		if s == name {
			return true
		}
	}
	return false
}

// IsEmpty reports whether extraction produced nothing at all, the shape
// returned for unreadable documents.
func (p *ParsedResume) IsEmpty() bool {
	return p.ContactInfo.IsEmpty() &&
		p.Summary == "" &&
		len(p.Skills) == 0 &&
		len(p.AllExperience) == 0 &&
		len(p.Education) == 0
}

// YearsAsExperienceText renders a year count in the free-text form profile
// experience fields use, e.g. "5 years".
func YearsAsExperienceText(years int) string {
	if years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", years)
}

// CurrentPosition returns the first entry still marked as ongoing, if any.
func (p *ParsedResume) CurrentPosition() *ExperienceEntry {
	for i := range p.AllExperience {
		if p.AllExperience[i].IsCurrent {
			return &p.AllExperience[i]
		}
	}
	return nil
}
