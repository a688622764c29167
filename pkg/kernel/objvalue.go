package kernel

import (
	"encoding/json"
	"strings"
)

type JobTitle string

type JobDescription string

type JobRequirement string

type JobBenefit string

// JobType describes the working arrangement of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeRemote     JobType = "remote"
	JobTypeInternship JobType = "internship"
)

// IsRemote reports whether the job type denotes remote work.
func (t JobType) IsRemote() bool {
	return strings.EqualFold(string(t), string(JobTypeRemote))
}

type BucketURL string

// StringList is a []string that tolerates malformed JSON input: a scalar or
// otherwise invalid value decodes to an empty list instead of failing the
// enclosing document.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		*l = StringList{}
		return nil
	}
	*l = items
	return nil
}

// RequirementList is the requirement-token analog of StringList.
type RequirementList []JobRequirement

func (l *RequirementList) UnmarshalJSON(data []byte) error {
	var items []JobRequirement
	if err := json.Unmarshal(data, &items); err != nil {
		*l = RequirementList{}
		return nil
	}
	*l = items
	return nil
}

// Strings returns the requirements as plain strings.
func (l RequirementList) Strings() []string {
	out := make([]string, len(l))
	for i, r := range l {
		out[i] = string(r)
	}
	return out
}

// PaginationOptions controls list queries.
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize clamps pagination to sane defaults.
func (p PaginationOptions) Normalize() PaginationOptions {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		p.PageSize = 20
	}
	return p
}

// Offset returns the row offset for the current page.
func (p PaginationOptions) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Paginated wraps a page of results with totals.
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated builds a Paginated page from items and a total count.
func NewPaginated[T any](items []T, total int64, opts PaginationOptions) *Paginated[T] {
	opts = opts.Normalize()
	pages := int(total) / opts.PageSize
	if int(total)%opts.PageSize != 0 {
		pages++
	}
	return &Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		TotalPages: pages,
	}
}
