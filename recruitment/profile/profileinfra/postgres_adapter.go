package profileinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/recruitment/profile"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresProfileRepository implements profile.Repository using PostgreSQL
type PostgresProfileRepository struct {
	db *sqlx.DB
}

// NewPostgresProfileRepository creates a new PostgreSQL profile repository
func NewPostgresProfileRepository(db *sqlx.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type profileModel struct {
	ID             string          `db:"id"`
	Username       string          `db:"username"`
	FullName       sql.NullString  `db:"full_name"`
	Phone          sql.NullString  `db:"phone"`
	Location       sql.NullString  `db:"location"`
	Title          sql.NullString  `db:"title"`
	Experience     sql.NullString  `db:"experience"`
	ExpectedSalary *float64        `db:"expected_salary"`
	Summary        sql.NullString  `db:"summary"`
	GitHubURL      sql.NullString  `db:"github_url"`
	LinkedInURL    sql.NullString  `db:"linkedin_url"`
	Skills         json.RawMessage `db:"skills"`
	ResumeID       sql.NullString  `db:"resume_id"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *profileModel) toEntity() (*profile.Profile, error) {
	var skills kernel.StringList
	if len(m.Skills) > 0 {
		if err := json.Unmarshal(m.Skills, &skills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
		}
	}

	return &profile.Profile{
		ID:             kernel.ProfileID(m.ID),
		Username:       m.Username,
		FullName:       m.FullName.String,
		Phone:          m.Phone.String,
		Location:       m.Location.String,
		Title:          m.Title.String,
		Experience:     m.Experience.String,
		ExpectedSalary: m.ExpectedSalary,
		Summary:        m.Summary.String,
		GitHubURL:      m.GitHubURL.String,
		LinkedInURL:    m.LinkedInURL.String,
		Skills:         skills,
		ResumeID:       kernel.ResumeID(m.ResumeID.String),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(p *profile.Profile) (*profileModel, error) {
	skills, err := json.Marshal(p.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	return &profileModel{
		ID:             string(p.ID),
		Username:       p.Username,
		FullName:       sql.NullString{String: p.FullName, Valid: p.FullName != ""},
		Phone:          sql.NullString{String: p.Phone, Valid: p.Phone != ""},
		Location:       sql.NullString{String: p.Location, Valid: p.Location != ""},
		Title:          sql.NullString{String: p.Title, Valid: p.Title != ""},
		Experience:     sql.NullString{String: p.Experience, Valid: p.Experience != ""},
		ExpectedSalary: p.ExpectedSalary,
		Summary:        sql.NullString{String: p.Summary, Valid: p.Summary != ""},
		GitHubURL:      sql.NullString{String: p.GitHubURL, Valid: p.GitHubURL != ""},
		LinkedInURL:    sql.NullString{String: p.LinkedInURL, Valid: p.LinkedInURL != ""},
		Skills:         skills,
		ResumeID:       sql.NullString{String: p.ResumeID.String(), Valid: !p.ResumeID.IsEmpty()},
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}, nil
}

const profileColumns = `
	id, username, full_name, phone, location, title, experience,
	expected_salary, summary, github_url, linkedin_url, skills, resume_id,
	created_at, updated_at
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new profile
func (r *PostgresProfileRepository) Create(ctx context.Context, entity *profile.Profile) error {
	model, err := fromEntity(entity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO profiles (
			id, username, full_name, phone, location, title, experience,
			expected_salary, summary, github_url, linkedin_url, skills, resume_id,
			created_at, updated_at
		) VALUES (
			:id, :username, :full_name, :phone, :location, :title, :experience,
			:expected_salary, :summary, :github_url, :linkedin_url, :skills, :resume_id,
			:created_at, :updated_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return profile.ErrProfileAlreadyExists()
			}
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// Update updates an existing profile
func (r *PostgresProfileRepository) Update(ctx context.Context, id kernel.ProfileID, entity *profile.Profile) error {
	model, err := fromEntity(entity)
	if err != nil {
		return err
	}
	model.ID = string(id)

	query := `
		UPDATE profiles SET
			full_name = :full_name,
			phone = :phone,
			location = :location,
			title = :title,
			experience = :experience,
			expected_salary = :expected_salary,
			summary = :summary,
			github_url = :github_url,
			linkedin_url = :linkedin_url,
			skills = :skills,
			resume_id = :resume_id,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return profile.ErrProfileNotFound()
	}

	return nil
}

// GetByID retrieves a profile by ID
func (r *PostgresProfileRepository) GetByID(ctx context.Context, id kernel.ProfileID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	var model profileModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrProfileNotFound()
		}
		return nil, fmt.Errorf("failed to get profile by id: %w", err)
	}

	return model.toEntity()
}

// GetByUsername retrieves a profile by username
func (r *PostgresProfileRepository) GetByUsername(ctx context.Context, username string) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = $1`

	var model profileModel
	err := r.db.GetContext(ctx, &model, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrProfileNotFound()
		}
		return nil, fmt.Errorf("failed to get profile by username: %w", err)
	}

	return model.toEntity()
}

// Delete deletes a profile by ID
func (r *PostgresProfileRepository) Delete(ctx context.Context, id kernel.ProfileID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return profile.ErrProfileNotFound()
	}

	return nil
}

// List retrieves profiles with pagination
func (r *PostgresProfileRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[profile.Profile], error) {
	pagination = pagination.Normalize()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM profiles`); err != nil {
		return nil, fmt.Errorf("failed to count profiles: %w", err)
	}

	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	var models []profileModel
	if err := r.db.SelectContext(ctx, &models, query, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	entities := make([]profile.Profile, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return kernel.NewPaginated(entities, total, pagination), nil
}

// Exists checks if a profile exists by ID
func (r *PostgresProfileRepository) Exists(ctx context.Context, id kernel.ProfileID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM profiles WHERE id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, string(id)); err != nil {
		return false, fmt.Errorf("failed to check profile existence: %w", err)
	}
	return exists, nil
}
