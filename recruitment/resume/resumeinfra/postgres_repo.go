package resumeinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/recruitment/resume"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresResumeRepository implements resume.Repository using PostgreSQL
type PostgresResumeRepository struct {
	db *sqlx.DB
}

// NewPostgresResumeRepository creates a new PostgreSQL resume repository
func NewPostgresResumeRepository(db *sqlx.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

// resumeModel stores the parsed record as a single JSONB document; the
// extraction heuristics evolve too often to justify a column per field.
type resumeModel struct {
	ID        string          `db:"id"`
	ProfileID string          `db:"profile_id"`
	Parsed    json.RawMessage `db:"parsed"`
	FilePath  string          `db:"file_path"`
	FileName  sql.NullString  `db:"file_name"`
	FileType  string          `db:"file_type"`
	ParsedAt  time.Time       `db:"parsed_at"`
	CreatedAt time.Time       `db:"created_at"`
}

func (m *resumeModel) toEntity() (*resume.Resume, error) {
	var parsed resume.ParsedResume
	if len(m.Parsed) > 0 {
		if err := json.Unmarshal(m.Parsed, &parsed); err != nil {
			return nil, fmt.Errorf("failed to unmarshal parsed resume: %w", err)
		}
	}

	return &resume.Resume{
		ID:        kernel.ResumeID(m.ID),
		ProfileID: kernel.ProfileID(m.ProfileID),
		Parsed:    parsed,
		FilePath:  m.FilePath,
		FileName:  m.FileName.String,
		FileType:  m.FileType,
		ParsedAt:  m.ParsedAt,
		CreatedAt: m.CreatedAt,
	}, nil
}

func fromEntity(r *resume.Resume) (*resumeModel, error) {
	parsed, err := json.Marshal(r.Parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal parsed resume: %w", err)
	}

	return &resumeModel{
		ID:        string(r.ID),
		ProfileID: string(r.ProfileID),
		Parsed:    parsed,
		FilePath:  r.FilePath,
		FileName:  sql.NullString{String: r.FileName, Valid: r.FileName != ""},
		FileType:  r.FileType,
		ParsedAt:  r.ParsedAt,
		CreatedAt: r.CreatedAt,
	}, nil
}

const resumeColumns = `
	id, profile_id, parsed, file_path, file_name, file_type, parsed_at, created_at
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create stores a parsed resume
func (r *PostgresResumeRepository) Create(ctx context.Context, entity *resume.Resume) error {
	model, err := fromEntity(entity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO resumes (
			id, profile_id, parsed, file_path, file_name, file_type, parsed_at, created_at
		) VALUES (
			:id, :profile_id, :parsed, :file_path, :file_name, :file_type, :parsed_at, :created_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return fmt.Errorf("resume already exists: %w", err)
			}
		}
		return fmt.Errorf("failed to create resume: %w", err)
	}

	return nil
}

// GetByID retrieves a resume by ID
func (r *PostgresResumeRepository) GetByID(ctx context.Context, id kernel.ResumeID) (*resume.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`

	var model resumeModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, resume.ErrResumeNotFound()
		}
		return nil, fmt.Errorf("failed to get resume by id: %w", err)
	}

	return model.toEntity()
}

// GetByProfileID retrieves the latest resume for a profile
func (r *PostgresResumeRepository) GetByProfileID(ctx context.Context, profileID kernel.ProfileID) (*resume.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE profile_id = $1 ORDER BY created_at DESC LIMIT 1`

	var model resumeModel
	err := r.db.GetContext(ctx, &model, query, string(profileID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, resume.ErrResumeNotFound()
		}
		return nil, fmt.Errorf("failed to get resume by profile: %w", err)
	}

	return model.toEntity()
}

// ListByProfileID retrieves all resumes for a profile, newest first
func (r *PostgresResumeRepository) ListByProfileID(ctx context.Context, profileID kernel.ProfileID) ([]*resume.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE profile_id = $1 ORDER BY created_at DESC`

	var models []resumeModel
	if err := r.db.SelectContext(ctx, &models, query, string(profileID)); err != nil {
		return nil, fmt.Errorf("failed to list resumes by profile: %w", err)
	}

	entities := make([]*resume.Resume, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// Delete removes a resume
func (r *PostgresResumeRepository) Delete(ctx context.Context, id kernel.ResumeID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return resume.ErrResumeNotFound()
	}

	return nil
}

// List retrieves all resumes with pagination
func (r *PostgresResumeRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[resume.Resume], error) {
	pagination = pagination.Normalize()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM resumes`); err != nil {
		return nil, fmt.Errorf("failed to count resumes: %w", err)
	}

	query := `SELECT ` + resumeColumns + ` FROM resumes ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	var models []resumeModel
	if err := r.db.SelectContext(ctx, &models, query, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	entities := make([]resume.Resume, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return kernel.NewPaginated(entities, total, pagination), nil
}
