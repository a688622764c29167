package applicationinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/devhire/matchbox/pkg/errx"
	"github.com/devhire/matchbox/pkg/kernel"
	"github.com/devhire/matchbox/recruitment/application"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ======================================================================
// Database Model
// ======================================================================

type applicationModel struct {
	ID            string         `db:"id"`
	JobID         string         `db:"job_id"`
	ProfileID     string         `db:"profile_id"`
	Status        string         `db:"status"`
	CoverLetter   sql.NullString `db:"cover_letter"`
	Notes         sql.NullString `db:"notes"`
	MatchScore    *float64       `db:"match_score"`
	MatchCategory sql.NullString `db:"match_category"`
	AppliedAt     time.Time      `db:"applied_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

const applicationColumns = `id, job_id, profile_id, status, cover_letter, notes, match_score, match_category, applied_at, updated_at`

func fromApplication(a *application.Application) *applicationModel {
	return &applicationModel{
		ID:            a.ID.String(),
		JobID:         a.JobID.String(),
		ProfileID:     a.ProfileID.String(),
		Status:        string(a.Status),
		CoverLetter:   toNullString(a.CoverLetter),
		Notes:         toNullString(a.Notes),
		MatchScore:    a.MatchScore,
		MatchCategory: toNullString(a.MatchCategory),
		AppliedAt:     a.AppliedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m *applicationModel) toEntity() *application.Application {
	return &application.Application{
		ID:            kernel.NewApplicationID(m.ID),
		JobID:         kernel.NewJobID(m.JobID),
		ProfileID:     kernel.NewProfileID(m.ProfileID),
		Status:        application.ApplicationStatus(m.Status),
		CoverLetter:   m.CoverLetter.String,
		Notes:         m.Notes.String,
		MatchScore:    m.MatchScore,
		MatchCategory: m.MatchCategory.String,
		AppliedAt:     m.AppliedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ======================================================================
// Repository Implementation
// ======================================================================

type PostgresApplicationRepository struct {
	db *sqlx.DB
}

func NewPostgresApplicationRepository(db *sqlx.DB) application.Repository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	model := fromApplication(app)

	query := `
		INSERT INTO applications (` + applicationColumns + `)
		VALUES (:id, :job_id, :profile_id, :status, :cover_letter, :notes, :match_score, :match_category, :applied_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return application.ErrAlreadyApplied().
				WithDetail("job_id", app.JobID.String()).
				WithDetail("profile_id", app.ProfileID.String())
		}
		return errx.Wrap(err, "failed to insert application", errx.TypeInternal)
	}

	return nil
}

func (r *PostgresApplicationRepository) Update(ctx context.Context, app *application.Application) error {
	model := fromApplication(app)

	query := `
		UPDATE applications
		SET status = :status,
		    cover_letter = :cover_letter,
		    notes = :notes,
		    match_score = :match_score,
		    match_category = :match_category,
		    updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return errx.Wrap(err, "failed to update application", errx.TypeInternal)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to check update result", errx.TypeInternal)
	}
	if rows == 0 {
		return application.ErrApplicationNotFound().WithDetail("id", app.ID.String())
	}

	return nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	var model applicationModel

	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrApplicationNotFound().WithDetail("id", id.String())
		}
		return nil, errx.Wrap(err, "failed to get application", errx.TypeInternal)
	}

	return model.toEntity(), nil
}

func (r *PostgresApplicationRepository) GetByJobAndProfile(ctx context.Context, jobID kernel.JobID, profileID kernel.ProfileID) (*application.Application, error) {
	var model applicationModel

	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1 AND profile_id = $2`

	err := r.db.GetContext(ctx, &model, query, jobID.String(), profileID.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrApplicationNotFound().
				WithDetail("job_id", jobID.String()).
				WithDetail("profile_id", profileID.String())
		}
		return nil, errx.Wrap(err, "failed to get application", errx.TypeInternal)
	}

	return model.toEntity(), nil
}

func (r *PostgresApplicationRepository) Delete(ctx context.Context, id kernel.ApplicationID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id.String())
	if err != nil {
		return errx.Wrap(err, "failed to delete application", errx.TypeInternal)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to check delete result", errx.TypeInternal)
	}
	if rows == 0 {
		return application.ErrApplicationNotFound().WithDetail("id", id.String())
	}

	return nil
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID.String()); err != nil {
		return nil, errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE job_id = $1
		ORDER BY match_score DESC NULLS LAST, applied_at ASC
		LIMIT $2 OFFSET $3`

	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query, jobID.String(), pagination.PageSize, pagination.Offset()); err != nil {
		return nil, errx.Wrap(err, "failed to list applications by job", errx.TypeInternal)
	}

	return paginate(models, total, pagination), nil
}

func (r *PostgresApplicationRepository) ListByProfile(ctx context.Context, profileID kernel.ProfileID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM applications WHERE profile_id = $1`, profileID.String()); err != nil {
		return nil, errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE profile_id = $1
		ORDER BY applied_at DESC
		LIMIT $2 OFFSET $3`

	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query, profileID.String(), pagination.PageSize, pagination.Offset()); err != nil {
		return nil, errx.Wrap(err, "failed to list applications by profile", errx.TypeInternal)
	}

	return paginate(models, total, pagination), nil
}

func (r *PostgresApplicationRepository) CountByJob(ctx context.Context, jobID kernel.JobID) (int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID.String()); err != nil {
		return 0, errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}
	return total, nil
}

func paginate(models []applicationModel, total int64, pagination kernel.PaginationOptions) *kernel.Paginated[application.Application] {
	entities := make([]application.Application, 0, len(models))
	for i := range models {
		entities = append(entities, *models[i].toEntity())
	}
	return kernel.NewPaginated(entities, total, pagination)
}
