package persistence

import (
	"context"
	"errors"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recruai/platform-api/internal/domain/jobpost"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

var psqlJobPost = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresJobPostRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresJobPostRepo(db *pgxpool.Pool, logger logger.Logger) jobpost.Repository {
	return &postgresJobPostRepo{db: db, logger: logger}
}

var jobPostColumns = []string{
	"id", "organization_id", "title", "description", "location",
	"employment_type", "category", "salary_min", "salary_max",
	"salary_currency", "requirements", "application_deadline", "status",
	"created_at", "updated_at",
}

func scanJobPost(row pgx.Row) (*jobpost.JobPost, error) {
	p := &jobpost.JobPost{}
	err := row.Scan(
		&p.ID, &p.OrganizationID, &p.Title, &p.Description, &p.Location,
		&p.EmploymentType, &p.Category, &p.SalaryMin, &p.SalaryMax,
		&p.SalaryCurrency, &p.Requirements, &p.ApplicationDeadline, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("Job post", "")
		}
		return nil, apperror.NewInternal("failed to scan job post row", err)
	}
	return p, nil
}

func (r *postgresJobPostRepo) List(ctx context.Context, f jobpost.Filter) ([]*jobpost.JobPost, error) {
	builder := psqlJobPost.Select(jobPostColumns...).
		From("job_posts").
		OrderBy("created_at DESC")

	if f.Status != "" {
		builder = builder.Where(sq.Eq{"status": f.Status})
	}
	if f.Category != "" {
		builder = builder.Where(sq.Eq{"category": f.Category})
	}
	if f.EmploymentType != "" {
		builder = builder.Where(sq.Eq{"employment_type": f.EmploymentType})
	}
	if f.Location != "" {
		builder = builder.Where(sq.ILike{"location": "%" + f.Location + "%"})
	}
	if f.OrganizationID != 0 {
		builder = builder.Where(sq.Eq{"organization_id": f.OrganizationID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list job posts query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query job posts", err)
	}
	defer rows.Close()

	posts := make([]*jobpost.JobPost, 0)
	for rows.Next() {
		p, err := scanJobPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating job post rows", err)
	}
	return posts, nil
}

func (r *postgresJobPostRepo) FindByID(ctx context.Context, id int64) (*jobpost.JobPost, error) {
	sql, args, err := psqlJobPost.Select(jobPostColumns...).
		From("job_posts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build find job post query", err)
	}
	p, err := scanJobPost(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("Job post", strconv.FormatInt(id, 10))
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresJobPostRepo) Create(ctx context.Context, p *jobpost.JobPost) error {
	query := `
		INSERT INTO job_posts (
			organization_id, title, description, location, employment_type,
			category, salary_min, salary_max, salary_currency, requirements,
			application_deadline, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.OrganizationID, p.Title, p.Description, p.Location, p.EmploymentType,
		p.Category, p.SalaryMin, p.SalaryMax, p.SalaryCurrency, p.Requirements,
		p.ApplicationDeadline, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to create job post", err)
	}
	return nil
}

func (r *postgresJobPostRepo) Update(ctx context.Context, p *jobpost.JobPost) error {
	query := `
		UPDATE job_posts SET
			title = $2, description = $3, location = $4, employment_type = $5,
			category = $6, salary_min = $7, salary_max = $8,
			salary_currency = $9, requirements = $10,
			application_deadline = $11, status = $12, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Location, p.EmploymentType, p.Category,
		p.SalaryMin, p.SalaryMax, p.SalaryCurrency, p.Requirements,
		p.ApplicationDeadline, p.Status,
	)
	if err != nil {
		return apperror.NewInternal("failed to update job post", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("Job post", strconv.FormatInt(p.ID, 10))
	}
	return nil
}

func (r *postgresJobPostRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM job_posts WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete job post", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("Job post", strconv.FormatInt(id, 10))
	}
	return nil
}
