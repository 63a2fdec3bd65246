package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recruai/platform-api/internal/domain/org"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

type postgresOrgRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresOrgRepo(db *pgxpool.Pool, logger logger.Logger) org.Repository {
	return &postgresOrgRepo{db: db, logger: logger}
}

const orgColumns = `
	id, name, description, website, contact_email, contact_name, location,
	company_size, industry, mission, vision, social_media_links,
	profile_image, banner_image, timezone, created_at, updated_at
`

func scanOrg(row pgx.Row) (*org.Organization, error) {
	o := &org.Organization{}
	err := row.Scan(
		&o.ID, &o.Name, &o.Description, &o.Website, &o.ContactEmail,
		&o.ContactName, &o.Location, &o.CompanySize, &o.Industry, &o.Mission,
		&o.Vision, &o.SocialMediaLinks, &o.ProfileImage, &o.BannerImage,
		&o.Timezone, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("Organization", "")
		}
		return nil, apperror.NewInternal("failed to scan organization row", err)
	}
	return o, nil
}

func (r *postgresOrgRepo) List(ctx context.Context) ([]*org.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to query organizations", err)
	}
	defer rows.Close()

	orgs := make([]*org.Organization, 0)
	for rows.Next() {
		o, err := scanOrg(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating organization rows", err)
	}
	return orgs, nil
}

func (r *postgresOrgRepo) FindByID(ctx context.Context, id int64) (*org.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE id = $1`
	return scanOrg(r.db.QueryRow(ctx, query, id))
}

func (r *postgresOrgRepo) FindByName(ctx context.Context, name string) (*org.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE name = $1`
	return scanOrg(r.db.QueryRow(ctx, query, name))
}

func (r *postgresOrgRepo) Create(ctx context.Context, o *org.Organization) error {
	query := `
		INSERT INTO organizations (
			name, description, website, contact_email, contact_name, location,
			company_size, industry, mission, vision, social_media_links,
			profile_image, banner_image, timezone
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		o.Name, o.Description, o.Website, o.ContactEmail, o.ContactName,
		o.Location, o.CompanySize, o.Industry, o.Mission, o.Vision,
		o.SocialMediaLinks, o.ProfileImage, o.BannerImage, o.Timezone,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperror.NewConflict("organization", "name", o.Name)
		}
		return apperror.NewInternal("failed to create organization", err)
	}
	return nil
}

func (r *postgresOrgRepo) Update(ctx context.Context, o *org.Organization) error {
	query := `
		UPDATE organizations SET
			name = $2, description = $3, website = $4, contact_email = $5,
			contact_name = $6, location = $7, company_size = $8, industry = $9,
			mission = $10, vision = $11, social_media_links = $12,
			profile_image = $13, banner_image = $14, timezone = $15,
			updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		o.ID, o.Name, o.Description, o.Website, o.ContactEmail, o.ContactName,
		o.Location, o.CompanySize, o.Industry, o.Mission, o.Vision,
		o.SocialMediaLinks, o.ProfileImage, o.BannerImage, o.Timezone,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperror.NewConflict("organization", "name", o.Name)
		}
		return apperror.NewInternal("failed to update organization", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("Organization", "")
	}
	return nil
}

func (r *postgresOrgRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete organization", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("Organization", "")
	}
	return nil
}
