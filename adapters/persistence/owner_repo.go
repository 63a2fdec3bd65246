package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recruai/platform-api/internal/domain/owner"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

const uniqueViolationCode = "23505"

type postgresOwnerRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresOwnerRepo(db *pgxpool.Pool, logger logger.Logger) owner.Repository {
	return &postgresOwnerRepo{db: db, logger: logger}
}

const ownerColumns = `
	id, email, username, name, password_hash, role, plan, profile_picture,
	timezone, phone, location, linkedin_url, github_url, website_url, summary,
	created_at, updated_at
`

func scanOwner(row pgx.Row) (*owner.Owner, error) {
	o := &owner.Owner{}
	err := row.Scan(
		&o.ID, &o.Email, &o.Username, &o.Name, &o.PasswordHash, &o.Role,
		&o.Plan, &o.ProfilePicture, &o.Timezone, &o.Phone, &o.Location,
		&o.LinkedinURL, &o.GithubURL, &o.WebsiteURL, &o.Summary,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("User", "")
		}
		return nil, apperror.NewInternal("failed to scan user row", err)
	}
	return o, nil
}

func (r *postgresOwnerRepo) FindByID(ctx context.Context, id uuid.UUID) (*owner.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM users WHERE id = $1`
	return scanOwner(r.db.QueryRow(ctx, query, id))
}

func (r *postgresOwnerRepo) FindByEmail(ctx context.Context, email string) (*owner.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM users WHERE email = $1`
	return scanOwner(r.db.QueryRow(ctx, query, email))
}

func (r *postgresOwnerRepo) FindByUsername(ctx context.Context, username string) (*owner.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM users WHERE username = $1`
	return scanOwner(r.db.QueryRow(ctx, query, username))
}

func (r *postgresOwnerRepo) Create(ctx context.Context, o *owner.Owner) error {
	query := `
		INSERT INTO users (id, email, username, name, password_hash, role, plan, timezone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		o.ID, o.Email, o.Username, o.Name, o.PasswordHash, o.Role, o.Plan, o.Timezone,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			// Both email and username carry unique constraints; report the
			// one that actually fired.
			if pgErr.ConstraintName == "users_username_key" && o.Username != nil {
				return apperror.NewConflict("user", "username", *o.Username)
			}
			return apperror.NewConflict("user", "email", o.Email)
		}
		return apperror.NewInternal("failed to create user", err)
	}
	return nil
}

func (r *postgresOwnerRepo) Update(ctx context.Context, o *owner.Owner) error {
	query := `
		UPDATE users SET
			email = $2, username = $3, name = $4, password_hash = $5, role = $6,
			plan = $7, profile_picture = $8, timezone = $9, phone = $10,
			location = $11, linkedin_url = $12, github_url = $13,
			website_url = $14, summary = $15, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		o.ID, o.Email, o.Username, o.Name, o.PasswordHash, o.Role, o.Plan,
		o.ProfilePicture, o.Timezone, o.Phone, o.Location, o.LinkedinURL,
		o.GithubURL, o.WebsiteURL, o.Summary,
	)
	if err != nil {
		return apperror.NewInternal("failed to update user", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("User", o.ID.String())
	}
	return nil
}
