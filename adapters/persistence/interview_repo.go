package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recruai/platform-api/internal/domain/interview"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

type postgresInterviewRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresInterviewRepo(db *pgxpool.Pool, logger logger.Logger) interview.Repository {
	return &postgresInterviewRepo{db: db, logger: logger}
}

func (r *postgresInterviewRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*interview.Interview, error) {
	query := `
		SELECT id, owner_id, title, scheduled_at, status, created_at, updated_at
		FROM interviews
		WHERE owner_id = $1
		ORDER BY scheduled_at DESC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query interviews", err)
	}
	defer rows.Close()

	interviews := make([]*interview.Interview, 0)
	for rows.Next() {
		iv := &interview.Interview{}
		err := rows.Scan(
			&iv.ID, &iv.OwnerID, &iv.Title, &iv.ScheduledAt, &iv.Status,
			&iv.CreatedAt, &iv.UpdatedAt,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan interview row", err)
		}
		interviews = append(interviews, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating interview rows", err)
	}
	return interviews, nil
}

func (r *postgresInterviewRepo) Create(ctx context.Context, iv *interview.Interview) error {
	query := `
		INSERT INTO interviews (owner_id, title, scheduled_at, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, iv.OwnerID, iv.Title, iv.ScheduledAt, iv.Status).
		Scan(&iv.ID, &iv.CreatedAt, &iv.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to create interview", err)
	}
	return nil
}

// CompleteExpired is a single idempotent UPDATE: only scheduled rows in the
// past match, so overlapping sweeps never double-count.
func (r *postgresInterviewRepo) CompleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE interviews
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND scheduled_at < $3
	`
	cmdTag, err := r.db.Exec(ctx, query,
		interview.StatusCompleted, interview.StatusScheduled, now,
	)
	if err != nil {
		return 0, apperror.NewInternal("failed to complete expired interviews", err)
	}
	return cmdTag.RowsAffected(), nil
}
