package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recruai/platform-api/internal/domain/presentation"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

type postgresPresentationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPresentationRepo(db *pgxpool.Pool, logger logger.Logger) presentation.Repository {
	return &postgresPresentationRepo{db: db, logger: logger}
}

func (r *postgresPresentationRepo) Create(ctx context.Context, p *presentation.Presentation) error {
	query := `
		INSERT INTO presentations (id, owner_id, title, topic, slide_count, status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.ID, p.OwnerID, p.Title, p.Topic, p.SlideCount, p.Status, p.ExpiresAt,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to create presentation", err)
	}
	return nil
}

func (r *postgresPresentationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string, slideCount int) error {
	query := `
		UPDATE presentations
		SET status = $2, slide_count = $3, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, id, status, slideCount)
	if err != nil {
		return apperror.NewInternal("failed to update presentation status", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("Presentation", id.String())
	}
	return nil
}

func (r *postgresPresentationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*presentation.Presentation, error) {
	query := `
		SELECT id, owner_id, title, topic, slide_count, status, created_at, updated_at, expires_at
		FROM presentations
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query presentations", err)
	}
	defer rows.Close()

	presentations := make([]*presentation.Presentation, 0)
	for rows.Next() {
		p := &presentation.Presentation{}
		err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Title, &p.Topic, &p.SlideCount, &p.Status,
			&p.CreatedAt, &p.UpdatedAt, &p.ExpiresAt,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan presentation row", err)
		}
		presentations = append(presentations, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating presentation rows", err)
	}
	return presentations, nil
}

func (r *postgresPresentationRepo) AddSlide(ctx context.Context, s *presentation.Slide) error {
	query := `
		INSERT INTO slides (presentation_id, slide_number, html_content, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		s.PresentationID, s.SlideNumber, s.HTMLContent, s.ImageURL,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to add slide", err)
	}
	return nil
}

func (r *postgresPresentationRepo) ListSlides(ctx context.Context, presentationID uuid.UUID, ownerID uuid.UUID) ([]*presentation.Slide, error) {
	query := `
		SELECT s.id, s.presentation_id, s.slide_number, s.html_content, s.image_url, s.created_at
		FROM slides s
		JOIN presentations p ON p.id = s.presentation_id
		WHERE s.presentation_id = $1 AND p.owner_id = $2
		ORDER BY s.slide_number ASC
	`
	rows, err := r.db.Query(ctx, query, presentationID, ownerID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query slides", err)
	}
	defer rows.Close()

	slides := make([]*presentation.Slide, 0)
	for rows.Next() {
		s := &presentation.Slide{}
		err := rows.Scan(
			&s.ID, &s.PresentationID, &s.SlideNumber, &s.HTMLContent,
			&s.ImageURL, &s.CreatedAt,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan slide row", err)
		}
		slides = append(slides, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating slide rows", err)
	}
	return slides, nil
}
