package persistence

import (
	"context"
	"errors"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recruai/platform-api/internal/domain/section"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

var psqlSection = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// postgresSectionRepo persists every section kind through one schema-driven
// implementation: column lists, table names, ordering and tag scoping all
// come from the Schema descriptor, never from per-kind code.
type postgresSectionRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSectionRepo(db *pgxpool.Pool, logger logger.Logger) section.Repository {
	return &postgresSectionRepo{db: db, logger: logger}
}

func selectColumns(schema *section.Schema) []string {
	cols := make([]string, 0, len(schema.Fields)+3)
	cols = append(cols, "id", "owner_id", "created_at")
	for _, f := range schema.Fields {
		cols = append(cols, f.Column)
	}
	return cols
}

// ownerScope is the WHERE clause every query carries: owner first, then the
// tag when the schema shares its table with a sibling resource.
func ownerScope(schema *section.Schema, ownerID uuid.UUID) sq.Eq {
	scope := sq.Eq{"owner_id": ownerID}
	if schema.Tag != nil {
		scope[schema.Tag.Column] = schema.Tag.Value
	}
	return scope
}

func scanSectionItem(schema *section.Schema, row pgx.Row) (*section.Item, error) {
	item := &section.Item{Values: make(map[string]any)}

	holders := make([]any, 0, len(schema.Fields)+3)
	holders = append(holders, &item.ID, &item.OwnerID, &item.CreatedAt)

	texts := make([]*string, len(schema.Fields))
	dates := make([]*time.Time, len(schema.Fields))
	bools := make([]*bool, len(schema.Fields))
	ints := make([]*int64, len(schema.Fields))

	for i, f := range schema.Fields {
		switch f.Type {
		case section.Date:
			holders = append(holders, &dates[i])
		case section.Bool:
			holders = append(holders, &bools[i])
		case section.Int:
			holders = append(holders, &ints[i])
		default:
			holders = append(holders, &texts[i])
		}
	}

	if err := row.Scan(holders...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, section.ErrItemNotFound
		}
		return nil, apperror.NewInternal("failed to scan "+schema.Resource+" row", err)
	}

	for i, f := range schema.Fields {
		switch f.Type {
		case section.Date:
			item.Values[f.Column] = dates[i]
		case section.Bool:
			item.Values[f.Column] = bools[i] != nil && *bools[i]
		case section.Int:
			item.Values[f.Column] = ints[i]
		default:
			item.Values[f.Column] = texts[i]
		}
	}
	return item, nil
}

func scanSectionItems(schema *section.Schema, rows pgx.Rows) ([]*section.Item, error) {
	defer rows.Close()
	items := make([]*section.Item, 0)
	for rows.Next() {
		item, err := scanSectionItem(schema, rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating "+schema.Resource+" rows", err)
	}
	return items, nil
}

func (r *postgresSectionRepo) ListByOwner(ctx context.Context, schema *section.Schema, ownerID uuid.UUID) ([]*section.Item, error) {
	builder := psqlSection.Select(selectColumns(schema)...).
		From(schema.Table).
		Where(ownerScope(schema, ownerID))
	if schema.OrderBy != "" {
		builder = builder.OrderBy(schema.OrderBy)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list "+schema.Resource+" query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query "+schema.Resource, err)
	}
	return scanSectionItems(schema, rows)
}

func (r *postgresSectionRepo) FindByID(ctx context.Context, schema *section.Schema, id int64, ownerID uuid.UUID) (*section.Item, error) {
	scope := ownerScope(schema, ownerID)
	scope["id"] = id

	sql, args, err := psqlSection.Select(selectColumns(schema)...).
		From(schema.Table).
		Where(scope).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build find "+schema.Resource+" query", err)
	}

	item, err := scanSectionItem(schema, r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, section.ErrItemNotFound) {
			return nil, apperror.NewNotFound(schema.Label, strconv.FormatInt(id, 10))
		}
		return nil, err
	}
	return item, nil
}

func insertBuilder(schema *section.Schema, item *section.Item) sq.InsertBuilder {
	cols := make([]string, 0, len(schema.Fields)+2)
	vals := make([]any, 0, len(schema.Fields)+2)
	cols = append(cols, "owner_id")
	vals = append(vals, item.OwnerID)
	if schema.Tag != nil {
		cols = append(cols, schema.Tag.Column)
		vals = append(vals, schema.Tag.Value)
	}
	for _, f := range schema.Fields {
		cols = append(cols, f.Column)
		vals = append(vals, item.Values[f.Column])
	}
	return psqlSection.Insert(schema.Table).
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING id, created_at")
}

func (r *postgresSectionRepo) Insert(ctx context.Context, schema *section.Schema, item *section.Item) error {
	sql, args, err := insertBuilder(schema, item).ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert "+schema.Resource+" query", err)
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&item.ID, &item.CreatedAt); err != nil {
		return apperror.NewInternal("failed to insert "+schema.Resource, err)
	}
	return nil
}

func (r *postgresSectionRepo) Update(ctx context.Context, schema *section.Schema, item *section.Item) error {
	scope := ownerScope(schema, item.OwnerID)
	scope["id"] = item.ID

	builder := psqlSection.Update(schema.Table).Where(scope)
	for _, f := range schema.Fields {
		builder = builder.Set(f.Column, item.Values[f.Column])
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build update "+schema.Resource+" query", err)
	}
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewInternal("failed to update "+schema.Resource, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound(schema.Label, strconv.FormatInt(item.ID, 10))
	}
	return nil
}

func (r *postgresSectionRepo) Delete(ctx context.Context, schema *section.Schema, id int64, ownerID uuid.UUID) error {
	scope := ownerScope(schema, ownerID)
	scope["id"] = id

	sql, args, err := psqlSection.Delete(schema.Table).Where(scope).ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build delete "+schema.Resource+" query", err)
	}
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewInternal("failed to delete "+schema.Resource, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound(schema.Label, strconv.FormatInt(id, 10))
	}
	return nil
}

func (r *postgresSectionRepo) ReplaceByOwner(ctx context.Context, schema *section.Schema, ownerID uuid.UUID, items []*section.Item) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin replace transaction", err)
	}
	defer tx.Rollback(ctx)

	sql, args, err := psqlSection.Delete(schema.Table).
		Where(ownerScope(schema, ownerID)).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build clear "+schema.Resource+" query", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to clear "+schema.Resource, err)
	}

	for _, item := range items {
		sql, args, err := insertBuilder(schema, item).ToSql()
		if err != nil {
			return apperror.NewInternal("failed to build insert "+schema.Resource+" query", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&item.ID, &item.CreatedAt); err != nil {
			return apperror.NewInternal("failed to insert "+schema.Resource, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit replace transaction", err)
	}
	return nil
}
