package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/caseboard/caseboard/internal/models"
)

// EntityStore handles entity CRUD and per-entity relationship listings.
type EntityStore struct {
	Base
}

// NewEntityStore creates an EntityStore with the given shared base.
func NewEntityStore(base Base) *EntityStore {
	return &EntityStore{Base: base}
}

// ListEntities returns entities with optional type filter and title search,
// newest first. The second return reports whether more rows exist past the
// requested page.
func (s *EntityStore) ListEntities(
	ctx context.Context,
	entityTypeID int64,
	search string,
	limit, offset int,
) ([]models.Entity, bool, error) {
	if limit <= 0 {
		limit = 50
	}

	if limit > maxListLimit {
		limit = maxListLimit
	}

	if offset < 0 {
		offset = 0
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	where := " WHERE TRUE"
	filterArgs := make([]any, 0, 2)
	argIdx := 1

	if entityTypeID > 0 {
		where += fmt.Sprintf(" AND entity_type_id = $%d", argIdx)
		filterArgs = append(filterArgs, entityTypeID)
		argIdx++
	}

	if search != "" {
		where += fmt.Sprintf(" AND title ILIKE $%d", argIdx)
		filterArgs = append(filterArgs, "%"+search+"%")
		argIdx++
	}

	query := "SELECT " + entityColumns + " FROM entities" + where
	query += " ORDER BY created_at DESC, id DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args := make([]any, 0, len(filterArgs)+2)
	args = append(args, filterArgs...)
	args = append(args, limit+1, offset)

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("querying entities: %w", err)
	}
	defer rows.Close()

	entities, err := collectEntities(rows)
	if err != nil {
		return nil, false, err
	}

	hasMore := len(entities) > limit
	if hasMore {
		entities = entities[:limit]
	}

	return entities, hasMore, nil
}

// GetEntity retrieves a single entity by ID.
func (s *EntityStore) GetEntity(ctx context.Context, id int64) (*models.Entity, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + entityColumns + ` FROM entities WHERE id = $1`
	row := s.Pool.QueryRow(ctx, query, id)

	e, err := scanEntity(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrEntityNotFound
		}

		return nil, fmt.Errorf("scanning entity: %w", err)
	}

	return e, nil
}

// CreateEntity inserts a new entity. An unknown entity type maps to
// ErrEntityTypeNotFound via the foreign key violation.
func (s *EntityStore) CreateEntity(ctx context.Context, req models.CreateEntityRequest) (*models.Entity, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	props, err := marshalProps(req.Properties)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO entities (entity_type_id, title, description, properties)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + entityColumns

	row := s.Pool.QueryRow(ctx, query, req.EntityTypeID, req.Title, req.Description, props)

	e, err := scanEntity(row.Scan)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, models.ErrEntityTypeNotFound
		}

		return nil, fmt.Errorf("scanning created entity: %w", err)
	}

	s.notify("entities", "insert", e.ID)

	return e, nil
}

// UpdateEntity updates title, description, and properties of an entity.
func (s *EntityStore) UpdateEntity(ctx context.Context, id int64, req models.UpdateEntityRequest) (*models.Entity, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var props []byte

	if req.Properties != nil {
		var err error

		props, err = marshalProps(req.Properties)
		if err != nil {
			return nil, err
		}
	}

	query := `UPDATE entities SET
		title = COALESCE($2, title),
		description = COALESCE($3, description),
		properties = COALESCE($4, properties),
		updated_at = now()
		WHERE id = $1
		RETURNING ` + entityColumns

	row := s.Pool.QueryRow(ctx, query, id, req.Title, req.Description, props)

	e, err := scanEntity(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrEntityNotFound
		}

		return nil, fmt.Errorf("scanning updated entity: %w", err)
	}

	s.notify("entities", "update", e.ID)

	return e, nil
}

// DeleteEntity removes an entity and, through ON DELETE CASCADE, every
// relationship incident to it.
func (s *EntityStore) DeleteEntity(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, `DELETE FROM entities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting entity: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrEntityNotFound
	}

	s.notify("entities", "delete", id)

	return nil
}

// EntityRelationships returns every relationship incident to an entity,
// outgoing first, for the per-entity relationship listing endpoint.
func (s *EntityStore) EntityRelationships(ctx context.Context, entityID int64) ([]models.Relationship, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var exists bool
	if err := s.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM entities WHERE id = $1)`, entityID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("checking entity existence: %w", err)
	}

	if !exists {
		return nil, models.ErrEntityNotFound
	}

	query := `(SELECT ` + relationshipColumns + ` FROM relationships WHERE from_entity_id = $1 ORDER BY id)
		UNION ALL
		(SELECT ` + relationshipColumns + ` FROM relationships WHERE to_entity_id = $1 AND from_entity_id <> $1 ORDER BY id)`

	rows, err := s.Pool.Query(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("querying entity relationships: %w", err)
	}
	defer rows.Close()

	return collectRelationships(rows)
}
