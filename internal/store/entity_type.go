package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/caseboard/caseboard/internal/models"
)

// EntityTypeStore handles entity type CRUD.
type EntityTypeStore struct {
	Base
}

// NewEntityTypeStore creates an EntityTypeStore with the given shared base.
func NewEntityTypeStore(base Base) *EntityTypeStore {
	return &EntityTypeStore{Base: base}
}

// ListEntityTypes returns all entity types ordered by name.
func (s *EntityTypeStore) ListEntityTypes(ctx context.Context, limit, offset int) ([]models.EntityType, error) {
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

	query := `SELECT ` + entityTypeColumns + ` FROM entity_types ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := s.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying entity types: %w", err)
	}
	defer rows.Close()

	types := make([]models.EntityType, 0, 16)

	for rows.Next() {
		t, err := scanEntityType(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning entity type row: %w", err)
		}

		types = append(types, *t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entity type rows: %w", err)
	}

	return types, nil
}

// GetEntityType retrieves a single entity type by ID.
func (s *EntityTypeStore) GetEntityType(ctx context.Context, id int64) (*models.EntityType, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + entityTypeColumns + ` FROM entity_types WHERE id = $1`
	row := s.Pool.QueryRow(ctx, query, id)

	t, err := scanEntityType(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrEntityTypeNotFound
		}

		return nil, fmt.Errorf("scanning entity type: %w", err)
	}

	return t, nil
}

// CreateEntityType inserts a new entity type. Duplicate names map to ErrDuplicateName.
func (s *EntityTypeStore) CreateEntityType(ctx context.Context, req models.CreateEntityTypeRequest) (*models.EntityType, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	schema, err := marshalProps(req.PropertySchema)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO entity_types (name, display_name, description, icon, color, property_schema)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + entityTypeColumns

	row := s.Pool.QueryRow(ctx, query, req.Name, req.DisplayName, req.Description, req.Icon, req.Color, schema)

	t, err := scanEntityType(row.Scan)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, models.ErrDuplicateName
		}

		return nil, fmt.Errorf("scanning created entity type: %w", err)
	}

	s.notify("entity_types", "insert", t.ID)

	return t, nil
}

// UpdateEntityType updates presentation fields and the property schema.
func (s *EntityTypeStore) UpdateEntityType(ctx context.Context, id int64, req models.UpdateEntityTypeRequest) (*models.EntityType, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `UPDATE entity_types SET
		display_name = COALESCE($2, display_name),
		description = COALESCE($3, description),
		icon = COALESCE($4, icon),
		color = COALESCE($5, color),
		property_schema = COALESCE($6, property_schema),
		updated_at = now()
		WHERE id = $1
		RETURNING ` + entityTypeColumns

	var schema []byte

	if req.PropertySchema != nil {
		var err error

		schema, err = marshalProps(req.PropertySchema)
		if err != nil {
			return nil, err
		}
	}

	row := s.Pool.QueryRow(ctx, query, id, req.DisplayName, req.Description, req.Icon, req.Color, schema)

	t, err := scanEntityType(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrEntityTypeNotFound
		}

		return nil, fmt.Errorf("scanning updated entity type: %w", err)
	}

	s.notify("entity_types", "update", t.ID)

	return t, nil
}

// DeleteEntityType removes an entity type. Entities of this type are removed
// with it (ON DELETE CASCADE, matching the ontology's ownership semantics).
func (s *EntityTypeStore) DeleteEntityType(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, `DELETE FROM entity_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting entity type: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrEntityTypeNotFound
	}

	s.notify("entity_types", "delete", id)

	return nil
}
