package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/caseboard/caseboard/internal/models"
)

// RelationshipTypeStore handles relationship type CRUD.
type RelationshipTypeStore struct {
	Base
}

// NewRelationshipTypeStore creates a RelationshipTypeStore with the given shared base.
func NewRelationshipTypeStore(base Base) *RelationshipTypeStore {
	return &RelationshipTypeStore{Base: base}
}

// ListRelationshipTypes returns all relationship types ordered by name.
func (s *RelationshipTypeStore) ListRelationshipTypes(ctx context.Context, limit, offset int) ([]models.RelationshipType, error) {
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

	query := `SELECT ` + relationshipTypeColumns + ` FROM relationship_types ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := s.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying relationship types: %w", err)
	}
	defer rows.Close()

	types := make([]models.RelationshipType, 0, 16)

	for rows.Next() {
		t, err := scanRelationshipType(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning relationship type row: %w", err)
		}

		types = append(types, *t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating relationship type rows: %w", err)
	}

	return types, nil
}

// GetRelationshipType retrieves a single relationship type by ID.
func (s *RelationshipTypeStore) GetRelationshipType(ctx context.Context, id int64) (*models.RelationshipType, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + relationshipTypeColumns + ` FROM relationship_types WHERE id = $1`
	row := s.Pool.QueryRow(ctx, query, id)

	t, err := scanRelationshipType(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrRelationshipTypeNotFound
		}

		return nil, fmt.Errorf("scanning relationship type: %w", err)
	}

	return t, nil
}

// CreateRelationshipType inserts a new relationship type. Duplicate names map
// to ErrDuplicateName.
func (s *RelationshipTypeStore) CreateRelationshipType(ctx context.Context, req models.CreateRelationshipTypeRequest) (*models.RelationshipType, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	schema, err := marshalProps(req.PropertySchema)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO relationship_types
		(name, display_name, description, forward_label, reverse_label, color, line_style, property_schema)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + relationshipTypeColumns

	row := s.Pool.QueryRow(ctx, query,
		req.Name, req.DisplayName, req.Description,
		req.ForwardLabel, req.ReverseLabel, req.Color, req.LineStyle, schema)

	t, err := scanRelationshipType(row.Scan)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, models.ErrDuplicateName
		}

		return nil, fmt.Errorf("scanning created relationship type: %w", err)
	}

	s.notify("relationship_types", "insert", t.ID)

	return t, nil
}

// UpdateRelationshipType updates presentation fields, labels, and the schema.
func (s *RelationshipTypeStore) UpdateRelationshipType(ctx context.Context, id int64, req models.UpdateRelationshipTypeRequest) (*models.RelationshipType, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var schema []byte

	if req.PropertySchema != nil {
		var err error

		schema, err = marshalProps(req.PropertySchema)
		if err != nil {
			return nil, err
		}
	}

	query := `UPDATE relationship_types SET
		display_name = COALESCE($2, display_name),
		description = COALESCE($3, description),
		forward_label = COALESCE($4, forward_label),
		reverse_label = COALESCE($5, reverse_label),
		color = COALESCE($6, color),
		line_style = COALESCE($7, line_style),
		property_schema = COALESCE($8, property_schema),
		updated_at = now()
		WHERE id = $1
		RETURNING ` + relationshipTypeColumns

	row := s.Pool.QueryRow(ctx, query, id,
		req.DisplayName, req.Description, req.ForwardLabel, req.ReverseLabel,
		req.Color, req.LineStyle, schema)

	t, err := scanRelationshipType(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrRelationshipTypeNotFound
		}

		return nil, fmt.Errorf("scanning updated relationship type: %w", err)
	}

	s.notify("relationship_types", "update", t.ID)

	return t, nil
}

// DeleteRelationshipType removes a relationship type and its relationships.
func (s *RelationshipTypeStore) DeleteRelationshipType(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, `DELETE FROM relationship_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting relationship type: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrRelationshipTypeNotFound
	}

	s.notify("relationship_types", "delete", id)

	return nil
}
