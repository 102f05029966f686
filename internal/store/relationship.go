package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/caseboard/caseboard/internal/models"
)

// RelationshipStore handles relationship CRUD.
type RelationshipStore struct {
	Base
}

// NewRelationshipStore creates a RelationshipStore with the given shared base.
func NewRelationshipStore(base Base) *RelationshipStore {
	return &RelationshipStore{Base: base}
}

// ListRelationships returns relationships filtered by endpoint and type.
func (s *RelationshipStore) ListRelationships(
	ctx context.Context,
	fromEntityID, toEntityID, relationshipTypeID int64,
	limit, offset int,
) ([]models.Relationship, bool, error) {
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
	filterArgs := make([]any, 0, 3)
	argIdx := 1

	if fromEntityID > 0 {
		where += fmt.Sprintf(" AND from_entity_id = $%d", argIdx)
		filterArgs = append(filterArgs, fromEntityID)
		argIdx++
	}

	if toEntityID > 0 {
		where += fmt.Sprintf(" AND to_entity_id = $%d", argIdx)
		filterArgs = append(filterArgs, toEntityID)
		argIdx++
	}

	if relationshipTypeID > 0 {
		where += fmt.Sprintf(" AND relationship_type_id = $%d", argIdx)
		filterArgs = append(filterArgs, relationshipTypeID)
		argIdx++
	}

	query := "SELECT " + relationshipColumns + " FROM relationships" + where
	query += " ORDER BY id"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args := make([]any, 0, len(filterArgs)+2)
	args = append(args, filterArgs...)
	args = append(args, limit+1, offset)

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("querying relationships: %w", err)
	}
	defer rows.Close()

	rels, err := collectRelationships(rows)
	if err != nil {
		return nil, false, err
	}

	hasMore := len(rels) > limit
	if hasMore {
		rels = rels[:limit]
	}

	return rels, hasMore, nil
}

// GetRelationship retrieves a single relationship by ID.
func (s *RelationshipStore) GetRelationship(ctx context.Context, id int64) (*models.Relationship, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + relationshipColumns + ` FROM relationships WHERE id = $1`
	row := s.Pool.QueryRow(ctx, query, id)

	r, err := scanRelationship(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrRelationshipNotFound
		}

		return nil, fmt.Errorf("scanning relationship: %w", err)
	}

	return r, nil
}

// CreateRelationship inserts a new relationship. Foreign key violations map
// to the sentinel for whichever reference is missing.
func (s *RelationshipStore) CreateRelationship(ctx context.Context, req models.CreateRelationshipRequest) (*models.Relationship, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	props, err := marshalProps(req.Properties)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO relationships (relationship_type_id, from_entity_id, to_entity_id, properties)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + relationshipColumns

	row := s.Pool.QueryRow(ctx, query, req.RelationshipTypeID, req.FromEntityID, req.ToEntityID, props)

	r, err := scanRelationship(row.Scan)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if pgErr.ConstraintName == "relationships_relationship_type_id_fkey" {
				return nil, models.ErrRelationshipTypeNotFound
			}

			return nil, models.ErrEntityNotFound
		}

		return nil, fmt.Errorf("scanning created relationship: %w", err)
	}

	s.notify("relationships", "insert", r.ID)

	return r, nil
}

// UpdateRelationship replaces the properties of a relationship.
func (s *RelationshipStore) UpdateRelationship(ctx context.Context, id int64, req models.UpdateRelationshipRequest) (*models.Relationship, error) {
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

	query := `UPDATE relationships SET
		properties = COALESCE($2, properties),
		updated_at = now()
		WHERE id = $1
		RETURNING ` + relationshipColumns

	row := s.Pool.QueryRow(ctx, query, id, props)

	r, err := scanRelationship(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrRelationshipNotFound
		}

		return nil, fmt.Errorf("scanning updated relationship: %w", err)
	}

	s.notify("relationships", "update", r.ID)

	return r, nil
}

// DeleteRelationship removes a relationship.
func (s *RelationshipStore) DeleteRelationship(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, `DELETE FROM relationships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting relationship: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrRelationshipNotFound
	}

	s.notify("relationships", "delete", id)

	return nil
}
