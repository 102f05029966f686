package store

import (
	"context"
	"fmt"

	"github.com/caseboard/caseboard/internal/graph"
	"github.com/caseboard/caseboard/internal/models"
)

// Traversal safety limits.
const (
	incidentEdgeLimit = 1000 // max relationships per direction in one adjacency lookup
	inducedEdgeLimit  = 5000 // max relationships returned for a visited set
	resolveFetchLimit = 1000 // max rows fetched in a single resolve query
)

// GraphStore provides the read-only lookup surface consumed by the
// exploration engine: adjacency lookups for the Explorer and batched
// metadata joins for the Assembler.
type GraphStore struct {
	Base
}

// Compile-time checks: GraphStore backs both engine interfaces.
var (
	_ graph.Store    = (*GraphStore)(nil)
	_ graph.Resolver = (*GraphStore)(nil)
)

// NewGraphStore creates a GraphStore with the given shared base.
func NewGraphStore(base Base) *GraphStore {
	return &GraphStore{Base: base}
}

// EntityExists reports whether an entity with the given ID exists.
func (s *GraphStore) EntityExists(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var exists bool
	if err := s.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM entities WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking entity existence: %w", err)
	}

	return exists, nil
}

// IncidentRelationships returns relationships where the entity appears as
// either endpoint. OR is rewritten as UNION with per-direction limits so
// both directional indexes are used.
func (s *GraphStore) IncidentRelationships(ctx context.Context, entityID int64) ([]models.Relationship, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`(SELECT %[1]s FROM relationships
		WHERE from_entity_id = $1 ORDER BY id LIMIT %[2]d)
		UNION
		(SELECT %[1]s FROM relationships
		WHERE to_entity_id = $1 ORDER BY id LIMIT %[2]d)`,
		relationshipColumns, incidentEdgeLimit)

	rows, err := s.Pool.Query(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("querying incident relationships: %w", err)
	}
	defer rows.Close()

	return collectRelationships(rows)
}

// RelationshipsAmong returns every relationship whose both endpoints are in
// entityIDs, ordered by ID.
func (s *GraphStore) RelationshipsAmong(ctx context.Context, entityIDs []int64) ([]models.Relationship, error) {
	if len(entityIDs) == 0 {
		return []models.Relationship{}, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM relationships
		WHERE from_entity_id = ANY($1) AND to_entity_id = ANY($1)
		ORDER BY id LIMIT %d`, relationshipColumns, inducedEdgeLimit)

	rows, err := s.Pool.Query(ctx, query, entityIDs)
	if err != nil {
		return nil, fmt.Errorf("querying relationships among entities: %w", err)
	}
	defer rows.Close()

	return collectRelationships(rows)
}

// ResolveEntities returns the given entities joined with their type's
// rendering metadata. Missing IDs are absent from the result.
func (s *GraphStore) ResolveEntities(ctx context.Context, ids []int64) ([]graph.EntityRecord, error) {
	if len(ids) == 0 {
		return []graph.EntityRecord{}, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT
		e.id, e.entity_type_id, e.title, e.description, e.properties,
		e.created_at, e.updated_at, e.created_by,
		t.name, t.color, t.icon
		FROM entities e
		JOIN entity_types t ON t.id = e.entity_type_id
		WHERE e.id = ANY($1)
		ORDER BY e.id LIMIT %d`, resolveFetchLimit)

	rows, err := s.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("querying entity records: %w", err)
	}
	defer rows.Close()

	records := make([]graph.EntityRecord, 0, len(ids))

	for rows.Next() {
		var rec graph.EntityRecord

		e, err := scanJoined(rows.Scan, &rec.TypeName, &rec.TypeColor, &rec.TypeIcon)
		if err != nil {
			return nil, fmt.Errorf("scanning entity record: %w", err)
		}

		rec.Entity = *e
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entity records: %w", err)
	}

	return records, nil
}

// ResolveRelationships returns the given relationships joined with their
// type's labels and color. Missing IDs are absent from the result.
func (s *GraphStore) ResolveRelationships(ctx context.Context, ids []int64) ([]graph.RelationshipRecord, error) {
	if len(ids) == 0 {
		return []graph.RelationshipRecord{}, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT
		r.id, r.relationship_type_id, r.from_entity_id, r.to_entity_id,
		r.properties, r.created_at, r.updated_at, r.created_by,
		t.forward_label, t.reverse_label, t.color
		FROM relationships r
		JOIN relationship_types t ON t.id = r.relationship_type_id
		WHERE r.id = ANY($1)
		ORDER BY r.id LIMIT %d`, resolveFetchLimit)

	rows, err := s.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("querying relationship records: %w", err)
	}
	defer rows.Close()

	records := make([]graph.RelationshipRecord, 0, len(ids))

	for rows.Next() {
		var rec graph.RelationshipRecord
		var props []byte

		err := rows.Scan(
			&rec.Relationship.ID,
			&rec.Relationship.RelationshipTypeID,
			&rec.Relationship.FromEntityID,
			&rec.Relationship.ToEntityID,
			&props,
			&rec.Relationship.CreatedAt,
			&rec.Relationship.UpdatedAt,
			&rec.Relationship.CreatedBy,
			&rec.ForwardLabel,
			&rec.ReverseLabel,
			&rec.TypeColor,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning relationship record: %w", err)
		}

		if err := unmarshalInto(props, &rec.Relationship.Properties); err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating relationship records: %w", err)
	}

	return records, nil
}
