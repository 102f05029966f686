package graph

import (
	"context"

	"github.com/caseboard/caseboard/internal/models"
)

// Store is the relationship-lookup surface the Explorer consumes. Adjacency
// is bidirectional: IncidentRelationships returns relationships where the
// entity appears as either endpoint.
type Store interface {
	EntityExists(ctx context.Context, id int64) (bool, error)
	IncidentRelationships(ctx context.Context, entityID int64) ([]models.Relationship, error)
	RelationshipsAmong(ctx context.Context, entityIDs []int64) ([]models.Relationship, error)
}

// EntityRecord is an entity joined with the type metadata the Assembler
// needs for rendering hints.
type EntityRecord struct {
	Entity    models.Entity
	TypeName  string
	TypeColor *string
	TypeIcon  *string
}

// RelationshipRecord is a relationship joined with its type's labels and color.
type RelationshipRecord struct {
	Relationship models.Relationship
	ForwardLabel string
	ReverseLabel string
	TypeColor    *string
}

// Resolver turns visited IDs back into full records, one batched lookup per
// Assemble call. Records may come back in any order; missing IDs are simply
// absent from the result.
type Resolver interface {
	ResolveEntities(ctx context.Context, ids []int64) ([]EntityRecord, error)
	ResolveRelationships(ctx context.Context, ids []int64) ([]RelationshipRecord, error)
}
