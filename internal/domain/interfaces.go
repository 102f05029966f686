// Package domain defines the canonical service interfaces shared across API
// layers (REST handlers, WebSocket, client). Consumers should depend on these
// interfaces rather than re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/caseboard/caseboard/internal/models"
)

// OntologyService defines entity type and relationship type operations.
type OntologyService interface {
	ListEntityTypes(ctx context.Context, limit, offset int) ([]models.EntityType, error)
	GetEntityType(ctx context.Context, id int64) (*models.EntityType, error)
	CreateEntityType(ctx context.Context, req models.CreateEntityTypeRequest) (*models.EntityType, error)
	UpdateEntityType(ctx context.Context, id int64, req models.UpdateEntityTypeRequest) (*models.EntityType, error)
	DeleteEntityType(ctx context.Context, id int64) error

	ListRelationshipTypes(ctx context.Context, limit, offset int) ([]models.RelationshipType, error)
	GetRelationshipType(ctx context.Context, id int64) (*models.RelationshipType, error)
	CreateRelationshipType(ctx context.Context, req models.CreateRelationshipTypeRequest) (*models.RelationshipType, error)
	UpdateRelationshipType(ctx context.Context, id int64, req models.UpdateRelationshipTypeRequest) (*models.RelationshipType, error)
	DeleteRelationshipType(ctx context.Context, id int64) error
}

// EntityService defines all entity operations.
type EntityService interface {
	ListEntities(ctx context.Context, entityTypeID int64, search string, limit, offset int) ([]models.Entity, bool, error)
	GetEntity(ctx context.Context, id int64) (*models.Entity, error)
	CreateEntity(ctx context.Context, req models.CreateEntityRequest) (*models.Entity, error)
	UpdateEntity(ctx context.Context, id int64, req models.UpdateEntityRequest) (*models.Entity, error)
	DeleteEntity(ctx context.Context, id int64) error
	EntityRelationships(ctx context.Context, id int64) ([]models.Relationship, error)
}

// RelationshipService defines all relationship operations.
type RelationshipService interface {
	ListRelationships(ctx context.Context, fromEntityID, toEntityID, relationshipTypeID int64, limit, offset int) ([]models.Relationship, bool, error)
	GetRelationship(ctx context.Context, id int64) (*models.Relationship, error)
	CreateRelationship(ctx context.Context, req models.CreateRelationshipRequest) (*models.Relationship, error)
	UpdateRelationship(ctx context.Context, id int64, req models.UpdateRelationshipRequest) (*models.Relationship, error)
	DeleteRelationship(ctx context.Context, id int64) error
}

// GraphService defines exploration and aggregate operations.
type GraphService interface {
	Explore(ctx context.Context, entityID int64, depth int) (*models.GraphData, error)
	Subgraph(ctx context.Context, entityIDs []int64) (*models.GraphData, error)
	Stats(ctx context.Context) (*models.GraphStats, error)
}
