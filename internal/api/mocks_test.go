package api_test

import (
	"context"

	"github.com/caseboard/caseboard/internal/models"
)

// mockOntologyRepo implements api.OntologyRepository with overridable funcs.
type mockOntologyRepo struct {
	listEntityTypesFn  func(ctx context.Context, limit, offset int) ([]models.EntityType, error)
	getEntityTypeFn    func(ctx context.Context, id int64) (*models.EntityType, error)
	createEntityTypeFn func(ctx context.Context, req models.CreateEntityTypeRequest) (*models.EntityType, error)
	updateEntityTypeFn func(ctx context.Context, id int64, req models.UpdateEntityTypeRequest) (*models.EntityType, error)
	deleteEntityTypeFn func(ctx context.Context, id int64) error

	listRelationshipTypesFn  func(ctx context.Context, limit, offset int) ([]models.RelationshipType, error)
	getRelationshipTypeFn    func(ctx context.Context, id int64) (*models.RelationshipType, error)
	createRelationshipTypeFn func(ctx context.Context, req models.CreateRelationshipTypeRequest) (*models.RelationshipType, error)
	updateRelationshipTypeFn func(ctx context.Context, id int64, req models.UpdateRelationshipTypeRequest) (*models.RelationshipType, error)
	deleteRelationshipTypeFn func(ctx context.Context, id int64) error
}

func (m *mockOntologyRepo) ListEntityTypes(ctx context.Context, limit, offset int) ([]models.EntityType, error) {
	return m.listEntityTypesFn(ctx, limit, offset)
}

func (m *mockOntologyRepo) GetEntityType(ctx context.Context, id int64) (*models.EntityType, error) {
	return m.getEntityTypeFn(ctx, id)
}

func (m *mockOntologyRepo) CreateEntityType(ctx context.Context, req models.CreateEntityTypeRequest) (*models.EntityType, error) {
	return m.createEntityTypeFn(ctx, req)
}

func (m *mockOntologyRepo) UpdateEntityType(ctx context.Context, id int64, req models.UpdateEntityTypeRequest) (*models.EntityType, error) {
	return m.updateEntityTypeFn(ctx, id, req)
}

func (m *mockOntologyRepo) DeleteEntityType(ctx context.Context, id int64) error {
	return m.deleteEntityTypeFn(ctx, id)
}

func (m *mockOntologyRepo) ListRelationshipTypes(ctx context.Context, limit, offset int) ([]models.RelationshipType, error) {
	return m.listRelationshipTypesFn(ctx, limit, offset)
}

func (m *mockOntologyRepo) GetRelationshipType(ctx context.Context, id int64) (*models.RelationshipType, error) {
	return m.getRelationshipTypeFn(ctx, id)
}

func (m *mockOntologyRepo) CreateRelationshipType(ctx context.Context, req models.CreateRelationshipTypeRequest) (*models.RelationshipType, error) {
	return m.createRelationshipTypeFn(ctx, req)
}

func (m *mockOntologyRepo) UpdateRelationshipType(ctx context.Context, id int64, req models.UpdateRelationshipTypeRequest) (*models.RelationshipType, error) {
	return m.updateRelationshipTypeFn(ctx, id, req)
}

func (m *mockOntologyRepo) DeleteRelationshipType(ctx context.Context, id int64) error {
	return m.deleteRelationshipTypeFn(ctx, id)
}

// mockEntityRepo implements api.EntityRepository with overridable funcs.
type mockEntityRepo struct {
	listFn          func(ctx context.Context, entityTypeID int64, search string, limit, offset int) ([]models.Entity, bool, error)
	getFn           func(ctx context.Context, id int64) (*models.Entity, error)
	createFn        func(ctx context.Context, req models.CreateEntityRequest) (*models.Entity, error)
	updateFn        func(ctx context.Context, id int64, req models.UpdateEntityRequest) (*models.Entity, error)
	deleteFn        func(ctx context.Context, id int64) error
	relationshipsFn func(ctx context.Context, id int64) ([]models.Relationship, error)
}

func (m *mockEntityRepo) ListEntities(ctx context.Context, entityTypeID int64, search string, limit, offset int) ([]models.Entity, bool, error) {
	return m.listFn(ctx, entityTypeID, search, limit, offset)
}

func (m *mockEntityRepo) GetEntity(ctx context.Context, id int64) (*models.Entity, error) {
	return m.getFn(ctx, id)
}

func (m *mockEntityRepo) CreateEntity(ctx context.Context, req models.CreateEntityRequest) (*models.Entity, error) {
	return m.createFn(ctx, req)
}

func (m *mockEntityRepo) UpdateEntity(ctx context.Context, id int64, req models.UpdateEntityRequest) (*models.Entity, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockEntityRepo) DeleteEntity(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockEntityRepo) EntityRelationships(ctx context.Context, id int64) ([]models.Relationship, error) {
	return m.relationshipsFn(ctx, id)
}

// mockRelationshipRepo implements api.RelationshipRepository with overridable funcs.
type mockRelationshipRepo struct {
	listFn   func(ctx context.Context, fromEntityID, toEntityID, relationshipTypeID int64, limit, offset int) ([]models.Relationship, bool, error)
	getFn    func(ctx context.Context, id int64) (*models.Relationship, error)
	createFn func(ctx context.Context, req models.CreateRelationshipRequest) (*models.Relationship, error)
	updateFn func(ctx context.Context, id int64, req models.UpdateRelationshipRequest) (*models.Relationship, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockRelationshipRepo) ListRelationships(ctx context.Context, fromEntityID, toEntityID, relationshipTypeID int64, limit, offset int) ([]models.Relationship, bool, error) {
	return m.listFn(ctx, fromEntityID, toEntityID, relationshipTypeID, limit, offset)
}

func (m *mockRelationshipRepo) GetRelationship(ctx context.Context, id int64) (*models.Relationship, error) {
	return m.getFn(ctx, id)
}

func (m *mockRelationshipRepo) CreateRelationship(ctx context.Context, req models.CreateRelationshipRequest) (*models.Relationship, error) {
	return m.createFn(ctx, req)
}

func (m *mockRelationshipRepo) UpdateRelationship(ctx context.Context, id int64, req models.UpdateRelationshipRequest) (*models.Relationship, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockRelationshipRepo) DeleteRelationship(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// mockGraphRepo implements api.GraphRepository with overridable funcs.
type mockGraphRepo struct {
	exploreFn  func(ctx context.Context, entityID int64, depth int) (*models.GraphData, error)
	subgraphFn func(ctx context.Context, entityIDs []int64) (*models.GraphData, error)
	statsFn    func(ctx context.Context) (*models.GraphStats, error)
}

func (m *mockGraphRepo) Explore(ctx context.Context, entityID int64, depth int) (*models.GraphData, error) {
	return m.exploreFn(ctx, entityID, depth)
}

func (m *mockGraphRepo) Subgraph(ctx context.Context, entityIDs []int64) (*models.GraphData, error) {
	return m.subgraphFn(ctx, entityIDs)
}

func (m *mockGraphRepo) Stats(ctx context.Context) (*models.GraphStats, error) {
	return m.statsFn(ctx)
}
