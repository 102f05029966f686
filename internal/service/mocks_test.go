package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/caseboard/caseboard/internal/graph"
	"github.com/caseboard/caseboard/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return log
}

// mockEntityStore implements EntityStore with overridable functions.
type mockEntityStore struct {
	listEntities        func(ctx context.Context, entityTypeID int64, search string, limit, offset int) ([]models.Entity, bool, error)
	getEntity           func(ctx context.Context, id int64) (*models.Entity, error)
	createEntity        func(ctx context.Context, req models.CreateEntityRequest) (*models.Entity, error)
	updateEntity        func(ctx context.Context, id int64, req models.UpdateEntityRequest) (*models.Entity, error)
	deleteEntity        func(ctx context.Context, id int64) error
	entityRelationships func(ctx context.Context, id int64) ([]models.Relationship, error)
}

func (m *mockEntityStore) ListEntities(ctx context.Context, entityTypeID int64, search string, limit, offset int) ([]models.Entity, bool, error) {
	return m.listEntities(ctx, entityTypeID, search, limit, offset)
}

func (m *mockEntityStore) GetEntity(ctx context.Context, id int64) (*models.Entity, error) {
	return m.getEntity(ctx, id)
}

func (m *mockEntityStore) CreateEntity(ctx context.Context, req models.CreateEntityRequest) (*models.Entity, error) {
	return m.createEntity(ctx, req)
}

func (m *mockEntityStore) UpdateEntity(ctx context.Context, id int64, req models.UpdateEntityRequest) (*models.Entity, error) {
	return m.updateEntity(ctx, id, req)
}

func (m *mockEntityStore) DeleteEntity(ctx context.Context, id int64) error {
	return m.deleteEntity(ctx, id)
}

func (m *mockEntityStore) EntityRelationships(ctx context.Context, id int64) ([]models.Relationship, error) {
	return m.entityRelationships(ctx, id)
}

// mockRelationshipStore implements RelationshipStore with overridable functions.
type mockRelationshipStore struct {
	listRelationships  func(ctx context.Context, from, to, typeID int64, limit, offset int) ([]models.Relationship, bool, error)
	getRelationship    func(ctx context.Context, id int64) (*models.Relationship, error)
	createRelationship func(ctx context.Context, req models.CreateRelationshipRequest) (*models.Relationship, error)
	updateRelationship func(ctx context.Context, id int64, req models.UpdateRelationshipRequest) (*models.Relationship, error)
	deleteRelationship func(ctx context.Context, id int64) error
}

func (m *mockRelationshipStore) ListRelationships(ctx context.Context, from, to, typeID int64, limit, offset int) ([]models.Relationship, bool, error) {
	return m.listRelationships(ctx, from, to, typeID, limit, offset)
}

func (m *mockRelationshipStore) GetRelationship(ctx context.Context, id int64) (*models.Relationship, error) {
	return m.getRelationship(ctx, id)
}

func (m *mockRelationshipStore) CreateRelationship(ctx context.Context, req models.CreateRelationshipRequest) (*models.Relationship, error) {
	return m.createRelationship(ctx, req)
}

func (m *mockRelationshipStore) UpdateRelationship(ctx context.Context, id int64, req models.UpdateRelationshipRequest) (*models.Relationship, error) {
	return m.updateRelationship(ctx, id, req)
}

func (m *mockRelationshipStore) DeleteRelationship(ctx context.Context, id int64) error {
	return m.deleteRelationship(ctx, id)
}

// mockEntityTypeStore implements EntityTypeStore with overridable functions.
type mockEntityTypeStore struct {
	listEntityTypes  func(ctx context.Context, limit, offset int) ([]models.EntityType, error)
	getEntityType    func(ctx context.Context, id int64) (*models.EntityType, error)
	createEntityType func(ctx context.Context, req models.CreateEntityTypeRequest) (*models.EntityType, error)
	updateEntityType func(ctx context.Context, id int64, req models.UpdateEntityTypeRequest) (*models.EntityType, error)
	deleteEntityType func(ctx context.Context, id int64) error
}

func (m *mockEntityTypeStore) ListEntityTypes(ctx context.Context, limit, offset int) ([]models.EntityType, error) {
	return m.listEntityTypes(ctx, limit, offset)
}

func (m *mockEntityTypeStore) GetEntityType(ctx context.Context, id int64) (*models.EntityType, error) {
	return m.getEntityType(ctx, id)
}

func (m *mockEntityTypeStore) CreateEntityType(ctx context.Context, req models.CreateEntityTypeRequest) (*models.EntityType, error) {
	return m.createEntityType(ctx, req)
}

func (m *mockEntityTypeStore) UpdateEntityType(ctx context.Context, id int64, req models.UpdateEntityTypeRequest) (*models.EntityType, error) {
	return m.updateEntityType(ctx, id, req)
}

func (m *mockEntityTypeStore) DeleteEntityType(ctx context.Context, id int64) error {
	return m.deleteEntityType(ctx, id)
}

// mockRelationshipTypeStore implements RelationshipTypeStore with overridable functions.
type mockRelationshipTypeStore struct {
	listRelationshipTypes  func(ctx context.Context, limit, offset int) ([]models.RelationshipType, error)
	getRelationshipType    func(ctx context.Context, id int64) (*models.RelationshipType, error)
	createRelationshipType func(ctx context.Context, req models.CreateRelationshipTypeRequest) (*models.RelationshipType, error)
	updateRelationshipType func(ctx context.Context, id int64, req models.UpdateRelationshipTypeRequest) (*models.RelationshipType, error)
	deleteRelationshipType func(ctx context.Context, id int64) error
}

func (m *mockRelationshipTypeStore) ListRelationshipTypes(ctx context.Context, limit, offset int) ([]models.RelationshipType, error) {
	return m.listRelationshipTypes(ctx, limit, offset)
}

func (m *mockRelationshipTypeStore) GetRelationshipType(ctx context.Context, id int64) (*models.RelationshipType, error) {
	return m.getRelationshipType(ctx, id)
}

func (m *mockRelationshipTypeStore) CreateRelationshipType(ctx context.Context, req models.CreateRelationshipTypeRequest) (*models.RelationshipType, error) {
	return m.createRelationshipType(ctx, req)
}

func (m *mockRelationshipTypeStore) UpdateRelationshipType(ctx context.Context, id int64, req models.UpdateRelationshipTypeRequest) (*models.RelationshipType, error) {
	return m.updateRelationshipType(ctx, id, req)
}

func (m *mockRelationshipTypeStore) DeleteRelationshipType(ctx context.Context, id int64) error {
	return m.deleteRelationshipType(ctx, id)
}

// mockExplorer implements Explorer with overridable functions.
type mockExplorer struct {
	explore    func(ctx context.Context, seedID int64, depth int) (*graph.Result, error)
	exploreSet func(ctx context.Context, seedIDs []int64, depth int) (*graph.Result, error)
}

func (m *mockExplorer) Explore(ctx context.Context, seedID int64, depth int) (*graph.Result, error) {
	return m.explore(ctx, seedID, depth)
}

func (m *mockExplorer) ExploreSet(ctx context.Context, seedIDs []int64, depth int) (*graph.Result, error) {
	return m.exploreSet(ctx, seedIDs, depth)
}

// mockAssembler implements Assembler with an overridable function.
type mockAssembler struct {
	assemble func(ctx context.Context, res *graph.Result) (*models.GraphData, error)
}

func (m *mockAssembler) Assemble(ctx context.Context, res *graph.Result) (*models.GraphData, error) {
	return m.assemble(ctx, res)
}

// mockStatsCollector implements StatsCollector with an overridable function.
type mockStatsCollector struct {
	collectStats func(ctx context.Context) (*models.GraphStats, error)
}

func (m *mockStatsCollector) CollectStats(ctx context.Context) (*models.GraphStats, error) {
	return m.collectStats(ctx)
}
