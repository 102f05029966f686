package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/caseboard/caseboard/internal/domain"
	"github.com/caseboard/caseboard/internal/models"
)

// EntityTypeStore is the entity-type half of the ontology data-access surface.
type EntityTypeStore interface {
	ListEntityTypes(ctx context.Context, limit, offset int) ([]models.EntityType, error)
	GetEntityType(ctx context.Context, id int64) (*models.EntityType, error)
	CreateEntityType(ctx context.Context, req models.CreateEntityTypeRequest) (*models.EntityType, error)
	UpdateEntityType(ctx context.Context, id int64, req models.UpdateEntityTypeRequest) (*models.EntityType, error)
	DeleteEntityType(ctx context.Context, id int64) error
}

// RelationshipTypeStore is the relationship-type half of the ontology
// data-access surface.
type RelationshipTypeStore interface {
	ListRelationshipTypes(ctx context.Context, limit, offset int) ([]models.RelationshipType, error)
	GetRelationshipType(ctx context.Context, id int64) (*models.RelationshipType, error)
	CreateRelationshipType(ctx context.Context, req models.CreateRelationshipTypeRequest) (*models.RelationshipType, error)
	UpdateRelationshipType(ctx context.Context, id int64, req models.UpdateRelationshipTypeRequest) (*models.RelationshipType, error)
	DeleteRelationshipType(ctx context.Context, id int64) error
}

// Compile-time check: *OntologyService must satisfy domain.OntologyService.
var _ domain.OntologyService = (*OntologyService)(nil)

// OntologyService manages the type vocabulary: entity types and relationship
// types. Both halves share one service since type administration is a single
// concern for callers.
type OntologyService struct {
	entityTypes       EntityTypeStore
	relationshipTypes RelationshipTypeStore
	log               *logrus.Logger
}

// NewOntologyService creates an OntologyService.
func NewOntologyService(entityTypes EntityTypeStore, relationshipTypes RelationshipTypeStore, log *logrus.Logger) *OntologyService {
	return &OntologyService{entityTypes: entityTypes, relationshipTypes: relationshipTypes, log: log}
}

// ListEntityTypes returns all entity types ordered by name (pass-through).
func (s *OntologyService) ListEntityTypes(ctx context.Context, limit, offset int) ([]models.EntityType, error) {
	return s.entityTypes.ListEntityTypes(ctx, limit, offset)
}

// GetEntityType returns a single entity type by ID (pass-through).
func (s *OntologyService) GetEntityType(ctx context.Context, id int64) (*models.EntityType, error) {
	return s.entityTypes.GetEntityType(ctx, id)
}

// CreateEntityType validates the request and creates an entity type.
func (s *OntologyService) CreateEntityType(ctx context.Context, req models.CreateEntityTypeRequest) (*models.EntityType, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.entityTypes.CreateEntityType(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"entity_type_id": t.ID,
		"name":           t.Name,
	}).Info("entity type created")

	return t, nil
}

// UpdateEntityType validates the request and updates an entity type.
func (s *OntologyService) UpdateEntityType(ctx context.Context, id int64, req models.UpdateEntityTypeRequest) (*models.EntityType, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.entityTypes.UpdateEntityType(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.log.WithField("entity_type_id", t.ID).Info("entity type updated")

	return t, nil
}

// DeleteEntityType removes an entity type and, via cascade, its entities.
func (s *OntologyService) DeleteEntityType(ctx context.Context, id int64) error {
	if err := s.entityTypes.DeleteEntityType(ctx, id); err != nil {
		return err
	}

	s.log.WithField("entity_type_id", id).Info("entity type deleted")

	return nil
}

// ListRelationshipTypes returns all relationship types ordered by name
// (pass-through).
func (s *OntologyService) ListRelationshipTypes(ctx context.Context, limit, offset int) ([]models.RelationshipType, error) {
	return s.relationshipTypes.ListRelationshipTypes(ctx, limit, offset)
}

// GetRelationshipType returns a single relationship type by ID (pass-through).
func (s *OntologyService) GetRelationshipType(ctx context.Context, id int64) (*models.RelationshipType, error) {
	return s.relationshipTypes.GetRelationshipType(ctx, id)
}

// CreateRelationshipType validates the request and creates a relationship type.
func (s *OntologyService) CreateRelationshipType(ctx context.Context, req models.CreateRelationshipTypeRequest) (*models.RelationshipType, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.relationshipTypes.CreateRelationshipType(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"relationship_type_id": t.ID,
		"name":                 t.Name,
	}).Info("relationship type created")

	return t, nil
}

// UpdateRelationshipType validates the request and updates a relationship type.
func (s *OntologyService) UpdateRelationshipType(ctx context.Context, id int64, req models.UpdateRelationshipTypeRequest) (*models.RelationshipType, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.relationshipTypes.UpdateRelationshipType(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.log.WithField("relationship_type_id", t.ID).Info("relationship type updated")

	return t, nil
}

// DeleteRelationshipType removes a relationship type and, via cascade, its
// relationships.
func (s *OntologyService) DeleteRelationshipType(ctx context.Context, id int64) error {
	if err := s.relationshipTypes.DeleteRelationshipType(ctx, id); err != nil {
		return err
	}

	s.log.WithField("relationship_type_id", id).Info("relationship type deleted")

	return nil
}
