// Package service provides business logic between API handlers and data stores.
package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/caseboard/caseboard/internal/domain"
	"github.com/caseboard/caseboard/internal/models"
)

// EntityStore is the data-access interface EntityService depends on.
// It reuses domain.EntityService since the method sets are identical, avoiding duplication.
type EntityStore = domain.EntityService

// Compile-time check: *EntityService must satisfy domain.EntityService.
var _ domain.EntityService = (*EntityService)(nil)

// EntityService wraps EntityStore with request validation and logging.
type EntityService struct {
	store EntityStore
	log   *logrus.Logger
}

// NewEntityService creates an EntityService.
func NewEntityService(store EntityStore, log *logrus.Logger) *EntityService {
	return &EntityService{store: store, log: log}
}

// ListEntities returns a paginated list of entities (pass-through).
func (s *EntityService) ListEntities(
	ctx context.Context, entityTypeID int64, search string, limit, offset int,
) ([]models.Entity, bool, error) {
	return s.store.ListEntities(ctx, entityTypeID, search, limit, offset)
}

// GetEntity returns a single entity by ID (pass-through).
func (s *EntityService) GetEntity(ctx context.Context, id int64) (*models.Entity, error) {
	return s.store.GetEntity(ctx, id)
}

// CreateEntity validates the request and creates an entity.
func (s *EntityService) CreateEntity(ctx context.Context, req models.CreateEntityRequest) (*models.Entity, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity, err := s.store.CreateEntity(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"entity_id":      entity.ID,
		"entity_type_id": entity.EntityTypeID,
	}).Info("entity created")

	return entity, nil
}

// UpdateEntity validates the request and updates an entity.
func (s *EntityService) UpdateEntity(ctx context.Context, id int64, req models.UpdateEntityRequest) (*models.Entity, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity, err := s.store.UpdateEntity(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.log.WithField("entity_id", entity.ID).Info("entity updated")

	return entity, nil
}

// DeleteEntity removes an entity and, via cascade, its relationships.
func (s *EntityService) DeleteEntity(ctx context.Context, id int64) error {
	if err := s.store.DeleteEntity(ctx, id); err != nil {
		return err
	}

	s.log.WithField("entity_id", id).Info("entity deleted")

	return nil
}

// EntityRelationships returns all relationships incident to an entity
// (pass-through).
func (s *EntityService) EntityRelationships(ctx context.Context, id int64) ([]models.Relationship, error) {
	return s.store.EntityRelationships(ctx, id)
}
