package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/caseboard/caseboard/internal/domain"
	"github.com/caseboard/caseboard/internal/models"
)

// RelationshipStore is the data-access interface RelationshipService depends on.
// It reuses domain.RelationshipService since the method sets are identical, avoiding duplication.
type RelationshipStore = domain.RelationshipService

// Compile-time check: *RelationshipService must satisfy domain.RelationshipService.
var _ domain.RelationshipService = (*RelationshipService)(nil)

// RelationshipService wraps RelationshipStore with request validation and logging.
type RelationshipService struct {
	store RelationshipStore
	log   *logrus.Logger
}

// NewRelationshipService creates a RelationshipService.
func NewRelationshipService(store RelationshipStore, log *logrus.Logger) *RelationshipService {
	return &RelationshipService{store: store, log: log}
}

// ListRelationships returns a paginated, filtered list of relationships
// (pass-through).
func (s *RelationshipService) ListRelationships(
	ctx context.Context, fromEntityID, toEntityID, relationshipTypeID int64, limit, offset int,
) ([]models.Relationship, bool, error) {
	return s.store.ListRelationships(ctx, fromEntityID, toEntityID, relationshipTypeID, limit, offset)
}

// GetRelationship returns a single relationship by ID (pass-through).
func (s *RelationshipService) GetRelationship(ctx context.Context, id int64) (*models.Relationship, error) {
	return s.store.GetRelationship(ctx, id)
}

// CreateRelationship validates the request and creates a relationship.
func (s *RelationshipService) CreateRelationship(ctx context.Context, req models.CreateRelationshipRequest) (*models.Relationship, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rel, err := s.store.CreateRelationship(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"relationship_id": rel.ID,
		"from_entity_id":  rel.FromEntityID,
		"to_entity_id":    rel.ToEntityID,
	}).Info("relationship created")

	return rel, nil
}

// UpdateRelationship validates the request and updates a relationship's
// properties.
func (s *RelationshipService) UpdateRelationship(ctx context.Context, id int64, req models.UpdateRelationshipRequest) (*models.Relationship, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rel, err := s.store.UpdateRelationship(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.log.WithField("relationship_id", rel.ID).Info("relationship updated")

	return rel, nil
}

// DeleteRelationship removes a relationship.
func (s *RelationshipService) DeleteRelationship(ctx context.Context, id int64) error {
	if err := s.store.DeleteRelationship(ctx, id); err != nil {
		return err
	}

	s.log.WithField("relationship_id", id).Info("relationship deleted")

	return nil
}
