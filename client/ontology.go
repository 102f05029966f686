package client

import (
	"context"
	"strconv"
)

// EntityTypeService handles entity type CRUD operations.
type EntityTypeService struct {
	c *Client
}

// List returns all entity types ordered by name.
func (s *EntityTypeService) List(ctx context.Context) ([]EntityType, error) {
	var resp struct {
		EntityTypes []EntityType `json:"entity_types"`
	}
	if err := s.c.get(ctx, "/api/v1/entity-types", nil, &resp); err != nil {
		return nil, err
	}
	return resp.EntityTypes, nil
}

// Get returns a single entity type by ID.
func (s *EntityTypeService) Get(ctx context.Context, id int64) (*EntityType, error) {
	var typ EntityType
	if err := s.c.get(ctx, "/api/v1/entity-types/"+strconv.FormatInt(id, 10), nil, &typ); err != nil {
		return nil, err
	}
	return &typ, nil
}

// Create creates a new entity type.
func (s *EntityTypeService) Create(ctx context.Context, req *CreateEntityTypeRequest) (*EntityType, error) {
	var typ EntityType
	if err := s.c.post(ctx, "/api/v1/entity-types", req, &typ); err != nil {
		return nil, err
	}
	return &typ, nil
}

// Update updates an existing entity type by ID.
func (s *EntityTypeService) Update(ctx context.Context, id int64, req *UpdateEntityTypeRequest) (*EntityType, error) {
	var typ EntityType
	if err := s.c.put(ctx, "/api/v1/entity-types/"+strconv.FormatInt(id, 10), req, &typ); err != nil {
		return nil, err
	}
	return &typ, nil
}

// Delete removes an entity type by ID. Entities of that type cascade.
func (s *EntityTypeService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, "/api/v1/entity-types/"+strconv.FormatInt(id, 10))
}

// RelationshipTypeService handles relationship type CRUD operations.
type RelationshipTypeService struct {
	c *Client
}

// List returns all relationship types ordered by name.
func (s *RelationshipTypeService) List(ctx context.Context) ([]RelationshipType, error) {
	var resp struct {
		RelationshipTypes []RelationshipType `json:"relationship_types"`
	}
	if err := s.c.get(ctx, "/api/v1/relationship-types", nil, &resp); err != nil {
		return nil, err
	}
	return resp.RelationshipTypes, nil
}

// Get returns a single relationship type by ID.
func (s *RelationshipTypeService) Get(ctx context.Context, id int64) (*RelationshipType, error) {
	var typ RelationshipType
	if err := s.c.get(ctx, "/api/v1/relationship-types/"+strconv.FormatInt(id, 10), nil, &typ); err != nil {
		return nil, err
	}
	return &typ, nil
}

// Create creates a new relationship type.
func (s *RelationshipTypeService) Create(ctx context.Context, req *CreateRelationshipTypeRequest) (*RelationshipType, error) {
	var typ RelationshipType
	if err := s.c.post(ctx, "/api/v1/relationship-types", req, &typ); err != nil {
		return nil, err
	}
	return &typ, nil
}

// Update updates an existing relationship type by ID.
func (s *RelationshipTypeService) Update(ctx context.Context, id int64, req *UpdateRelationshipTypeRequest) (*RelationshipType, error) {
	var typ RelationshipType
	if err := s.c.put(ctx, "/api/v1/relationship-types/"+strconv.FormatInt(id, 10), req, &typ); err != nil {
		return nil, err
	}
	return &typ, nil
}

// Delete removes a relationship type by ID. Relationships of that type cascade.
func (s *RelationshipTypeService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, "/api/v1/relationship-types/"+strconv.FormatInt(id, 10))
}
