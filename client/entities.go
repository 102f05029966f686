package client

import (
	"context"
	"net/url"
	"strconv"
)

// EntityService handles entity CRUD operations.
type EntityService struct {
	c *Client
}

// entityListResponse wraps the paginated entity list response.
type entityListResponse struct {
	Entities []Entity `json:"entities"`
	HasMore  bool     `json:"has_more"`
}

// List returns entities with optional filtering and pagination.
func (s *EntityService) List(ctx context.Context, opts *EntityListOptions) ([]Entity, bool, error) {
	params := url.Values{}
	if opts != nil {
		if opts.EntityTypeID > 0 {
			params.Set("entity_type_id", strconv.FormatInt(opts.EntityTypeID, 10))
		}
		if opts.Search != "" {
			params.Set("search", opts.Search)
		}
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Offset > 0 {
			params.Set("offset", strconv.Itoa(opts.Offset))
		}
	}
	var resp entityListResponse
	if err := s.c.get(ctx, "/api/v1/entities", params, &resp); err != nil {
		return nil, false, err
	}
	return resp.Entities, resp.HasMore, nil
}

// Get returns a single entity by ID.
func (s *EntityService) Get(ctx context.Context, id int64) (*Entity, error) {
	var entity Entity
	if err := s.c.get(ctx, "/api/v1/entities/"+strconv.FormatInt(id, 10), nil, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// Create creates a new entity.
func (s *EntityService) Create(ctx context.Context, req *CreateEntityRequest) (*Entity, error) {
	var entity Entity
	if err := s.c.post(ctx, "/api/v1/entities", req, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// Update updates an existing entity by ID.
func (s *EntityService) Update(ctx context.Context, id int64, req *UpdateEntityRequest) (*Entity, error) {
	var entity Entity
	if err := s.c.put(ctx, "/api/v1/entities/"+strconv.FormatInt(id, 10), req, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// Delete removes an entity by ID. Incident relationships cascade.
func (s *EntityService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, "/api/v1/entities/"+strconv.FormatInt(id, 10))
}

// Relationships returns all relationships incident to an entity.
func (s *EntityService) Relationships(ctx context.Context, id int64) ([]Relationship, error) {
	var resp struct {
		Relationships []Relationship `json:"relationships"`
	}
	path := "/api/v1/entities/" + strconv.FormatInt(id, 10) + "/relationships"
	if err := s.c.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Relationships, nil
}
