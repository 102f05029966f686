package client

import (
	"context"
	"net/url"
	"strconv"
)

// RelationshipService handles relationship CRUD operations.
type RelationshipService struct {
	c *Client
}

// relationshipListResponse wraps the paginated relationship list response.
type relationshipListResponse struct {
	Relationships []Relationship `json:"relationships"`
	HasMore       bool           `json:"has_more"`
}

// List returns relationships with optional endpoint and type filters.
func (s *RelationshipService) List(ctx context.Context, opts *RelationshipListOptions) ([]Relationship, bool, error) {
	params := url.Values{}
	if opts != nil {
		if opts.FromEntityID > 0 {
			params.Set("from_entity_id", strconv.FormatInt(opts.FromEntityID, 10))
		}
		if opts.ToEntityID > 0 {
			params.Set("to_entity_id", strconv.FormatInt(opts.ToEntityID, 10))
		}
		if opts.RelationshipTypeID > 0 {
			params.Set("relationship_type_id", strconv.FormatInt(opts.RelationshipTypeID, 10))
		}
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Offset > 0 {
			params.Set("offset", strconv.Itoa(opts.Offset))
		}
	}
	var resp relationshipListResponse
	if err := s.c.get(ctx, "/api/v1/relationships", params, &resp); err != nil {
		return nil, false, err
	}
	return resp.Relationships, resp.HasMore, nil
}

// Get returns a single relationship by ID.
func (s *RelationshipService) Get(ctx context.Context, id int64) (*Relationship, error) {
	var rel Relationship
	if err := s.c.get(ctx, "/api/v1/relationships/"+strconv.FormatInt(id, 10), nil, &rel); err != nil {
		return nil, err
	}
	return &rel, nil
}

// Create creates a new relationship between two entities.
func (s *RelationshipService) Create(ctx context.Context, req *CreateRelationshipRequest) (*Relationship, error) {
	var rel Relationship
	if err := s.c.post(ctx, "/api/v1/relationships", req, &rel); err != nil {
		return nil, err
	}
	return &rel, nil
}

// Update updates an existing relationship by ID.
func (s *RelationshipService) Update(ctx context.Context, id int64, req *UpdateRelationshipRequest) (*Relationship, error) {
	var rel Relationship
	if err := s.c.put(ctx, "/api/v1/relationships/"+strconv.FormatInt(id, 10), req, &rel); err != nil {
		return nil, err
	}
	return &rel, nil
}

// Delete removes a relationship by ID.
func (s *RelationshipService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, "/api/v1/relationships/"+strconv.FormatInt(id, 10))
}
