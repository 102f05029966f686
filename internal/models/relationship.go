package models

import "time"

// Relationship represents a directed edge between two entities. The edge
// records a direction for display, but traversal treats adjacency as
// bidirectional for reachability.
type Relationship struct {
	ID                 int64          `json:"id"`
	RelationshipTypeID int64          `json:"relationship_type_id"`
	FromEntityID       int64          `json:"from_entity_id"`
	ToEntityID         int64          `json:"to_entity_id"`
	Properties         map[string]any `json:"properties"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          *time.Time     `json:"updated_at,omitempty"`
	CreatedBy          *int64         `json:"created_by,omitempty"`
}

// OtherEnd returns the endpoint of r that is not entityID. Callers must
// ensure entityID is one of the endpoints; self-loops return entityID.
func (r *Relationship) OtherEnd(entityID int64) int64 {
	if r.FromEntityID == entityID {
		return r.ToEntityID
	}

	return r.FromEntityID
}

// RelationshipWithType is a Relationship joined with its type row.
type RelationshipWithType struct {
	Relationship
	RelationshipType RelationshipType `json:"relationship_type"`
}

// CreateRelationshipRequest is the payload for creating a new relationship.
type CreateRelationshipRequest struct {
	RelationshipTypeID int64          `json:"relationship_type_id"`
	FromEntityID       int64          `json:"from_entity_id"`
	ToEntityID         int64          `json:"to_entity_id"`
	Properties         map[string]any `json:"properties,omitempty"`
}

// Validate checks that required references are present on CreateRelationshipRequest.
func (r *CreateRelationshipRequest) Validate() error {
	if r.RelationshipTypeID <= 0 {
		return ErrMissingRelationshipType
	}

	if r.FromEntityID <= 0 {
		return ErrMissingFromEntity
	}

	if r.ToEntityID <= 0 {
		return ErrMissingToEntity
	}

	return validateProperties(r.Properties)
}

// UpdateRelationshipRequest is the payload for updating an existing
// relationship. Endpoints and type are immutable; only properties change.
type UpdateRelationshipRequest struct {
	Properties map[string]any `json:"properties,omitempty"`
}

// Validate checks UpdateRelationshipRequest fields.
func (r *UpdateRelationshipRequest) Validate() error {
	return validateProperties(r.Properties)
}
