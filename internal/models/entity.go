package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// maxPropertiesBytes caps the serialized size of a properties mapping (64 KB).
const maxPropertiesBytes = 65536

// Entity represents a record in the investigation graph: one node per
// real-world thing (a person, a company, an event).
type Entity struct {
	ID           int64          `json:"id"`
	EntityTypeID int64          `json:"entity_type_id"`
	Title        string         `json:"title"`
	Description  *string        `json:"description,omitempty"`
	Properties   map[string]any `json:"properties"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
	CreatedBy    *int64         `json:"created_by,omitempty"`
}

// EntityWithType is an Entity joined with its type row for responses
// that need rendering metadata.
type EntityWithType struct {
	Entity
	EntityType EntityType `json:"entity_type"`
}

// CreateEntityRequest is the payload for creating a new entity.
type CreateEntityRequest struct {
	EntityTypeID int64          `json:"entity_type_id"`
	Title        string         `json:"title"`
	Description  *string        `json:"description,omitempty"`
	Properties   map[string]any `json:"properties,omitempty"`
}

// Validate checks that required fields are present and within limits on CreateEntityRequest.
func (r *CreateEntityRequest) Validate() error {
	if r.EntityTypeID <= 0 {
		return ErrMissingEntityType
	}

	if r.Title == "" {
		return ErrMissingTitle
	}

	if len(r.Title) > 500 {
		return ErrFieldTooLong("title", 500)
	}

	return validateProperties(r.Properties)
}

// UpdateEntityRequest is the payload for updating an existing entity.
// The entity type is immutable after creation.
type UpdateEntityRequest struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
}

// Validate checks UpdateEntityRequest fields.
func (r *UpdateEntityRequest) Validate() error {
	if r.Title != nil && *r.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if r.Title != nil && len(*r.Title) > 500 {
		return ErrFieldTooLong("title", 500)
	}

	return validateProperties(r.Properties)
}

// validateProperties bounds the serialized size of a properties mapping.
func validateProperties(props map[string]any) error {
	if props == nil {
		return nil
	}

	data, err := json.Marshal(props)
	if err != nil {
		return fmt.Errorf("invalid properties: %w", err)
	}

	if len(data) > maxPropertiesBytes {
		return ErrFieldTooLong("properties", maxPropertiesBytes)
	}

	return nil
}
