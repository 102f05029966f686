// Package models defines data types for the investigation graph.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EntityType defines a category of entities in the ontology (e.g. Person, Company).
type EntityType struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	DisplayName    string         `json:"display_name"`
	Description    *string        `json:"description,omitempty"`
	Icon           *string        `json:"icon,omitempty"`
	Color          *string        `json:"color,omitempty"`
	PropertySchema map[string]any `json:"property_schema"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
}

// CreateEntityTypeRequest is the payload for creating a new entity type.
type CreateEntityTypeRequest struct {
	Name           string         `json:"name"`
	DisplayName    string         `json:"display_name"`
	Description    *string        `json:"description,omitempty"`
	Icon           *string        `json:"icon,omitempty"`
	Color          *string        `json:"color,omitempty"`
	PropertySchema map[string]any `json:"property_schema,omitempty"`
}

// Validate checks that required fields are present and within limits on CreateEntityTypeRequest.
func (r *CreateEntityTypeRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}

	if len(r.Name) > 100 {
		return ErrFieldTooLong("name", 100)
	}

	if r.DisplayName == "" {
		return ErrMissingDisplayName
	}

	if len(r.DisplayName) > 200 {
		return ErrFieldTooLong("display_name", 200)
	}

	return validateSchema(r.PropertySchema)
}

// UpdateEntityTypeRequest is the payload for updating an existing entity type.
// The machine name is immutable; only presentation fields and the schema change.
type UpdateEntityTypeRequest struct {
	DisplayName    *string        `json:"display_name,omitempty"`
	Description    *string        `json:"description,omitempty"`
	Icon           *string        `json:"icon,omitempty"`
	Color          *string        `json:"color,omitempty"`
	PropertySchema map[string]any `json:"property_schema,omitempty"`
}

// Validate checks UpdateEntityTypeRequest fields.
func (r *UpdateEntityTypeRequest) Validate() error {
	if r.DisplayName != nil && *r.DisplayName == "" {
		return fmt.Errorf("display_name cannot be empty")
	}

	if r.DisplayName != nil && len(*r.DisplayName) > 200 {
		return ErrFieldTooLong("display_name", 200)
	}

	return validateSchema(r.PropertySchema)
}

// validateSchema bounds the serialized size of a property schema.
func validateSchema(schema map[string]any) error {
	if schema == nil {
		return nil
	}

	data, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("invalid property_schema: %w", err)
	}

	if len(data) > maxPropertiesBytes {
		return ErrFieldTooLong("property_schema", maxPropertiesBytes)
	}

	return nil
}
