package models

import (
	"fmt"
	"time"
)

// RelationshipType defines a category of directed relationships with
// direction-aware labels, e.g. forward "works for" / reverse "employs".
type RelationshipType struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	DisplayName    string         `json:"display_name"`
	Description    *string        `json:"description,omitempty"`
	ForwardLabel   string         `json:"forward_label"`
	ReverseLabel   string         `json:"reverse_label"`
	Color          *string        `json:"color,omitempty"`
	LineStyle      *string        `json:"line_style,omitempty"`
	PropertySchema map[string]any `json:"property_schema"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
}

// CreateRelationshipTypeRequest is the payload for creating a new relationship type.
type CreateRelationshipTypeRequest struct {
	Name           string         `json:"name"`
	DisplayName    string         `json:"display_name"`
	Description    *string        `json:"description,omitempty"`
	ForwardLabel   string         `json:"forward_label"`
	ReverseLabel   string         `json:"reverse_label"`
	Color          *string        `json:"color,omitempty"`
	LineStyle      *string        `json:"line_style,omitempty"`
	PropertySchema map[string]any `json:"property_schema,omitempty"`
}

// Validate checks that required fields are present and within limits on CreateRelationshipTypeRequest.
func (r *CreateRelationshipTypeRequest) Validate() error {
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

	if r.ForwardLabel == "" {
		return ErrMissingForwardLabel
	}

	if len(r.ForwardLabel) > 100 {
		return ErrFieldTooLong("forward_label", 100)
	}

	if r.ReverseLabel == "" {
		return ErrMissingReverseLabel
	}

	if len(r.ReverseLabel) > 100 {
		return ErrFieldTooLong("reverse_label", 100)
	}

	return validateSchema(r.PropertySchema)
}

// UpdateRelationshipTypeRequest is the payload for updating an existing relationship type.
type UpdateRelationshipTypeRequest struct {
	DisplayName    *string        `json:"display_name,omitempty"`
	Description    *string        `json:"description,omitempty"`
	ForwardLabel   *string        `json:"forward_label,omitempty"`
	ReverseLabel   *string        `json:"reverse_label,omitempty"`
	Color          *string        `json:"color,omitempty"`
	LineStyle      *string        `json:"line_style,omitempty"`
	PropertySchema map[string]any `json:"property_schema,omitempty"`
}

// Validate checks UpdateRelationshipTypeRequest fields.
func (r *UpdateRelationshipTypeRequest) Validate() error {
	if r.DisplayName != nil && *r.DisplayName == "" {
		return fmt.Errorf("display_name cannot be empty")
	}

	if r.DisplayName != nil && len(*r.DisplayName) > 200 {
		return ErrFieldTooLong("display_name", 200)
	}

	if r.ForwardLabel != nil && (*r.ForwardLabel == "" || len(*r.ForwardLabel) > 100) {
		return fmt.Errorf("forward_label must be 1-100 characters")
	}

	if r.ReverseLabel != nil && (*r.ReverseLabel == "" || len(*r.ReverseLabel) > 100) {
		return fmt.Errorf("reverse_label must be 1-100 characters")
	}

	return validateSchema(r.PropertySchema)
}
