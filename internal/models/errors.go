package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingName             = errors.New("name is required")
	ErrMissingDisplayName      = errors.New("display_name is required")
	ErrMissingTitle            = errors.New("title is required")
	ErrMissingEntityType       = errors.New("entity_type_id is required")
	ErrMissingRelationshipType = errors.New("relationship_type_id is required")
	ErrMissingFromEntity       = errors.New("from_entity_id is required")
	ErrMissingToEntity         = errors.New("to_entity_id is required")
	ErrMissingForwardLabel     = errors.New("forward_label is required")
	ErrMissingReverseLabel     = errors.New("reverse_label is required")
)

// Sentinel errors for lookups.
var (
	ErrEntityNotFound           = errors.New("entity not found")
	ErrEntityTypeNotFound       = errors.New("entity type not found")
	ErrRelationshipNotFound     = errors.New("relationship not found")
	ErrRelationshipTypeNotFound = errors.New("relationship type not found")
)

// Sentinel errors for graph queries.
var (
	ErrInvalidDepth = errors.New("depth must be non-negative")
	ErrEmptyIDList  = errors.New("at least one entity id is required")
)

// ErrDuplicateName indicates a unique name violation (maps to HTTP 409 Conflict).
var ErrDuplicateName = errors.New("duplicate name")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
