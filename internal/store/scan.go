package store

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caseboard/caseboard/internal/models"
)

// Column lists for each table, kept next to the scan helpers that consume them.
const (
	entityTypeColumns = `id, name, display_name, description, icon, color,
	property_schema, created_at, updated_at`

	entityColumns = `id, entity_type_id, title, description, properties,
	created_at, updated_at, created_by`

	relationshipTypeColumns = `id, name, display_name, description,
	forward_label, reverse_label, color, line_style, property_schema,
	created_at, updated_at`

	relationshipColumns = `id, relationship_type_id, from_entity_id,
	to_entity_id, properties, created_at, updated_at, created_by`
)

// scanEntityType scans a single row into a models.EntityType.
func scanEntityType(scan func(dest ...any) error) (*models.EntityType, error) {
	var t models.EntityType
	var schema []byte

	err := scan(
		&t.ID,
		&t.Name,
		&t.DisplayName,
		&t.Description,
		&t.Icon,
		&t.Color,
		&schema,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(schema, &t.PropertySchema); err != nil {
		return nil, fmt.Errorf("unmarshalling entity type schema: %w", err)
	}

	return &t, nil
}

// scanEntity scans a single row into a models.Entity.
func scanEntity(scan func(dest ...any) error) (*models.Entity, error) {
	var e models.Entity
	var props []byte

	err := scan(
		&e.ID,
		&e.EntityTypeID,
		&e.Title,
		&e.Description,
		&props,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.CreatedBy,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(props, &e.Properties); err != nil {
		return nil, fmt.Errorf("unmarshalling entity properties: %w", err)
	}

	return &e, nil
}

// scanRelationshipType scans a single row into a models.RelationshipType.
func scanRelationshipType(scan func(dest ...any) error) (*models.RelationshipType, error) {
	var t models.RelationshipType
	var schema []byte

	err := scan(
		&t.ID,
		&t.Name,
		&t.DisplayName,
		&t.Description,
		&t.ForwardLabel,
		&t.ReverseLabel,
		&t.Color,
		&t.LineStyle,
		&schema,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(schema, &t.PropertySchema); err != nil {
		return nil, fmt.Errorf("unmarshalling relationship type schema: %w", err)
	}

	return &t, nil
}

// scanRelationship scans a single row into a models.Relationship.
func scanRelationship(scan func(dest ...any) error) (*models.Relationship, error) {
	var r models.Relationship
	var props []byte

	err := scan(
		&r.ID,
		&r.RelationshipTypeID,
		&r.FromEntityID,
		&r.ToEntityID,
		&props,
		&r.CreatedAt,
		&r.UpdatedAt,
		&r.CreatedBy,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(props, &r.Properties); err != nil {
		return nil, fmt.Errorf("unmarshalling relationship properties: %w", err)
	}

	return &r, nil
}

// collectEntities scans all rows into an entity slice.
func collectEntities(rows pgx.Rows) ([]models.Entity, error) {
	entities := make([]models.Entity, 0, 16)

	for rows.Next() {
		e, err := scanEntity(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning entity row: %w", err)
		}

		entities = append(entities, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entity rows: %w", err)
	}

	return entities, nil
}

// collectRelationships scans all rows into a relationship slice.
func collectRelationships(rows pgx.Rows) ([]models.Relationship, error) {
	rels := make([]models.Relationship, 0, 16)

	for rows.Next() {
		r, err := scanRelationship(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning relationship row: %w", err)
		}

		rels = append(rels, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating relationship rows: %w", err)
	}

	return rels, nil
}

// scanJoined scans an entity row followed by joined entity-type columns.
func scanJoined(scan func(dest ...any) error, typeName *string, typeColor, typeIcon **string) (*models.Entity, error) {
	var e models.Entity
	var props []byte

	err := scan(
		&e.ID,
		&e.EntityTypeID,
		&e.Title,
		&e.Description,
		&props,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.CreatedBy,
		typeName,
		typeColor,
		typeIcon,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalInto(props, &e.Properties); err != nil {
		return nil, err
	}

	return &e, nil
}

// unmarshalInto decodes a jsonb payload into a properties mapping.
func unmarshalInto(data []byte, dst *map[string]any) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshalling properties: %w", err)
	}

	return nil
}

// marshalProps serializes a properties or schema mapping, defaulting nil to {}.
func marshalProps(props map[string]any) ([]byte, error) {
	if props == nil {
		props = map[string]any{}
	}

	data, err := json.Marshal(props)
	if err != nil {
		return nil, fmt.Errorf("marshalling properties: %w", err)
	}

	return data, nil
}
