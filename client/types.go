package client

import "time"

// EntityType describes a kind of entity in the ontology.
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

// RelationshipType describes a kind of relationship in the ontology.
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

// Entity is a node in the investigation graph.
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

// Relationship is a directed typed edge between two entities.
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

// CreateEntityTypeRequest is the payload for creating an entity type.
type CreateEntityTypeRequest struct {
	Name           string         `json:"name"`
	DisplayName    string         `json:"display_name"`
	Description    *string        `json:"description,omitempty"`
	Icon           *string        `json:"icon,omitempty"`
	Color          *string        `json:"color,omitempty"`
	PropertySchema map[string]any `json:"property_schema,omitempty"`
}

// UpdateEntityTypeRequest is the payload for updating an entity type.
type UpdateEntityTypeRequest struct {
	DisplayName    *string        `json:"display_name,omitempty"`
	Description    *string        `json:"description,omitempty"`
	Icon           *string        `json:"icon,omitempty"`
	Color          *string        `json:"color,omitempty"`
	PropertySchema map[string]any `json:"property_schema,omitempty"`
}

// CreateRelationshipTypeRequest is the payload for creating a relationship type.
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

// UpdateRelationshipTypeRequest is the payload for updating a relationship type.
type UpdateRelationshipTypeRequest struct {
	DisplayName    *string        `json:"display_name,omitempty"`
	Description    *string        `json:"description,omitempty"`
	ForwardLabel   *string        `json:"forward_label,omitempty"`
	ReverseLabel   *string        `json:"reverse_label,omitempty"`
	Color          *string        `json:"color,omitempty"`
	LineStyle      *string        `json:"line_style,omitempty"`
	PropertySchema map[string]any `json:"property_schema,omitempty"`
}

// CreateEntityRequest is the payload for creating an entity.
type CreateEntityRequest struct {
	EntityTypeID int64          `json:"entity_type_id"`
	Title        string         `json:"title"`
	Description  *string        `json:"description,omitempty"`
	Properties   map[string]any `json:"properties,omitempty"`
}

// UpdateEntityRequest is the payload for updating an entity.
type UpdateEntityRequest struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
}

// CreateRelationshipRequest is the payload for creating a relationship.
type CreateRelationshipRequest struct {
	RelationshipTypeID int64          `json:"relationship_type_id"`
	FromEntityID       int64          `json:"from_entity_id"`
	ToEntityID         int64          `json:"to_entity_id"`
	Properties         map[string]any `json:"properties,omitempty"`
}

// UpdateRelationshipRequest is the payload for updating a relationship.
type UpdateRelationshipRequest struct {
	Properties map[string]any `json:"properties,omitempty"`
}

// GraphNode is a rendered node in an explore or subgraph result.
type GraphNode struct {
	ID             int64          `json:"id"`
	Type           string         `json:"type"`
	Title          string         `json:"title"`
	EntityTypeID   int64          `json:"entity_type_id"`
	EntityTypeName string         `json:"entity_type_name"`
	Properties     map[string]any `json:"properties"`
	Color          *string        `json:"color,omitempty"`
	Icon           *string        `json:"icon,omitempty"`
}

// GraphEdge is a rendered edge in an explore or subgraph result.
type GraphEdge struct {
	ID                 int64          `json:"id"`
	Source             int64          `json:"source"`
	Target             int64          `json:"target"`
	Type               string         `json:"type"`
	Label              string         `json:"label"`
	ReverseLabel       string         `json:"reverse_label"`
	RelationshipTypeID int64          `json:"relationship_type_id"`
	Properties         map[string]any `json:"properties"`
	Color              *string        `json:"color,omitempty"`
}

// GraphData holds a renderable subgraph.
type GraphData struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// EntityTypeCount is one row of the per-type entity breakdown.
type EntityTypeCount struct {
	Type        string `json:"type"`
	DisplayName string `json:"display_name"`
	Count       int    `json:"count"`
}

// GraphStats holds aggregate counts over the whole store.
type GraphStats struct {
	TotalEntities      int               `json:"total_entities"`
	TotalRelationships int               `json:"total_relationships"`
	EntityTypes        int               `json:"entity_types"`
	RelationshipTypes  int               `json:"relationship_types"`
	EntitiesByType     []EntityTypeCount `json:"entities_by_type"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadinessResponse is returned by the readiness endpoint.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// EntityListOptions holds parameters for listing entities.
type EntityListOptions struct {
	EntityTypeID int64
	Search       string
	Limit        int
	Offset       int
}

// RelationshipListOptions holds parameters for listing relationships.
type RelationshipListOptions struct {
	FromEntityID       int64
	ToEntityID         int64
	RelationshipTypeID int64
	Limit              int
	Offset             int
}
