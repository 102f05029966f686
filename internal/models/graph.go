package models

// GraphNode is the presentation-neutral projection of a visited entity.
// Rendering hints (color, icon) are inherited from the owning EntityType.
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

// GraphEdge is the projection of a visited relationship. Label is the
// forward label of the relationship type; the reverse label is carried
// separately so a UI can render the edge read backwards.
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

// GraphData is the renderable subgraph returned by explore and subgraph
// queries. Node and edge order is stable: repeated calls with identical
// inputs against an unchanged store produce identical output.
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
