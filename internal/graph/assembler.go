package graph

import (
	"context"
	"fmt"

	"github.com/caseboard/caseboard/internal/models"
)

// Type tags distinguishing node and edge payloads in rendered graphs.
const (
	nodeType = "entity"
	edgeType = "relationship"
)

// Assembler converts the raw visited sets of an expansion into a
// presentation-neutral GraphData, resolving rendering metadata through a
// single batched lookup per kind.
type Assembler struct {
	resolver Resolver
}

// NewAssembler creates an Assembler.
func NewAssembler(resolver Resolver) *Assembler {
	return &Assembler{resolver: resolver}
}

// Assemble resolves the visited IDs in res and projects them into GraphData.
// Output order follows res exactly; no re-sorting happens here, so repeated
// identical explorations render identically.
//
// An entity deleted between traversal and assembly is skipped, and any edge
// touching a skipped entity is dropped with it: every emitted edge's source
// and target are guaranteed to be present in the node list.
func (a *Assembler) Assemble(ctx context.Context, res *Result) (*models.GraphData, error) {
	entities, err := a.resolver.ResolveEntities(ctx, res.EntityIDs)
	if err != nil {
		return nil, fmt.Errorf("resolving %d entities: %w", len(res.EntityIDs), err)
	}

	rels, err := a.resolver.ResolveRelationships(ctx, res.RelationshipIDs)
	if err != nil {
		return nil, fmt.Errorf("resolving %d relationships: %w", len(res.RelationshipIDs), err)
	}

	entityByID := make(map[int64]*EntityRecord, len(entities))
	for i := range entities {
		entityByID[entities[i].Entity.ID] = &entities[i]
	}

	relByID := make(map[int64]*RelationshipRecord, len(rels))
	for i := range rels {
		relByID[rels[i].Relationship.ID] = &rels[i]
	}

	data := &models.GraphData{
		Nodes: make([]models.GraphNode, 0, len(entities)),
		Edges: make([]models.GraphEdge, 0, len(rels)),
	}

	present := make(map[int64]bool, len(entities))

	for _, id := range res.EntityIDs {
		rec, ok := entityByID[id]
		if !ok {
			continue
		}

		data.Nodes = append(data.Nodes, projectNode(rec))
		present[id] = true
	}

	for _, id := range res.RelationshipIDs {
		rec, ok := relByID[id]
		if !ok {
			continue
		}

		if !present[rec.Relationship.FromEntityID] || !present[rec.Relationship.ToEntityID] {
			continue
		}

		data.Edges = append(data.Edges, projectEdge(rec))
	}

	return data, nil
}

// projectNode maps an entity record to a GraphNode, inheriting color and
// icon from the entity type (entities carry no rendering fields of their own).
func projectNode(rec *EntityRecord) models.GraphNode {
	return models.GraphNode{
		ID:             rec.Entity.ID,
		Type:           nodeType,
		Title:          rec.Entity.Title,
		EntityTypeID:   rec.Entity.EntityTypeID,
		EntityTypeName: rec.TypeName,
		Properties:     rec.Entity.Properties,
		Color:          rec.TypeColor,
		Icon:           rec.TypeIcon,
	}
}

// projectEdge maps a relationship record to a GraphEdge drawn from
// from_entity to to_entity, labeled with the type's forward label.
func projectEdge(rec *RelationshipRecord) models.GraphEdge {
	return models.GraphEdge{
		ID:                 rec.Relationship.ID,
		Source:             rec.Relationship.FromEntityID,
		Target:             rec.Relationship.ToEntityID,
		Type:               edgeType,
		Label:              rec.ForwardLabel,
		ReverseLabel:       rec.ReverseLabel,
		RelationshipTypeID: rec.Relationship.RelationshipTypeID,
		Properties:         rec.Relationship.Properties,
		Color:              rec.TypeColor,
	}
}
