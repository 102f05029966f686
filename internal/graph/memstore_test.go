package graph_test

import (
	"context"
	"slices"

	"github.com/caseboard/caseboard/internal/graph"
	"github.com/caseboard/caseboard/internal/models"
)

// memEntity is a test entity with the type metadata the resolver reports.
type memEntity struct {
	id        int64
	title     string
	typeID    int64
	typeName  string
	typeColor *string
	typeIcon  *string
}

// memRel is a test relationship with its type's labels.
type memRel struct {
	id      int64
	typeID  int64
	from    int64
	to      int64
	forward string
	reverse string
}

// memStore is an in-memory graph.Store + graph.Resolver for engine tests.
type memStore struct {
	entities map[int64]memEntity
	rels     map[int64]memRel

	existsErr   error
	incidentErr error
	amongErr    error

	incidentCalls int
}

func newMemStore() *memStore {
	return &memStore{
		entities: make(map[int64]memEntity),
		rels:     make(map[int64]memRel),
	}
}

func (m *memStore) addEntity(id int64, title, typeName string) {
	m.entities[id] = memEntity{id: id, title: title, typeID: 1, typeName: typeName}
}

func (m *memStore) addRel(id, from, to int64, forward string) {
	m.rels[id] = memRel{id: id, typeID: 1, from: from, to: to, forward: forward, reverse: forward + "_rev"}
}

func (m *memStore) EntityExists(_ context.Context, id int64) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}

	_, ok := m.entities[id]

	return ok, nil
}

func (m *memStore) IncidentRelationships(_ context.Context, entityID int64) ([]models.Relationship, error) {
	if m.incidentErr != nil {
		return nil, m.incidentErr
	}

	m.incidentCalls++

	var out []models.Relationship

	for _, r := range m.rels {
		if r.from == entityID || r.to == entityID {
			out = append(out, toModelRel(r))
		}
	}

	sortRels(out)

	return out, nil
}

func (m *memStore) RelationshipsAmong(_ context.Context, entityIDs []int64) ([]models.Relationship, error) {
	if m.amongErr != nil {
		return nil, m.amongErr
	}

	in := make(map[int64]bool, len(entityIDs))
	for _, id := range entityIDs {
		in[id] = true
	}

	var out []models.Relationship

	for _, r := range m.rels {
		if in[r.from] && in[r.to] {
			out = append(out, toModelRel(r))
		}
	}

	sortRels(out)

	return out, nil
}

func (m *memStore) ResolveEntities(_ context.Context, ids []int64) ([]graph.EntityRecord, error) {
	var out []graph.EntityRecord

	for _, id := range ids {
		e, ok := m.entities[id]
		if !ok {
			continue
		}

		out = append(out, graph.EntityRecord{
			Entity: models.Entity{
				ID:           e.id,
				EntityTypeID: e.typeID,
				Title:        e.title,
				Properties:   map[string]any{},
			},
			TypeName:  e.typeName,
			TypeColor: e.typeColor,
			TypeIcon:  e.typeIcon,
		})
	}

	return out, nil
}

func (m *memStore) ResolveRelationships(_ context.Context, ids []int64) ([]graph.RelationshipRecord, error) {
	var out []graph.RelationshipRecord

	for _, id := range ids {
		r, ok := m.rels[id]
		if !ok {
			continue
		}

		out = append(out, graph.RelationshipRecord{
			Relationship: toModelRel(r),
			ForwardLabel: r.forward,
			ReverseLabel: r.reverse,
		})
	}

	return out, nil
}

func toModelRel(r memRel) models.Relationship {
	return models.Relationship{
		ID:                 r.id,
		RelationshipTypeID: r.typeID,
		FromEntityID:       r.from,
		ToEntityID:         r.to,
		Properties:         map[string]any{},
	}
}

func sortRels(rels []models.Relationship) {
	slices.SortFunc(rels, func(a, b models.Relationship) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
}

// sampleStore builds the Alice/TechCorp/Bob fixture:
// entities {1: Person "Alice", 2: Company "TechCorp", 3: Person "Bob"},
// relationships {10: 1->2 works_for, 11: 1->3 knows}.
func sampleStore() *memStore {
	s := newMemStore()
	s.addEntity(1, "Alice", "person")
	s.addEntity(2, "TechCorp", "company")
	s.addEntity(3, "Bob", "person")
	s.addRel(10, 1, 2, "works for")
	s.addRel(11, 1, 3, "knows")

	return s
}
