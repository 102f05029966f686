package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/caseboard/caseboard/internal/models"
	"github.com/caseboard/caseboard/internal/store"
)

func TestCreateEntity(t *testing.T) {
	base := setupTestBase(t)
	typ := mustCreateEntityType(t, base, "person")
	es := store.NewEntityStore(base)
	ctx := context.Background()

	req := models.CreateEntityRequest{
		EntityTypeID: typ.ID,
		Title:        "Alice Monroe",
		Properties:   map[string]any{"age": float64(34)},
	}

	entity, err := es.CreateEntity(ctx, req)
	if err != nil {
		t.Fatalf("CreateEntity: %v", err)
	}

	if entity.ID <= 0 {
		t.Error("ID not assigned")
	}
	if entity.Title != "Alice Monroe" {
		t.Errorf("Title = %q, want %q", entity.Title, "Alice Monroe")
	}
	if entity.Properties["age"] != float64(34) {
		t.Errorf("Properties[age] = %v, want 34", entity.Properties["age"])
	}
}

func TestCreateEntity_UnknownType(t *testing.T) {
	base := setupTestBase(t)
	es := store.NewEntityStore(base)

	_, err := es.CreateEntity(context.Background(), models.CreateEntityRequest{
		EntityTypeID: 999999,
		Title:        "Orphan",
	})
	if !errors.Is(err, models.ErrEntityTypeNotFound) {
		t.Fatalf("expected ErrEntityTypeNotFound, got %v", err)
	}
}

func TestGetEntity_Roundtrip(t *testing.T) {
	base := setupTestBase(t)
	typ := mustCreateEntityType(t, base, "vehicle")
	created := mustCreateEntity(t, base, typ.ID, "Black sedan")
	es := store.NewEntityStore(base)

	got, err := es.GetEntity(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetEntity: %v", err)
	}

	if got.ID != created.ID || got.Title != "Black sedan" {
		t.Errorf("got %+v, want id=%d title=%q", got, created.ID, "Black sedan")
	}
}

func TestGetEntity_NotFound(t *testing.T) {
	base := setupTestBase(t)
	es := store.NewEntityStore(base)

	_, err := es.GetEntity(context.Background(), 999999)
	if !errors.Is(err, models.ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}
}

func TestUpdateEntity_PartialFields(t *testing.T) {
	base := setupTestBase(t)
	typ := mustCreateEntityType(t, base, "person")
	created := mustCreateEntity(t, base, typ.ID, "Alice Monroe")
	es := store.NewEntityStore(base)

	title := "Alice M. Monroe"
	updated, err := es.UpdateEntity(context.Background(), created.ID, models.UpdateEntityRequest{
		Title: &title,
	})
	if err != nil {
		t.Fatalf("UpdateEntity: %v", err)
	}

	if updated.Title != title {
		t.Errorf("Title = %q, want %q", updated.Title, title)
	}
	if updated.EntityTypeID != typ.ID {
		t.Errorf("EntityTypeID changed: %d", updated.EntityTypeID)
	}
	if updated.UpdatedAt == nil {
		t.Error("UpdatedAt not set after update")
	}
}

func TestDeleteEntity_CascadesRelationships(t *testing.T) {
	base := setupTestBase(t)
	typ := mustCreateEntityType(t, base, "person")
	relType := mustCreateRelationshipType(t, base, "knows")
	a := mustCreateEntity(t, base, typ.ID, "Alice")
	b := mustCreateEntity(t, base, typ.ID, "Bob")
	rel := mustCreateRelationship(t, base, relType.ID, a.ID, b.ID)

	es := store.NewEntityStore(base)
	if err := es.DeleteEntity(context.Background(), a.ID); err != nil {
		t.Fatalf("DeleteEntity: %v", err)
	}

	rs := store.NewRelationshipStore(base)
	_, err := rs.GetRelationship(context.Background(), rel.ID)
	if !errors.Is(err, models.ErrRelationshipNotFound) {
		t.Fatalf("expected relationship cascade-deleted, got %v", err)
	}
}

func TestListEntities_SearchAndPagination(t *testing.T) {
	base := setupTestBase(t)
	typ := mustCreateEntityType(t, base, "person")
	mustCreateEntity(t, base, typ.ID, "Alice Monroe")
	mustCreateEntity(t, base, typ.ID, "Bob Drake")
	mustCreateEntity(t, base, typ.ID, "Alice Drake")

	es := store.NewEntityStore(base)
	ctx := context.Background()

	entities, hasMore, err := es.ListEntities(ctx, typ.ID, "alice", 1, 0)
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	if len(entities) != 1 {
		t.Fatalf("expected 1 entity page, got %d", len(entities))
	}
	if !hasMore {
		t.Error("expected hasMore with a second matching row")
	}

	entities, hasMore, err = es.ListEntities(ctx, typ.ID, "alice", 10, 1)
	if err != nil {
		t.Fatalf("ListEntities offset: %v", err)
	}
	if len(entities) != 1 || hasMore {
		t.Errorf("expected final page of 1, got %d (hasMore=%v)", len(entities), hasMore)
	}
}

func TestCreateEntityType_DuplicateName(t *testing.T) {
	base := setupTestBase(t)
	mustCreateEntityType(t, base, "person")

	ts := store.NewEntityTypeStore(base)
	_, err := ts.CreateEntityType(context.Background(), models.CreateEntityTypeRequest{
		Name:        "person",
		DisplayName: "Person",
	})
	if !errors.Is(err, models.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestEntityRelationships_BothDirections(t *testing.T) {
	base := setupTestBase(t)
	typ := mustCreateEntityType(t, base, "person")
	relType := mustCreateRelationshipType(t, base, "knows")
	a := mustCreateEntity(t, base, typ.ID, "Alice")
	b := mustCreateEntity(t, base, typ.ID, "Bob")
	c := mustCreateEntity(t, base, typ.ID, "Carol")
	mustCreateRelationship(t, base, relType.ID, a.ID, b.ID)
	mustCreateRelationship(t, base, relType.ID, c.ID, a.ID)

	es := store.NewEntityStore(base)
	rels, err := es.EntityRelationships(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("EntityRelationships: %v", err)
	}

	if len(rels) != 2 {
		t.Fatalf("expected 2 incident relationships, got %d", len(rels))
	}
}
