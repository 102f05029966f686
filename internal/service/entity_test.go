package service

import (
	"context"
	"errors"
	"testing"

	"github.com/caseboard/caseboard/internal/models"
)

func TestEntityService_CreateEntity(t *testing.T) {
	tests := []struct {
		name     string
		req      models.CreateEntityRequest
		storeErr error
		wantErr  error
	}{
		{
			name: "success",
			req:  models.CreateEntityRequest{EntityTypeID: 1, Title: "Alice"},
		},
		{
			name:    "missing title",
			req:     models.CreateEntityRequest{EntityTypeID: 1},
			wantErr: models.ErrMissingTitle,
		},
		{
			name:    "missing entity type",
			req:     models.CreateEntityRequest{Title: "Alice"},
			wantErr: models.ErrMissingEntityType,
		},
		{
			name:     "store error",
			req:      models.CreateEntityRequest{EntityTypeID: 1, Title: "Alice"},
			storeErr: errors.New("fail"),
			wantErr:  errors.New("fail"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &mockEntityStore{
				createEntity: func(_ context.Context, req models.CreateEntityRequest) (*models.Entity, error) {
					if tc.storeErr != nil {
						return nil, tc.storeErr
					}
					return &models.Entity{ID: 1, EntityTypeID: req.EntityTypeID, Title: req.Title}, nil
				},
			}

			svc := NewEntityService(store, testLogger())
			entity, err := svc.CreateEntity(context.Background(), tc.req)

			if tc.wantErr != nil {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if entity.Title != "Alice" {
				t.Errorf("title = %q, want %q", entity.Title, "Alice")
			}
		})
	}
}

func TestEntityService_UpdateEntity_RejectsEmptyTitle(t *testing.T) {
	empty := ""
	store := &mockEntityStore{
		updateEntity: func(_ context.Context, _ int64, _ models.UpdateEntityRequest) (*models.Entity, error) {
			t.Fatal("store should not be reached on validation failure")
			return nil, nil
		},
	}

	svc := NewEntityService(store, testLogger())
	if _, err := svc.UpdateEntity(context.Background(), 1, models.UpdateEntityRequest{Title: &empty}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestEntityService_DeleteEntity(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
	}{
		{name: "success"},
		{name: "not found", storeErr: models.ErrEntityNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &mockEntityStore{
				deleteEntity: func(_ context.Context, _ int64) error { return tc.storeErr },
			}

			svc := NewEntityService(store, testLogger())
			err := svc.DeleteEntity(context.Background(), 1)

			if !errors.Is(err, tc.storeErr) {
				t.Errorf("err = %v, want %v", err, tc.storeErr)
			}
		})
	}
}

func TestEntityService_ListEntities(t *testing.T) {
	store := &mockEntityStore{
		listEntities: func(_ context.Context, _ int64, _ string, _, _ int) ([]models.Entity, bool, error) {
			return []models.Entity{{ID: 1, Title: "Alice"}}, true, nil
		},
	}

	svc := NewEntityService(store, testLogger())
	entities, hasMore, err := svc.ListEntities(context.Background(), 0, "", 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entities) != 1 {
		t.Errorf("got %d entities, want 1", len(entities))
	}
	if !hasMore {
		t.Error("expected hasMore=true")
	}
}

func TestRelationshipService_CreateRelationship(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateRelationshipRequest
		wantErr error
	}{
		{
			name: "success",
			req:  models.CreateRelationshipRequest{RelationshipTypeID: 1, FromEntityID: 1, ToEntityID: 2},
		},
		{
			name:    "missing type",
			req:     models.CreateRelationshipRequest{FromEntityID: 1, ToEntityID: 2},
			wantErr: models.ErrMissingRelationshipType,
		},
		{
			name:    "missing endpoint",
			req:     models.CreateRelationshipRequest{RelationshipTypeID: 1, FromEntityID: 1},
			wantErr: models.ErrMissingToEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &mockRelationshipStore{
				createRelationship: func(_ context.Context, req models.CreateRelationshipRequest) (*models.Relationship, error) {
					return &models.Relationship{ID: 10, RelationshipTypeID: req.RelationshipTypeID, FromEntityID: req.FromEntityID, ToEntityID: req.ToEntityID}, nil
				},
			}

			svc := NewRelationshipService(store, testLogger())
			rel, err := svc.CreateRelationship(context.Background(), tc.req)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rel.ID != 10 {
				t.Errorf("id = %d, want 10", rel.ID)
			}
		})
	}
}
