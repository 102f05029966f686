package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/caseboard/caseboard/internal/api"
	"github.com/caseboard/caseboard/internal/models"
)

func TestRelationshipCreate_Valid(t *testing.T) {
	t.Parallel()

	repo := &mockRelationshipRepo{
		createFn: func(_ context.Context, req models.CreateRelationshipRequest) (*models.Relationship, error) {
			return &models.Relationship{
				ID:                 10,
				RelationshipTypeID: req.RelationshipTypeID,
				FromEntityID:       req.FromEntityID,
				ToEntityID:         req.ToEntityID,
			}, nil
		},
	}

	r := newTestRouter()
	h := api.NewRelationshipHandler(repo, testLogger())
	r.POST("/relationships", h.Create)

	w := doRequest(r, http.MethodPost, "/relationships",
		`{"relationship_type_id":1,"from_entity_id":1,"to_entity_id":2}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var rel models.Relationship
	if err := json.Unmarshal(w.Body.Bytes(), &rel); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if rel.FromEntityID != 1 || rel.ToEntityID != 2 {
		t.Errorf("endpoints not echoed: %+v", rel)
	}
}

func TestRelationshipCreate_MissingTypeID(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewRelationshipHandler(&mockRelationshipRepo{}, testLogger())
	r.POST("/relationships", h.Create)

	w := doRequest(r, http.MethodPost, "/relationships",
		`{"from_entity_id":1,"to_entity_id":2}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRelationshipCreate_MissingEndpoint(t *testing.T) {
	t.Parallel()

	repo := &mockRelationshipRepo{
		createFn: func(_ context.Context, _ models.CreateRelationshipRequest) (*models.Relationship, error) {
			return nil, models.ErrEntityNotFound
		},
	}

	r := newTestRouter()
	h := api.NewRelationshipHandler(repo, testLogger())
	r.POST("/relationships", h.Create)

	w := doRequest(r, http.MethodPost, "/relationships",
		`{"relationship_type_id":1,"from_entity_id":1,"to_entity_id":99}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRelationshipCreate_UnknownType(t *testing.T) {
	t.Parallel()

	repo := &mockRelationshipRepo{
		createFn: func(_ context.Context, _ models.CreateRelationshipRequest) (*models.Relationship, error) {
			return nil, models.ErrRelationshipTypeNotFound
		},
	}

	r := newTestRouter()
	h := api.NewRelationshipHandler(repo, testLogger())
	r.POST("/relationships", h.Create)

	w := doRequest(r, http.MethodPost, "/relationships",
		`{"relationship_type_id":99,"from_entity_id":1,"to_entity_id":2}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRelationshipList_FiltersPassed(t *testing.T) {
	t.Parallel()

	var gotFrom, gotTo, gotType int64

	repo := &mockRelationshipRepo{
		listFn: func(_ context.Context, from, to, typeID int64, _, _ int) ([]models.Relationship, bool, error) {
			gotFrom, gotTo, gotType = from, to, typeID

			return []models.Relationship{{ID: 10}}, false, nil
		},
	}

	r := newTestRouter()
	h := api.NewRelationshipHandler(repo, testLogger())
	r.GET("/relationships", h.List)

	w := doRequest(r, http.MethodGet, "/relationships?from_entity_id=1&to_entity_id=2&relationship_type_id=3", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if gotFrom != 1 || gotTo != 2 || gotType != 3 {
		t.Errorf("filters not passed through: from=%d to=%d type=%d", gotFrom, gotTo, gotType)
	}
}

func TestRelationshipList_BadFilter(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewRelationshipHandler(&mockRelationshipRepo{}, testLogger())
	r.GET("/relationships", h.List)

	w := doRequest(r, http.MethodGet, "/relationships?from_entity_id=abc", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRelationshipGet_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockRelationshipRepo{
		getFn: func(_ context.Context, _ int64) (*models.Relationship, error) {
			return nil, models.ErrRelationshipNotFound
		},
	}

	r := newTestRouter()
	h := api.NewRelationshipHandler(repo, testLogger())
	r.GET("/relationships/:id", h.Get)

	w := doRequest(r, http.MethodGet, "/relationships/99", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRelationshipUpdate_OK(t *testing.T) {
	t.Parallel()

	repo := &mockRelationshipRepo{
		updateFn: func(_ context.Context, id int64, req models.UpdateRelationshipRequest) (*models.Relationship, error) {
			return &models.Relationship{ID: id, Properties: req.Properties}, nil
		},
	}

	r := newTestRouter()
	h := api.NewRelationshipHandler(repo, testLogger())
	r.PUT("/relationships/:id", h.Update)

	w := doRequest(r, http.MethodPut, "/relationships/10", `{"properties":{"since":"2019"}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRelationshipDelete_OK(t *testing.T) {
	t.Parallel()

	repo := &mockRelationshipRepo{
		deleteFn: func(_ context.Context, _ int64) error {
			return nil
		},
	}

	r := newTestRouter()
	h := api.NewRelationshipHandler(repo, testLogger())
	r.DELETE("/relationships/:id", h.Delete)

	w := doRequest(r, http.MethodDelete, "/relationships/10", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
