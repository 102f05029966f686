package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/caseboard/caseboard/internal/api"
	"github.com/caseboard/caseboard/internal/models"
)

func TestGraphExplore_OK(t *testing.T) {
	t.Parallel()

	var gotDepth int

	repo := &mockGraphRepo{
		exploreFn: func(_ context.Context, entityID int64, depth int) (*models.GraphData, error) {
			gotDepth = depth

			return &models.GraphData{
				Nodes: []models.GraphNode{
					{ID: entityID, Type: "person", Title: "Alice Monroe"},
					{ID: 2, Type: "vehicle", Title: "Black sedan"},
				},
				Edges: []models.GraphEdge{
					{ID: 10, Source: entityID, Target: 2, Label: "owns"},
				},
			}, nil
		},
	}

	r := newTestRouter()
	h := api.NewGraphHandler(repo, testLogger())
	r.GET("/graph/explore/:id", h.Explore)

	w := doRequest(r, http.MethodGet, "/graph/explore/1?depth=2", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if gotDepth != 2 {
		t.Errorf("expected depth 2 passed through, got %d", gotDepth)
	}

	var data models.GraphData
	if err := json.Unmarshal(w.Body.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(data.Nodes) != 2 || len(data.Edges) != 1 {
		t.Errorf("expected 2 nodes and 1 edge, got %d and %d", len(data.Nodes), len(data.Edges))
	}
}

func TestGraphExplore_DefaultDepth(t *testing.T) {
	t.Parallel()

	var gotDepth int

	repo := &mockGraphRepo{
		exploreFn: func(_ context.Context, _ int64, depth int) (*models.GraphData, error) {
			gotDepth = depth

			return &models.GraphData{Nodes: []models.GraphNode{}, Edges: []models.GraphEdge{}}, nil
		},
	}

	r := newTestRouter()
	h := api.NewGraphHandler(repo, testLogger())
	r.GET("/graph/explore/:id", h.Explore)

	w := doRequest(r, http.MethodGet, "/graph/explore/1", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if gotDepth != 1 {
		t.Errorf("expected default depth 1, got %d", gotDepth)
	}
}

func TestGraphExplore_EntityNotFound(t *testing.T) {
	t.Parallel()

	repo := &mockGraphRepo{
		exploreFn: func(_ context.Context, _ int64, _ int) (*models.GraphData, error) {
			return nil, models.ErrEntityNotFound
		},
	}

	r := newTestRouter()
	h := api.NewGraphHandler(repo, testLogger())
	r.GET("/graph/explore/:id", h.Explore)

	w := doRequest(r, http.MethodGet, "/graph/explore/99", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGraphExplore_NegativeDepth(t *testing.T) {
	t.Parallel()

	repo := &mockGraphRepo{
		exploreFn: func(_ context.Context, _ int64, _ int) (*models.GraphData, error) {
			return nil, models.ErrInvalidDepth
		},
	}

	r := newTestRouter()
	h := api.NewGraphHandler(repo, testLogger())
	r.GET("/graph/explore/:id", h.Explore)

	w := doRequest(r, http.MethodGet, "/graph/explore/1?depth=-1", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGraphExplore_NonNumericDepth(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewGraphHandler(&mockGraphRepo{}, testLogger())
	r.GET("/graph/explore/:id", h.Explore)

	w := doRequest(r, http.MethodGet, "/graph/explore/1?depth=deep", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGraphExplore_InvalidID(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewGraphHandler(&mockGraphRepo{}, testLogger())
	r.GET("/graph/explore/:id", h.Explore)

	w := doRequest(r, http.MethodGet, "/graph/explore/abc", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGraphSubgraph_OK(t *testing.T) {
	t.Parallel()

	var gotIDs []int64

	repo := &mockGraphRepo{
		subgraphFn: func(_ context.Context, entityIDs []int64) (*models.GraphData, error) {
			gotIDs = entityIDs

			return &models.GraphData{
				Nodes: []models.GraphNode{{ID: 1}, {ID: 2}, {ID: 3}},
				Edges: []models.GraphEdge{{ID: 10, Source: 1, Target: 3}},
			}, nil
		},
	}

	r := newTestRouter()
	h := api.NewGraphHandler(repo, testLogger())
	r.GET("/graph/subgraph", h.Subgraph)

	w := doRequest(r, http.MethodGet, "/graph/subgraph?ids=1,2,3", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if len(gotIDs) != 3 || gotIDs[0] != 1 || gotIDs[2] != 3 {
		t.Errorf("expected ids [1 2 3], got %v", gotIDs)
	}
}

func TestGraphSubgraph_MissingIDs(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewGraphHandler(&mockGraphRepo{}, testLogger())
	r.GET("/graph/subgraph", h.Subgraph)

	w := doRequest(r, http.MethodGet, "/graph/subgraph", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGraphSubgraph_BadID(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewGraphHandler(&mockGraphRepo{}, testLogger())
	r.GET("/graph/subgraph", h.Subgraph)

	w := doRequest(r, http.MethodGet, "/graph/subgraph?ids=1,abc", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGraphSubgraph_UnknownEntity(t *testing.T) {
	t.Parallel()

	repo := &mockGraphRepo{
		subgraphFn: func(_ context.Context, _ []int64) (*models.GraphData, error) {
			return nil, models.ErrEntityNotFound
		},
	}

	r := newTestRouter()
	h := api.NewGraphHandler(repo, testLogger())
	r.GET("/graph/subgraph", h.Subgraph)

	w := doRequest(r, http.MethodGet, "/graph/subgraph?ids=1,99", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGraphStats_OK(t *testing.T) {
	t.Parallel()

	repo := &mockGraphRepo{
		statsFn: func(_ context.Context) (*models.GraphStats, error) {
			return &models.GraphStats{
				TotalEntities:      42,
				TotalRelationships: 61,
				EntityTypes:        5,
				RelationshipTypes:  3,
				EntitiesByType: []models.EntityTypeCount{
					{Type: "person", DisplayName: "Person", Count: 20},
					{Type: "vehicle", DisplayName: "Vehicle", Count: 22},
				},
			}, nil
		},
	}

	r := newTestRouter()
	h := api.NewGraphHandler(repo, testLogger())
	r.GET("/graph/stats", h.Stats)

	w := doRequest(r, http.MethodGet, "/graph/stats", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var stats models.GraphStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if stats.TotalEntities != 42 || len(stats.EntitiesByType) != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
