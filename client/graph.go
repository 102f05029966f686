package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// GraphService handles graph exploration and statistics operations.
type GraphService struct {
	c *Client
}

// Explore performs a bounded BFS expansion from a single entity.
// A depth of 0 uses the server default.
func (s *GraphService) Explore(ctx context.Context, entityID int64, depth int) (*GraphData, error) {
	params := url.Values{}
	if depth > 0 {
		params.Set("depth", strconv.Itoa(depth))
	}
	var resp GraphData
	path := "/api/v1/graph/explore/" + strconv.FormatInt(entityID, 10)
	if err := s.c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Subgraph returns the induced subgraph over the given entity IDs.
func (s *GraphService) Subgraph(ctx context.Context, entityIDs []int64) (*GraphData, error) {
	ids := make([]string, len(entityIDs))
	for i, id := range entityIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}
	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))

	var resp GraphData
	if err := s.c.get(ctx, "/api/v1/graph/subgraph", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stats returns aggregate graph statistics.
func (s *GraphService) Stats(ctx context.Context) (*GraphStats, error) {
	var resp GraphStats
	if err := s.c.get(ctx, "/api/v1/graph/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
