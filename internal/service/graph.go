package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/caseboard/caseboard/internal/domain"
	"github.com/caseboard/caseboard/internal/graph"
	"github.com/caseboard/caseboard/internal/metrics"
	"github.com/caseboard/caseboard/internal/models"
)

// Explorer runs bounded breadth-first expansions over the entity graph.
type Explorer interface {
	Explore(ctx context.Context, seedID int64, depth int) (*graph.Result, error)
	ExploreSet(ctx context.Context, seedIDs []int64, depth int) (*graph.Result, error)
}

// Assembler resolves an expansion result into renderable graph data.
type Assembler interface {
	Assemble(ctx context.Context, res *graph.Result) (*models.GraphData, error)
}

// StatsCollector computes aggregate counts over the whole graph.
type StatsCollector interface {
	CollectStats(ctx context.Context) (*models.GraphStats, error)
}

// Compile-time check: *GraphService must satisfy domain.GraphService.
var _ domain.GraphService = (*GraphService)(nil)

// GraphService composes the exploration engine with the assembler and exposes
// the aggregate stats view. It owns the exploration metrics.
type GraphService struct {
	explorer  Explorer
	assembler Assembler
	stats     StatsCollector
	log       *logrus.Logger
}

// NewGraphService creates a GraphService.
func NewGraphService(explorer Explorer, assembler Assembler, stats StatsCollector, log *logrus.Logger) *GraphService {
	return &GraphService{explorer: explorer, assembler: assembler, stats: stats, log: log}
}

// Explore expands the graph around a single entity up to depth hops and
// returns the induced subgraph in renderable form.
func (s *GraphService) Explore(ctx context.Context, entityID int64, depth int) (*models.GraphData, error) {
	start := time.Now()

	res, err := s.explorer.Explore(ctx, entityID, depth)
	if err != nil {
		return nil, err
	}

	data, err := s.assembler.Assemble(ctx, res)
	if err != nil {
		return nil, err
	}

	metrics.ExploreDepth.Observe(float64(depth))
	metrics.ExploreDuration.Observe(time.Since(start).Seconds())

	s.log.WithFields(logrus.Fields{
		"entity_id": entityID,
		"depth":     depth,
		"nodes":     len(data.Nodes),
		"edges":     len(data.Edges),
		"duration":  time.Since(start).String(),
	}).Debug("graph.explore")

	return data, nil
}

// Subgraph returns the induced subgraph over exactly the given entities: the
// entities themselves plus every relationship connecting two of them.
func (s *GraphService) Subgraph(ctx context.Context, entityIDs []int64) (*models.GraphData, error) {
	// Depth 0 over the seed set is precisely the induced subgraph.
	res, err := s.explorer.ExploreSet(ctx, entityIDs, 0)
	if err != nil {
		return nil, err
	}

	data, err := s.assembler.Assemble(ctx, res)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"entities": len(entityIDs),
		"nodes":    len(data.Nodes),
		"edges":    len(data.Edges),
	}).Debug("graph.subgraph")

	return data, nil
}

// Stats returns aggregate counts and refreshes the count gauges.
func (s *GraphService) Stats(ctx context.Context) (*models.GraphStats, error) {
	stats, err := s.stats.CollectStats(ctx)
	if err != nil {
		return nil, err
	}

	metrics.EntityCount.Set(float64(stats.TotalEntities))
	metrics.RelationshipCount.Set(float64(stats.TotalRelationships))

	return stats, nil
}
