// Package graph implements the exploration engine: bounded breadth-first
// discovery over the entity/relationship store and assembly of the visited
// subgraph into a renderable structure.
//
// The engine is stateless and read-only. It consumes narrow lookup
// interfaces (Store, Resolver) rather than owning persistence, so many
// explorations can run concurrently against the shared store.
package graph

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/caseboard/caseboard/internal/models"
)

// maxConcurrentLookups bounds the per-level neighbor fan-out.
const maxConcurrentLookups = 8

// DefaultMaxDepth is the depth ceiling applied when none is configured.
const DefaultMaxDepth = 3

// Result holds the outcome of a bounded breadth-first expansion: the visited
// entity IDs in level-major order (ascending within each level) and the IDs
// of every relationship whose both endpoints were visited.
type Result struct {
	EntityIDs       []int64
	RelationshipIDs []int64
}

// Explorer performs level-synchronous breadth-first expansion from one or
// more seed entities.
type Explorer struct {
	store    Store
	log      *logrus.Logger
	maxDepth int
}

// NewExplorer creates an Explorer. maxDepth is the ceiling requested depths
// are clamped to; values <= 0 fall back to DefaultMaxDepth.
func NewExplorer(store Store, log *logrus.Logger, maxDepth int) *Explorer {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	return &Explorer{store: store, log: log, maxDepth: maxDepth}
}

// Explore runs a breadth-first expansion from a single seed entity.
// The seed must exist; depth must be non-negative. Depths above the
// configured ceiling are clamped, not rejected.
func (e *Explorer) Explore(ctx context.Context, seedID int64, depth int) (*Result, error) {
	return e.ExploreSet(ctx, []int64{seedID}, depth)
}

// ExploreSet runs the same expansion from a set of seed entities unioned at
// level 0. Every seed must exist or the whole call fails. Even at depth 0
// the result includes all relationships directly connecting the seeds.
func (e *Explorer) ExploreSet(ctx context.Context, seedIDs []int64, depth int) (*Result, error) {
	if len(seedIDs) == 0 {
		return nil, models.ErrEmptyIDList
	}

	depth, err := e.clampDepth(depth)
	if err != nil {
		return nil, err
	}

	seeds := dedupeSorted(seedIDs)

	// All seeds must resolve before any traversal work: a request naming a
	// bad seed never returns a partial graph.
	for _, id := range seeds {
		exists, err := e.store.EntityExists(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("checking seed entity %d: %w", id, err)
		}

		if !exists {
			return nil, fmt.Errorf("seed entity %d: %w", id, models.ErrEntityNotFound)
		}
	}

	visited := make(map[int64]struct{}, len(seeds))
	order := make([]int64, 0, len(seeds))

	for _, id := range seeds {
		visited[id] = struct{}{}
		order = append(order, id)
	}

	frontier := seeds

	for level := 1; level <= depth && len(frontier) > 0; level++ {
		// Cancellation is checked at every level boundary so a dense graph
		// cannot burn store round-trips after the caller has gone away.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		discovered, err := e.expandLevel(ctx, frontier, visited)
		if err != nil {
			return nil, err
		}

		for _, id := range discovered {
			visited[id] = struct{}{}
		}

		order = append(order, discovered...)
		frontier = discovered
	}

	// Induced-subgraph semantics: the edge set is every relationship with
	// both endpoints visited, regardless of which level discovered it. A
	// single fetch over the full visited set also picks up cross edges
	// between entities found on different paths.
	rels, err := e.store.RelationshipsAmong(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("fetching relationships among %d entities: %w", len(order), err)
	}

	relIDs := make([]int64, 0, len(rels))
	for i := range rels {
		relIDs = append(relIDs, rels[i].ID)
	}

	return &Result{EntityIDs: order, RelationshipIDs: relIDs}, nil
}

// expandLevel fetches incident relationships for every frontier entity
// concurrently and returns the sorted set of newly discovered neighbor IDs.
func (e *Explorer) expandLevel(ctx context.Context, frontier []int64, visited map[int64]struct{}) ([]int64, error) {
	var mu sync.Mutex

	discovered := make(map[int64]struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for _, id := range frontier {
		g.Go(func() error {
			rels, err := e.store.IncidentRelationships(gctx, id)
			if err != nil {
				return fmt.Errorf("fetching neighbors of entity %d: %w", id, err)
			}

			// The merge is the single mutation point; lookups above run in
			// parallel and visited is read-only during a level.
			mu.Lock()
			for i := range rels {
				other := rels[i].OtherEnd(id)
				if _, ok := visited[other]; !ok {
					discovered[other] = struct{}{}
				}
			}
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	next := make([]int64, 0, len(discovered))
	for id := range discovered {
		next = append(next, id)
	}

	// Sorting makes insertion order a deterministic function of the store
	// contents, independent of goroutine completion order.
	slices.Sort(next)

	return next, nil
}

// clampDepth validates depth and applies the configured ceiling.
func (e *Explorer) clampDepth(depth int) (int, error) {
	if depth < 0 {
		return 0, models.ErrInvalidDepth
	}

	if depth > e.maxDepth {
		e.log.WithFields(logrus.Fields{
			"requested": depth,
			"ceiling":   e.maxDepth,
		}).Warn("explore depth clamped to ceiling")

		return e.maxDepth, nil
	}

	return depth, nil
}

// dedupeSorted returns the distinct values of ids in ascending order.
func dedupeSorted(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)

	return slices.Compact(out)
}
