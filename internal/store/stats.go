package store

import (
	"context"
	"fmt"

	"github.com/caseboard/caseboard/internal/models"
)

// StatsStore computes aggregate counts over the whole graph.
type StatsStore struct {
	Base
}

// NewStatsStore creates a StatsStore with the given shared base.
func NewStatsStore(base Base) *StatsStore {
	return &StatsStore{Base: base}
}

// CollectStats returns totals and the per-type entity breakdown. Both
// queries run in one read-only transaction; the counts are a consistent
// snapshot of the store at that point.
func (s *StatsStore) CollectStats(ctx context.Context) (*models.GraphStats, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("collecting stats: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // read-only tx, rollback is cleanup.

	var stats models.GraphStats

	// Single consolidated query for the scalar counts.
	if err := tx.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM entities),
			(SELECT COUNT(*) FROM relationships),
			(SELECT COUNT(*) FROM entity_types),
			(SELECT COUNT(*) FROM relationship_types)`,
	).Scan(
		&stats.TotalEntities, &stats.TotalRelationships,
		&stats.EntityTypes, &stats.RelationshipTypes,
	); err != nil {
		return nil, fmt.Errorf("querying stat totals: %w", err)
	}

	// LEFT JOIN so types with no entities still appear with count 0.
	rows, err := tx.Query(ctx,
		`SELECT t.name, t.display_name, COUNT(e.id)
		FROM entity_types t
		LEFT JOIN entities e ON e.entity_type_id = t.id
		GROUP BY t.id, t.name, t.display_name
		ORDER BY t.name`)
	if err != nil {
		return nil, fmt.Errorf("querying per-type counts: %w", err)
	}
	defer rows.Close()

	stats.EntitiesByType = make([]models.EntityTypeCount, 0, 16)

	for rows.Next() {
		var tc models.EntityTypeCount
		if err := rows.Scan(&tc.Type, &tc.DisplayName, &tc.Count); err != nil {
			return nil, fmt.Errorf("scanning per-type count: %w", err)
		}

		stats.EntitiesByType = append(stats.EntitiesByType, tc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating per-type counts: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing stats: %w", err)
	}

	return &stats, nil
}
