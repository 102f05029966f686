// Package store provides focused, single-concern data access stores for the
// caseboard investigation graph.
//
// Each store owns one domain (entities, relationships, ontology types, graph
// lookups, stats) and embeds shared helpers (Pool, logger) via the Base
// struct. Stores never import each other — shared logic lives in this file or
// in scan.go.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/caseboard/caseboard/internal/dbpool"
)

const defaultQueryTimeout = 30 * time.Second

// Base contains shared dependencies for all stores.
// Embed this in each store struct.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// beginReadTx starts a read-only transaction.
func (b *Base) beginReadTx(ctx context.Context) (pgx.Tx, error) {
	return b.Pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
}

// notify sends a pg_notify on the graph_changes channel (best-effort, post-commit).
// The LISTEN bridge in internal/db fans these out to WebSocket clients.
func (b *Base) notify(table, op string, id int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload, _ := json.Marshal(map[string]any{ //nolint:errcheck // static keys, cannot fail.
		"table": table,
		"op":    op,
		"id":    id,
	})
	if _, err := b.Pool.Exec(ctx, "SELECT pg_notify('graph_changes', $1)", string(payload)); err != nil {
		b.Log.WithError(err).Warn("failed to send " + op + " " + table + " notification")
	}
}
