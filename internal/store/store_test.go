package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/caseboard/caseboard/internal/dbpool"
	"github.com/caseboard/caseboard/internal/models"
	"github.com/caseboard/caseboard/internal/store"
)

// testEnv holds shared test infrastructure (single pool across all tests).
type testEnv struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

var sharedEnv *testEnv

func getTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if sharedEnv != nil {
		return sharedEnv
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := dbpool.NewPool(ctx, dbURL)
	if err != nil {
		t.Fatalf("connecting to test DB: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	sharedEnv = &testEnv{
		pool: pool,
		log:  log,
	}

	return sharedEnv
}

// setupTestBase creates a Base backed by the shared pool. Rows created by the
// test are removed afterwards; truncation cascades through the FK chain.
func setupTestBase(t *testing.T) store.Base {
	t.Helper()

	env := getTestEnv(t)
	base := store.Base{Pool: env.pool, Log: env.log}

	t.Cleanup(func() {
		ctx := context.Background()
		//nolint:errcheck // best-effort cleanup
		env.pool.Exec(ctx, "TRUNCATE entity_types, entities, relationship_types, relationships RESTART IDENTITY CASCADE")
	})

	return base
}

// mustCreateEntityType inserts an entity type or fails the test.
func mustCreateEntityType(t *testing.T, base store.Base, name string) *models.EntityType {
	t.Helper()

	ts := store.NewEntityTypeStore(base)
	typ, err := ts.CreateEntityType(context.Background(), models.CreateEntityTypeRequest{
		Name:        name,
		DisplayName: name,
	})
	if err != nil {
		t.Fatalf("CreateEntityType(%q): %v", name, err)
	}

	return typ
}

// mustCreateEntity inserts an entity or fails the test.
func mustCreateEntity(t *testing.T, base store.Base, typeID int64, title string) *models.Entity {
	t.Helper()

	es := store.NewEntityStore(base)
	entity, err := es.CreateEntity(context.Background(), models.CreateEntityRequest{
		EntityTypeID: typeID,
		Title:        title,
	})
	if err != nil {
		t.Fatalf("CreateEntity(%q): %v", title, err)
	}

	return entity
}

// mustCreateRelationshipType inserts a relationship type or fails the test.
func mustCreateRelationshipType(t *testing.T, base store.Base, name string) *models.RelationshipType {
	t.Helper()

	ts := store.NewRelationshipTypeStore(base)
	typ, err := ts.CreateRelationshipType(context.Background(), models.CreateRelationshipTypeRequest{
		Name:         name,
		DisplayName:  name,
		ForwardLabel: name,
		ReverseLabel: name + " by",
	})
	if err != nil {
		t.Fatalf("CreateRelationshipType(%q): %v", name, err)
	}

	return typ
}

// mustCreateRelationship inserts a relationship or fails the test.
func mustCreateRelationship(t *testing.T, base store.Base, typeID, from, to int64) *models.Relationship {
	t.Helper()

	rs := store.NewRelationshipStore(base)
	rel, err := rs.CreateRelationship(context.Background(), models.CreateRelationshipRequest{
		RelationshipTypeID: typeID,
		FromEntityID:       from,
		ToEntityID:         to,
	})
	if err != nil {
		t.Fatalf("CreateRelationship(%d -> %d): %v", from, to, err)
	}

	return rel
}
