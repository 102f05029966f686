package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/caseboard/caseboard/internal/dbpool"
	"github.com/caseboard/caseboard/internal/middleware"
	"github.com/caseboard/caseboard/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log           *logrus.Logger
	Pool          *dbpool.Pool
	Hub           *ws.Hub
	Ontology      OntologyRepository
	Entities      EntityRepository
	Relationships RelationshipRepository
	Graph         GraphRepository
	CORSOrigins   []string
	Version       string
}

// Router-level limits.
const (
	maxBodySize = 10 << 20 // 10 MB
	rateLimit   = 100      // requests per second per IP
	rateBurst   = 200      // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (outside the API group, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Pool, log, deps.Version)
	entityTypes := NewEntityTypeHandler(deps.Ontology, log)
	relationshipTypes := NewRelationshipTypeHandler(deps.Ontology, log)
	entities := NewEntityHandler(deps.Entities, log)
	relationships := NewRelationshipHandler(deps.Relationships, log)
	graph := NewGraphHandler(deps.Graph, log)

	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// Ontology.
	api.GET("/entity-types", entityTypes.List)
	api.POST("/entity-types", entityTypes.Create)
	api.GET("/entity-types/:id", entityTypes.Get)
	api.PUT("/entity-types/:id", entityTypes.Update)
	api.DELETE("/entity-types/:id", entityTypes.Delete)

	api.GET("/relationship-types", relationshipTypes.List)
	api.POST("/relationship-types", relationshipTypes.Create)
	api.GET("/relationship-types/:id", relationshipTypes.Get)
	api.PUT("/relationship-types/:id", relationshipTypes.Update)
	api.DELETE("/relationship-types/:id", relationshipTypes.Delete)

	// Entities.
	api.GET("/entities", entities.List)
	api.POST("/entities", entities.Create)
	api.GET("/entities/:id", entities.Get)
	api.PUT("/entities/:id", entities.Update)
	api.DELETE("/entities/:id", entities.Delete)
	api.GET("/entities/:id/relationships", entities.Relationships)

	// Relationships.
	api.GET("/relationships", relationships.List)
	api.POST("/relationships", relationships.Create)
	api.GET("/relationships/:id", relationships.Get)
	api.PUT("/relationships/:id", relationships.Update)
	api.DELETE("/relationships/:id", relationships.Delete)

	// Graph exploration.
	api.GET("/graph/explore/:id", graph.Explore)
	api.GET("/graph/subgraph", graph.Subgraph)
	api.GET("/graph/stats", graph.Stats)

	// WebSocket endpoint for live graph change events.
	api.GET("/ws", wsHandler(ctx, log, deps.Hub, deps.CORSOrigins))
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}
