package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/caseboard/caseboard/internal/models"
)

// GraphHandler serves graph exploration and statistics endpoints.
type GraphHandler struct {
	repo GraphRepository
	log  *logrus.Logger
}

// NewGraphHandler creates a GraphHandler with the given service and logger.
func NewGraphHandler(repo GraphRepository, log *logrus.Logger) *GraphHandler {
	return &GraphHandler{repo: repo, log: log}
}

// Explore handles GET /api/v1/graph/explore/:id.
func (h *GraphHandler) Explore(c *gin.Context) {
	entityID, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	depth, err := strconv.Atoi(c.DefaultQuery("depth", "1"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "depth must be an integer")

		return
	}

	data, err := h.repo.Explore(c.Request.Context(), entityID, depth)
	if err != nil {
		h.respondGraphError(c, err, "exploring graph")

		return
	}

	c.JSON(http.StatusOK, data)
}

// Subgraph handles GET /api/v1/graph/subgraph?ids=1,2,3.
func (h *GraphHandler) Subgraph(c *gin.Context) {
	ids, err := parseIDList(c.Query("ids"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	data, err := h.repo.Subgraph(c.Request.Context(), ids)
	if err != nil {
		h.respondGraphError(c, err, "assembling subgraph")

		return
	}

	c.JSON(http.StatusOK, data)
}

// Stats handles GET /api/v1/graph/stats.
func (h *GraphHandler) Stats(c *gin.Context) {
	stats, err := h.repo.Stats(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("collecting graph stats")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, stats)
}

// respondGraphError maps exploration errors onto HTTP responses.
func (h *GraphHandler) respondGraphError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, models.ErrEntityNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "entity not found")
	case errors.Is(err, models.ErrInvalidDepth):
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, "depth must be non-negative")
	case errors.Is(err, models.ErrEmptyIDList):
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, "ids must not be empty")
	case errors.Is(err, context.Canceled):
		// Client went away mid-traversal; nothing useful to write.
		c.Abort()
	default:
		h.log.WithError(err).Error(action)
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
