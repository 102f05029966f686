package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/caseboard/caseboard/internal/models"
)

// RelationshipHandler serves relationship CRUD endpoints.
type RelationshipHandler struct {
	repo RelationshipRepository
	log  *logrus.Logger
}

// NewRelationshipHandler creates a RelationshipHandler with the given service and logger.
func NewRelationshipHandler(repo RelationshipRepository, log *logrus.Logger) *RelationshipHandler {
	return &RelationshipHandler{repo: repo, log: log}
}

// List handles GET /api/v1/relationships.
func (h *RelationshipHandler) List(c *gin.Context) {
	var from, to, typeID int64

	for _, f := range []struct {
		param string
		dst   *int64
	}{
		{"from_entity_id", &from},
		{"to_entity_id", &to},
		{"relationship_type_id", &typeID},
	} {
		raw := c.Query(f.param)
		if raw == "" {
			continue
		}

		id, err := parseID(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

			return
		}

		*f.dst = id
	}

	limit := parseInt(c.DefaultQuery("limit", "50"), 50)
	offset := parseOffset(c.DefaultQuery("offset", "0"))

	rels, hasMore, err := h.repo.ListRelationships(c.Request.Context(), from, to, typeID, limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing relationships")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"relationships": rels, "has_more": hasMore})
}

// Get handles GET /api/v1/relationships/:id.
func (h *RelationshipHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	rel, err := h.repo.GetRelationship(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrRelationshipNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "relationship not found")

			return
		}

		h.log.WithError(err).Error("getting relationship")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, rel)
}

// Create handles POST /api/v1/relationships.
func (h *RelationshipHandler) Create(c *gin.Context) {
	var req models.CreateRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	rel, err := h.repo.CreateRelationship(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEntityNotFound):
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, "endpoint entity does not exist")
		case errors.Is(err, models.ErrRelationshipTypeNotFound):
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, "relationship type does not exist")
		default:
			h.log.WithError(err).Error("creating relationship")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	c.JSON(http.StatusCreated, rel)
}

// Update handles PUT /api/v1/relationships/:id.
func (h *RelationshipHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.UpdateRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	rel, err := h.repo.UpdateRelationship(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrRelationshipNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "relationship not found")

			return
		}

		h.log.WithError(err).Error("updating relationship")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, rel)
}

// Delete handles DELETE /api/v1/relationships/:id.
func (h *RelationshipHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteRelationship(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrRelationshipNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "relationship not found")

			return
		}

		h.log.WithError(err).Error("deleting relationship")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
