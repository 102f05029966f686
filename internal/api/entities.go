package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/caseboard/caseboard/internal/models"
)

// EntityHandler serves entity CRUD endpoints.
type EntityHandler struct {
	repo EntityRepository
	log  *logrus.Logger
}

// NewEntityHandler creates an EntityHandler with the given service and logger.
func NewEntityHandler(repo EntityRepository, log *logrus.Logger) *EntityHandler {
	return &EntityHandler{repo: repo, log: log}
}

// List handles GET /api/v1/entities.
func (h *EntityHandler) List(c *gin.Context) {
	var entityTypeID int64

	if raw := c.Query("entity_type_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

			return
		}

		entityTypeID = id
	}

	search := c.Query("search")
	limit := parseInt(c.DefaultQuery("limit", "50"), 50)
	offset := parseOffset(c.DefaultQuery("offset", "0"))

	entities, hasMore, err := h.repo.ListEntities(c.Request.Context(), entityTypeID, search, limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing entities")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"entities": entities, "has_more": hasMore})
}

// Get handles GET /api/v1/entities/:id.
func (h *EntityHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	entity, err := h.repo.GetEntity(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrEntityNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "entity not found")

			return
		}

		h.log.WithError(err).Error("getting entity")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, entity)
}

// Create handles POST /api/v1/entities.
func (h *EntityHandler) Create(c *gin.Context) {
	var req models.CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	entity, err := h.repo.CreateEntity(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrEntityTypeNotFound) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, "entity type does not exist")

			return
		}

		h.log.WithError(err).Error("creating entity")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusCreated, entity)
}

// Update handles PUT /api/v1/entities/:id.
func (h *EntityHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.UpdateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	entity, err := h.repo.UpdateEntity(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrEntityNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "entity not found")

			return
		}

		h.log.WithError(err).Error("updating entity")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, entity)
}

// Delete handles DELETE /api/v1/entities/:id.
func (h *EntityHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteEntity(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrEntityNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "entity not found")

			return
		}

		h.log.WithError(err).Error("deleting entity")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Relationships handles GET /api/v1/entities/:id/relationships.
func (h *EntityHandler) Relationships(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	rels, err := h.repo.EntityRelationships(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrEntityNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "entity not found")

			return
		}

		h.log.WithError(err).Error("listing entity relationships")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"relationships": rels})
}
