package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/caseboard/caseboard/internal/models"
)

// EntityTypeHandler serves entity type CRUD endpoints.
type EntityTypeHandler struct {
	repo OntologyRepository
	log  *logrus.Logger
}

// NewEntityTypeHandler creates an EntityTypeHandler with the given service and logger.
func NewEntityTypeHandler(repo OntologyRepository, log *logrus.Logger) *EntityTypeHandler {
	return &EntityTypeHandler{repo: repo, log: log}
}

// List handles GET /api/v1/entity-types.
func (h *EntityTypeHandler) List(c *gin.Context) {
	limit := parseInt(c.DefaultQuery("limit", "100"), 100)
	offset := parseOffset(c.DefaultQuery("offset", "0"))

	types, err := h.repo.ListEntityTypes(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing entity types")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"entity_types": types})
}

// Get handles GET /api/v1/entity-types/:id.
func (h *EntityTypeHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	typ, err := h.repo.GetEntityType(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrEntityTypeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "entity type not found")

			return
		}

		h.log.WithError(err).Error("getting entity type")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, typ)
}

// Create handles POST /api/v1/entity-types.
func (h *EntityTypeHandler) Create(c *gin.Context) {
	var req models.CreateEntityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	typ, err := h.repo.CreateEntityType(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateName) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "entity type with this name already exists")

			return
		}

		h.log.WithError(err).Error("creating entity type")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusCreated, typ)
}

// Update handles PUT /api/v1/entity-types/:id.
func (h *EntityTypeHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.UpdateEntityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	typ, err := h.repo.UpdateEntityType(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrEntityTypeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "entity type not found")

			return
		}

		h.log.WithError(err).Error("updating entity type")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, typ)
}

// Delete handles DELETE /api/v1/entity-types/:id.
func (h *EntityTypeHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteEntityType(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrEntityTypeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "entity type not found")

			return
		}

		h.log.WithError(err).Error("deleting entity type")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
