package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/caseboard/caseboard/internal/models"
)

// RelationshipTypeHandler serves relationship type CRUD endpoints.
type RelationshipTypeHandler struct {
	repo OntologyRepository
	log  *logrus.Logger
}

// NewRelationshipTypeHandler creates a RelationshipTypeHandler with the given service and logger.
func NewRelationshipTypeHandler(repo OntologyRepository, log *logrus.Logger) *RelationshipTypeHandler {
	return &RelationshipTypeHandler{repo: repo, log: log}
}

// List handles GET /api/v1/relationship-types.
func (h *RelationshipTypeHandler) List(c *gin.Context) {
	limit := parseInt(c.DefaultQuery("limit", "100"), 100)
	offset := parseOffset(c.DefaultQuery("offset", "0"))

	types, err := h.repo.ListRelationshipTypes(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing relationship types")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"relationship_types": types})
}

// Get handles GET /api/v1/relationship-types/:id.
func (h *RelationshipTypeHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	typ, err := h.repo.GetRelationshipType(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrRelationshipTypeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "relationship type not found")

			return
		}

		h.log.WithError(err).Error("getting relationship type")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, typ)
}

// Create handles POST /api/v1/relationship-types.
func (h *RelationshipTypeHandler) Create(c *gin.Context) {
	var req models.CreateRelationshipTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	typ, err := h.repo.CreateRelationshipType(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateName) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "relationship type with this name already exists")

			return
		}

		h.log.WithError(err).Error("creating relationship type")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusCreated, typ)
}

// Update handles PUT /api/v1/relationship-types/:id.
func (h *RelationshipTypeHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.UpdateRelationshipTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	typ, err := h.repo.UpdateRelationshipType(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrRelationshipTypeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "relationship type not found")

			return
		}

		h.log.WithError(err).Error("updating relationship type")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, typ)
}

// Delete handles DELETE /api/v1/relationship-types/:id.
func (h *RelationshipTypeHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteRelationshipType(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrRelationshipTypeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "relationship type not found")

			return
		}

		h.log.WithError(err).Error("deleting relationship type")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
