// Package handler provides HTTP handlers for the categories feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cropscience_backend/internal/feature/categories/domain"
	"cropscience_backend/internal/feature/categories/domain/entity"
	"cropscience_backend/internal/feature/categories/transport/http/dto"
	"cropscience_backend/internal/feature/categories/usecase"
)

// CategoryUsecase defines the usecase interface for category operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CategoryUsecase interface {
	Create(ctx context.Context, name, description string) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Get(ctx context.Context, id uint) (*entity.Category, error)
	Update(ctx context.Context, id uint, upd usecase.CategoryUpdate) (*entity.Category, error)
	Delete(ctx context.Context, id uint) error
}

// CategoryHandler handles HTTP requests for category resources.
type CategoryHandler struct {
	uc CategoryUsecase
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(uc CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// idParam parses the :id path parameter. Non-numeric IDs behave like
// missing records.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

// List handles GET /categories and returns every category ordered by name.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("category list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	out := make([]dto.CategoryItem, 0, len(categories))
	for i := range categories {
		out = append(out, dto.NewCategoryItem(&categories[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /categories and returns 201 with the new category.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	category, err := h.uc.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category with this name already exists"})
			return
		}
		slog.Error("category create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, dto.NewCategoryItem(category))
}

// Get handles GET /categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	category, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryItem(category))
}

// Update handles PUT /categories/:id: a full replacement of the writable fields.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.CategoryCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	h.applyUpdate(c, id, usecase.CategoryUpdate{Name: &req.Name, Description: &req.Description})
}

// Patch handles PATCH /categories/:id: only the provided fields change.
func (h *CategoryHandler) Patch(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.CategoryUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Name != nil && *req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
		return
	}
	h.applyUpdate(c, id, usecase.CategoryUpdate{Name: req.Name, Description: req.Description})
}

func (h *CategoryHandler) applyUpdate(c *gin.Context, id uint, upd usecase.CategoryUpdate) {
	category, err := h.uc.Update(c.Request.Context(), id, upd)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryItem(category))
}

// Delete handles DELETE /categories/:id. The delete cascades to every crop
// in the category and returns 204.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps domain errors to HTTP status codes.
func (h *CategoryHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
	case errors.Is(err, domain.ErrCategoryNameTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "category with this name already exists"})
	default:
		slog.Error("category operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
