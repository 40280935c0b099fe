// Package handler provides HTTP handlers for the crops feature.
package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cropscience_backend/internal/feature/crops/domain"
	"cropscience_backend/internal/feature/crops/domain/entity"
	"cropscience_backend/internal/feature/crops/transport/http/dto"
	"cropscience_backend/internal/feature/crops/usecase"
)

const exportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CropUsecase defines the usecase interface for crop operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CropUsecase interface {
	Create(ctx context.Context, crop *entity.Crop) (*entity.Crop, error)
	Get(ctx context.Context, id uint) (*entity.Crop, error)
	List(ctx context.Context, q usecase.CropQuery) (usecase.CropPage, error)
	Update(ctx context.Context, id uint, upd usecase.CropUpdate) (*entity.Crop, error)
	Delete(ctx context.Context, id uint) error
	Export(ctx context.Context) (*bytes.Buffer, error)
}

// CropHandler handles HTTP requests for crop resources.
type CropHandler struct {
	uc CropUsecase
}

// NewCropHandler creates a new CropHandler.
func NewCropHandler(uc CropUsecase) *CropHandler {
	return &CropHandler{uc: uc}
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

// List handles GET /crops: the filtered, searched, ordered, paginated
// listing in the compact shape. Unrecognized parameters are ignored and a
// page past the end returns an empty result, not an error.
func (h *CropHandler) List(c *gin.Context) {
	var raw dto.CropListQuery
	// Query binding on plain strings cannot fail; parsing is permissive.
	_ = c.ShouldBindQuery(&raw)

	q := usecase.NewCropQuery(raw.Category, raw.WaterRequirements, raw.Search, raw.Ordering, raw.Page, raw.PageSize)

	page, err := h.uc.List(c.Request.Context(), q)
	if err != nil {
		slog.Error("crop list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	results := make([]dto.CropItem, 0, len(page.Items))
	for i := range page.Items {
		results = append(results, dto.NewCropItem(&page.Items[i]))
	}

	resp := dto.PaginatedCrops{Count: page.Total, Results: results}
	if page.HasNext() {
		resp.Next = pageURL(c, q.Page+1)
	}
	if page.HasPrevious() {
		resp.Previous = pageURL(c, page.PreviousPage())
	}
	c.JSON(http.StatusOK, resp)
}

// pageURL rebuilds the request URL as an absolute URL with the page
// parameter replaced.
func pageURL(c *gin.Context, page int) *string {
	u := *c.Request.URL
	values := u.Query()
	values.Set("page", strconv.Itoa(page))
	u.RawQuery = values.Encode()
	u.Host = c.Request.Host
	u.Scheme = "http"
	if c.Request.TLS != nil {
		u.Scheme = "https"
	}
	s := u.String()
	return &s
}

// Create handles POST /crops and returns 201 with the detailed shape.
func (h *CropHandler) Create(c *gin.Context) {
	var req dto.CropCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("crop validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	crop := &entity.Crop{
		Name:               req.Name,
		ScientificName:     req.ScientificName,
		CategoryID:         req.CategoryID,
		Description:        req.Description,
		GrowthDurationDays: *req.GrowthDurationDays,
		WaterRequirements:  entity.WaterRequirement(req.WaterRequirements),
	}

	created, err := h.uc.Create(c.Request.Context(), crop)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCropDetail(created))
}

// Get handles GET /crops/:id and returns the detailed shape with the
// category expanded.
func (h *CropHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	crop, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCropDetail(crop))
}

// Update handles PUT /crops/:id: a full replacement of the writable fields.
func (h *CropHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.CropCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	water := entity.WaterRequirement(req.WaterRequirements)
	h.applyUpdate(c, id, usecase.CropUpdate{
		Name:               &req.Name,
		ScientificName:     &req.ScientificName,
		CategoryID:         &req.CategoryID,
		Description:        &req.Description,
		GrowthDurationDays: req.GrowthDurationDays,
		WaterRequirements:  &water,
	})
}

// Patch handles PATCH /crops/:id: only the provided fields change.
func (h *CropHandler) Patch(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.CropUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	upd := usecase.CropUpdate{
		Name:               req.Name,
		ScientificName:     req.ScientificName,
		CategoryID:         req.CategoryID,
		Description:        req.Description,
		GrowthDurationDays: req.GrowthDurationDays,
	}
	if req.WaterRequirements != nil {
		water := entity.WaterRequirement(*req.WaterRequirements)
		upd.WaterRequirements = &water
	}
	h.applyUpdate(c, id, upd)
}

func (h *CropHandler) applyUpdate(c *gin.Context, id uint, upd usecase.CropUpdate) {
	crop, err := h.uc.Update(c.Request.Context(), id, upd)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCropDetail(crop))
}

// Delete handles DELETE /crops/:id and returns 204.
func (h *CropHandler) Delete(c *gin.Context) {
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

// Export handles GET /crops/export: the full store as an .xlsx attachment,
// ignoring any query parameters.
func (h *CropHandler) Export(c *gin.Context) {
	buf, err := h.uc.Export(c.Request.Context())
	if err != nil {
		slog.Error("crop export failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="crops_export.xlsx"`)
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, exportContentType, buf.Bytes())
}

// writeError maps domain errors to HTTP status codes.
func (h *CropHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCropNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "crop not found"})
	case errors.Is(err, domain.ErrUnknownCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": "referenced category does not exist"})
	default:
		slog.Error("crop operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
