package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahadevaelectronics/repair-api/internal/httperr"
	"github.com/mahadevaelectronics/repair-api/internal/models"
	"github.com/mahadevaelectronics/repair-api/internal/repository"
)

type PartHandler struct {
	store repository.Store[models.Part]
}

func NewPartHandler(store repository.Store[models.Part]) *PartHandler {
	return &PartHandler{store: store}
}

// --------- Requests ---------

type CreatePartRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gte=0"`
	Category     string  `json:"category"`
	Stock        int     `json:"stock" binding:"gte=0"`
	Manufacturer string  `json:"manufacturer"`
	PartNumber   string  `json:"part_number"`
}

type UpdatePartRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Category     *string  `json:"category,omitempty"`
	Stock        *int     `json:"stock,omitempty" binding:"omitempty,gte=0"`
	Manufacturer *string  `json:"manufacturer,omitempty"`
	PartNumber   *string  `json:"part_number,omitempty"`
}

// --------- Handlers ---------

func (h *PartHandler) List(c *gin.Context) {
	parts, err := h.store.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_parts", "could not list parts")
		return
	}
	c.JSON(http.StatusOK, parts)
}

func (h *PartHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	part, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.NotFound(c, "part_not_found", "part not found")
			return
		}
		httperr.Internal(c, "failed_to_get_part", "could not load part")
		return
	}

	c.JSON(http.StatusOK, part)
}

func (h *PartHandler) Create(c *gin.Context) {
	var req CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	part := models.Part{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Stock:        req.Stock,
		Manufacturer: req.Manufacturer,
		PartNumber:   req.PartNumber,
	}

	if err := h.store.Create(c.Request.Context(), &part); err != nil {
		httperr.Internal(c, "failed_to_create_part", "could not create part")
		return
	}

	c.JSON(http.StatusCreated, part)
}

func (h *PartHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	changes := map[string]any{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Price != nil {
		changes["price"] = *req.Price
	}
	if req.Category != nil {
		changes["category"] = *req.Category
	}
	if req.Stock != nil {
		changes["stock"] = *req.Stock
	}
	if req.Manufacturer != nil {
		changes["manufacturer"] = *req.Manufacturer
	}
	if req.PartNumber != nil {
		changes["part_number"] = *req.PartNumber
	}

	part, err := h.store.Update(c.Request.Context(), id, changes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.NotFound(c, "part_not_found", "part not found")
			return
		}
		httperr.Internal(c, "failed_to_update_part", "could not update part")
		return
	}

	c.JSON(http.StatusOK, part)
}

func (h *PartHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.NotFound(c, "part_not_found", "part not found")
			return
		}
		httperr.Internal(c, "failed_to_delete_part", "could not delete part")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "part deleted"})
}
