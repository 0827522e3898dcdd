package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahadevaelectronics/repair-api/internal/httperr"
	"github.com/mahadevaelectronics/repair-api/internal/models"
	"github.com/mahadevaelectronics/repair-api/internal/repository"
)

type ProductHandler struct {
	store  repository.Store[models.Product]
	images repository.Store[models.ProductImage]
}

func NewProductHandler(
	store repository.Store[models.Product],
	images repository.Store[models.ProductImage],
) *ProductHandler {
	return &ProductHandler{store: store, images: images}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock" binding:"gte=0"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Category    *string  `json:"category,omitempty"`
	Stock       *int     `json:"stock,omitempty" binding:"omitempty,gte=0"`
}

type AddProductImageRequest struct {
	ImageURL string `json:"image_url" binding:"required,url"`
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.store.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_products", "could not list products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.NotFound(c, "product_not_found", "product not found")
			return
		}
		httperr.Internal(c, "failed_to_get_product", "could not load product")
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
	}

	if err := h.store.Create(c.Request.Context(), &product); err != nil {
		httperr.Internal(c, "failed_to_create_product", "could not create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateProductRequest
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

	product, err := h.store.Update(c.Request.Context(), id, changes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.NotFound(c, "product_not_found", "product not found")
			return
		}
		httperr.Internal(c, "failed_to_update_product", "could not update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.NotFound(c, "product_not_found", "product not found")
			return
		}
		httperr.Internal(c, "failed_to_delete_product", "could not delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// --------- Images ---------

func (h *ProductHandler) AddImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AddProductImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if _, err := h.store.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.NotFound(c, "product_not_found", "product not found")
			return
		}
		httperr.Internal(c, "failed_to_get_product", "could not load product")
		return
	}

	image := models.ProductImage{
		ProductID: id,
		ImageURL:  req.ImageURL,
	}

	if err := h.images.Create(c.Request.Context(), &image); err != nil {
		httperr.Internal(c, "failed_to_add_image", "could not add image")
		return
	}

	c.JSON(http.StatusCreated, image)
}

func (h *ProductHandler) DeleteImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "imageID")
	if !ok {
		return
	}

	image, err := h.images.Get(c.Request.Context(), imageID)
	if err != nil || image.ProductID != id {
		httperr.NotFound(c, "image_not_found", "image not found")
		return
	}

	if err := h.images.Delete(c.Request.Context(), imageID); err != nil {
		httperr.Internal(c, "failed_to_delete_image", "could not delete image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "image deleted"})
}
