package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahadevaelectronics/repair-api/internal/models"
)

func newProductRouter() (*gin.Engine, *fakeStore[models.Product]) {
	store := newFakeStore(
		func(p *models.Product, id uint) { p.ID = id },
		func(p *models.Product, changes map[string]any) {
			for field, value := range changes {
				switch field {
				case "name":
					p.Name = value.(string)
				case "description":
					p.Description = value.(string)
				case "price":
					p.Price = value.(float64)
				case "category":
					p.Category = value.(string)
				case "stock":
					p.Stock = value.(int)
				}
			}
		},
	)
	images := newFakeStore(
		func(img *models.ProductImage, id uint) { img.ID = id },
		func(*models.ProductImage, map[string]any) {},
	)

	h := NewProductHandler(store, images)

	r := gin.New()
	products := r.Group("/api/products")
	products.GET("", h.List)
	products.POST("", h.Create)
	products.GET("/:id", h.Get)
	products.PUT("/:id", h.Update)
	products.DELETE("/:id", h.Delete)
	products.POST("/:id/images", h.AddImage)
	products.DELETE("/:id/images/:imageID", h.DeleteImage)
	return r, store
}

func TestProductCreateThenGet(t *testing.T) {
	r, _ := newProductRouter()

	w := doRequest(t, r, http.MethodPost, "/api/products", gin.H{
		"name":        "USB-C Charger",
		"description": "65W GaN charger",
		"price":       29.99,
		"category":    "chargers",
		"stock":       12,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeJSON[models.Product](t, w)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "USB-C Charger", created.Name)
	assert.Equal(t, 29.99, created.Price)
	assert.Equal(t, 12, created.Stock)

	w = doRequest(t, r, http.MethodGet, "/api/products/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeJSON[models.Product](t, w)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.Category, got.Category)
}

func TestProductPartialUpdate(t *testing.T) {
	r, _ := newProductRouter()

	doRequest(t, r, http.MethodPost, "/api/products", gin.H{
		"name":  "Soldering Iron",
		"price": 45.0,
		"stock": 3,
	})

	w := doRequest(t, r, http.MethodPut, "/api/products/1", gin.H{"price": 39.5})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeJSON[models.Product](t, w)
	assert.Equal(t, 39.5, updated.Price)
	assert.Equal(t, "Soldering Iron", updated.Name, "absent fields stay untouched")
	assert.Equal(t, 3, updated.Stock, "absent fields stay untouched")
}

func TestProductNotFound(t *testing.T) {
	r, _ := newProductRouter()

	for _, tc := range []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/products/99", nil},
		{http.MethodPut, "/api/products/99", gin.H{"price": 1.0}},
		{http.MethodDelete, "/api/products/99", nil},
	} {
		w := doRequest(t, r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestProductDeleteThenGet(t *testing.T) {
	r, _ := newProductRouter()

	doRequest(t, r, http.MethodPost, "/api/products", gin.H{"name": "Hot Air Station", "price": 120.0})

	w := doRequest(t, r, http.MethodDelete, "/api/products/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/products/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductCreateValidation(t *testing.T) {
	r, _ := newProductRouter()

	w := doRequest(t, r, http.MethodPost, "/api/products", gin.H{"description": "no name or price"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductAddImage(t *testing.T) {
	r, _ := newProductRouter()

	doRequest(t, r, http.MethodPost, "/api/products", gin.H{"name": "Multimeter", "price": 25.0})

	w := doRequest(t, r, http.MethodPost, "/api/products/1/images", gin.H{
		"image_url": "https://cdn.example.com/multimeter.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	image := decodeJSON[models.ProductImage](t, w)
	assert.Equal(t, uint(1), image.ProductID)
	assert.Equal(t, "https://cdn.example.com/multimeter.jpg", image.ImageURL)

	w = doRequest(t, r, http.MethodPost, "/api/products/42/images", gin.H{
		"image_url": "https://cdn.example.com/nothing.jpg",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
