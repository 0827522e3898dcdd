package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahadevaelectronics/repair-api/internal/models"
)

func newTechnicianRouter() (*gin.Engine, *fakeStore[models.Technician]) {
	store := newFakeStore(
		func(tech *models.Technician, id uint) { tech.ID = id },
		func(tech *models.Technician, changes map[string]any) {
			for field, value := range changes {
				switch field {
				case "name":
					tech.Name = value.(string)
				case "email":
					tech.Email = value.(string)
				case "phone":
					tech.Phone = value.(string)
				case "specialization":
					tech.Specialization = value.(string)
				case "experience_years":
					tech.ExperienceYears = value.(int)
				case "is_available":
					tech.IsAvailable = value.(bool)
				}
			}
		},
	)

	h := NewTechnicianHandler(store)

	r := gin.New()
	technicians := r.Group("/api/technicians")
	technicians.GET("", h.List)
	technicians.POST("", h.Create)
	technicians.GET("/:id", h.Get)
	technicians.PUT("/:id", h.Update)
	technicians.DELETE("/:id", h.Delete)
	return r, store
}

func TestTechnicianCreateDefaultsAvailable(t *testing.T) {
	r, _ := newTechnicianRouter()

	w := doRequest(t, r, http.MethodPost, "/api/technicians", gin.H{
		"name":             "A",
		"email":            "a@x.com",
		"phone":            "123",
		"experience_years": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeJSON[models.Technician](t, w)
	assert.NotZero(t, created.ID)
	assert.True(t, created.IsAvailable)
	assert.Equal(t, 2, created.ExperienceYears)
}

func TestTechnicianEmailNormalized(t *testing.T) {
	r, _ := newTechnicianRouter()

	w := doRequest(t, r, http.MethodPost, "/api/technicians", gin.H{
		"name":  "B",
		"email": "  Tech@Example.COM ",
		"phone": "456",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeJSON[models.Technician](t, w)
	assert.Equal(t, "tech@example.com", created.Email)
}

func TestTechnicianCreateRequiresEmail(t *testing.T) {
	r, _ := newTechnicianRouter()

	w := doRequest(t, r, http.MethodPost, "/api/technicians", gin.H{
		"name":  "C",
		"phone": "789",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/technicians", gin.H{
		"name":  "C",
		"email": "not-an-email",
		"phone": "789",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTechnicianPartialUpdate(t *testing.T) {
	r, _ := newTechnicianRouter()

	doRequest(t, r, http.MethodPost, "/api/technicians", gin.H{
		"name":           "D",
		"email":          "d@x.com",
		"phone":          "111",
		"specialization": "laptops",
	})

	w := doRequest(t, r, http.MethodPut, "/api/technicians/1", gin.H{"is_available": false})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeJSON[models.Technician](t, w)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, "laptops", updated.Specialization)
	assert.Equal(t, "d@x.com", updated.Email)
}

func TestTechnicianNotFound(t *testing.T) {
	r, _ := newTechnicianRouter()

	w := doRequest(t, r, http.MethodGet, "/api/technicians/7", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/api/technicians/7", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
