package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahadevaelectronics/repair-api/internal/httperr"
	"github.com/mahadevaelectronics/repair-api/internal/models"
	"github.com/mahadevaelectronics/repair-api/internal/repository"
	"github.com/mahadevaelectronics/repair-api/internal/validators"
)

type TechnicianHandler struct {
	store repository.Store[models.Technician]
}

func NewTechnicianHandler(store repository.Store[models.Technician]) *TechnicianHandler {
	return &TechnicianHandler{store: store}
}

// --------- Requests ---------

type CreateTechnicianRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experience_years" binding:"gte=0"`
	IsAvailable     *bool  `json:"is_available,omitempty"`
}

type UpdateTechnicianRequest struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone           *string `json:"phone,omitempty"`
	Specialization  *string `json:"specialization,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty" binding:"omitempty,gte=0"`
	IsAvailable     *bool   `json:"is_available,omitempty"`
}

// --------- Handlers ---------

func (h *TechnicianHandler) List(c *gin.Context) {
	technicians, err := h.store.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_technicians", "could not list technicians")
		return
	}
	c.JSON(http.StatusOK, technicians)
}

func (h *TechnicianHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	technician, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.NotFound(c, "technician_not_found", "technician not found")
			return
		}
		httperr.Internal(c, "failed_to_get_technician", "could not load technician")
		return
	}

	c.JSON(http.StatusOK, technician)
}

func (h *TechnicianHandler) Create(c *gin.Context) {
	var req CreateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	technician := models.Technician{
		Name:            req.Name,
		Email:           validators.NormalizeEmail(req.Email),
		Phone:           req.Phone,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		IsAvailable:     true,
	}
	if req.IsAvailable != nil {
		technician.IsAvailable = *req.IsAvailable
	}

	// Email uniqueness is enforced by the unique index; a duplicate insert
	// fails here.
	if err := h.store.Create(c.Request.Context(), &technician); err != nil {
		httperr.Internal(c, "failed_to_create_technician", "could not create technician")
		return
	}

	c.JSON(http.StatusCreated, technician)
}

func (h *TechnicianHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	changes := map[string]any{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Email != nil {
		changes["email"] = validators.NormalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		changes["phone"] = *req.Phone
	}
	if req.Specialization != nil {
		changes["specialization"] = *req.Specialization
	}
	if req.ExperienceYears != nil {
		changes["experience_years"] = *req.ExperienceYears
	}
	if req.IsAvailable != nil {
		changes["is_available"] = *req.IsAvailable
	}

	technician, err := h.store.Update(c.Request.Context(), id, changes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.NotFound(c, "technician_not_found", "technician not found")
			return
		}
		httperr.Internal(c, "failed_to_update_technician", "could not update technician")
		return
	}

	c.JSON(http.StatusOK, technician)
}

func (h *TechnicianHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.NotFound(c, "technician_not_found", "technician not found")
			return
		}
		httperr.Internal(c, "failed_to_delete_technician", "could not delete technician")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "technician deleted"})
}
