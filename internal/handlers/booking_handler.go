package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/mahadevaelectronics/repair-api/internal/domain/booking"
	"github.com/mahadevaelectronics/repair-api/internal/httperr"
	"github.com/mahadevaelectronics/repair-api/internal/models"
	"github.com/mahadevaelectronics/repair-api/internal/repository"
	ucBooking "github.com/mahadevaelectronics/repair-api/internal/usecase/booking"
	"github.com/mahadevaelectronics/repair-api/internal/validators"
)

type BookingHandler struct {
	repo     domain.Repository
	createUC *ucBooking.CreateBooking
	updateUC *ucBooking.UpdateBooking
}

func NewBookingHandler(
	repo domain.Repository,
	createUC *ucBooking.CreateBooking,
	updateUC *ucBooking.UpdateBooking,
) *BookingHandler {
	return &BookingHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	CustomerName  string     `json:"customer_name" binding:"required"`
	CustomerPhone string     `json:"customer_phone" binding:"required"`
	CustomerEmail string     `json:"customer_email" binding:"omitempty,email"`
	ServiceType   string     `json:"service_type" binding:"required"`
	Description   string     `json:"description"`
	PreferredDate *time.Time `json:"preferred_date,omitempty"`
}

type UpdateBookingRequest struct {
	CustomerName  *string    `json:"customer_name,omitempty"`
	CustomerPhone *string    `json:"customer_phone,omitempty"`
	CustomerEmail *string    `json:"customer_email,omitempty" binding:"omitempty,email"`
	ServiceType   *string    `json:"service_type,omitempty"`
	Description   *string    `json:"description,omitempty"`
	PreferredDate *time.Time `json:"preferred_date,omitempty"`
	Status        *string    `json:"status,omitempty"`
	TechnicianID  *uint      `json:"technician_id,omitempty"`
}

// --------- Handlers ---------

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.repo.ListBookings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "could not list bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.repo.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.NotFound(c, "booking_not_found", "booking not found")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "could not load booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	booking := models.Booking{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: validators.NormalizeEmail(req.CustomerEmail),
		ServiceType:   req.ServiceType,
		Description:   req.Description,
		PreferredDate: req.PreferredDate,
	}

	created, err := h.createUC.Execute(c.Request.Context(), &booking)
	if err != nil {
		httperr.Internal(c, "failed_to_create_booking", "could not create booking")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	in := ucBooking.UpdateInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		ServiceType:   req.ServiceType,
		Description:   req.Description,
		PreferredDate: req.PreferredDate,
		Status:        req.Status,
		TechnicianID:  req.TechnicianID,
	}

	booking, err := h.updateUC.Execute(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			httperr.NotFound(c, "booking_not_found", "booking not found")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "status must be pending, assigned, completed or cancelled")
		case httperr.IsBusiness(err, "technician_not_found"):
			httperr.BadRequest(c, "technician_not_found", "assigned technician does not exist")
		default:
			httperr.Internal(c, "failed_to_update_booking", "could not update booking")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteBooking(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.NotFound(c, "booking_not_found", "booking not found")
			return
		}
		httperr.Internal(c, "failed_to_delete_booking", "could not delete booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}
