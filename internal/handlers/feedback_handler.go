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

type FeedbackHandler struct {
	store repository.Store[models.Feedback]
}

func NewFeedbackHandler(store repository.Store[models.Feedback]) *FeedbackHandler {
	return &FeedbackHandler{store: store}
}

// --------- Requests ---------

type CreateFeedbackRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	Subject       string `json:"subject" binding:"required"`
	Message       string `json:"message" binding:"required"`
}

// Customers only create feedback; the update shape is the admin's reply.
type UpdateFeedbackRequest struct {
	AdminReply *string `json:"admin_reply,omitempty"`
	IsResolved *bool   `json:"is_resolved,omitempty"`
}

// --------- Handlers ---------

func (h *FeedbackHandler) List(c *gin.Context) {
	feedback, err := h.store.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_feedback", "could not list feedback")
		return
	}
	c.JSON(http.StatusOK, feedback)
}

func (h *FeedbackHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fb, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.NotFound(c, "feedback_not_found", "feedback not found")
			return
		}
		httperr.Internal(c, "failed_to_get_feedback", "could not load feedback")
		return
	}

	c.JSON(http.StatusOK, fb)
}

func (h *FeedbackHandler) Create(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	fb := models.Feedback{
		CustomerName:  req.CustomerName,
		CustomerEmail: validators.NormalizeEmail(req.CustomerEmail),
		CustomerPhone: req.CustomerPhone,
		Subject:       req.Subject,
		Message:       req.Message,
	}

	if err := h.store.Create(c.Request.Context(), &fb); err != nil {
		httperr.Internal(c, "failed_to_create_feedback", "could not create feedback")
		return
	}

	c.JSON(http.StatusCreated, fb)
}

func (h *FeedbackHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	changes := map[string]any{}
	if req.AdminReply != nil {
		changes["admin_reply"] = *req.AdminReply
	}
	if req.IsResolved != nil {
		changes["is_resolved"] = *req.IsResolved
	}

	fb, err := h.store.Update(c.Request.Context(), id, changes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.NotFound(c, "feedback_not_found", "feedback not found")
			return
		}
		httperr.Internal(c, "failed_to_update_feedback", "could not update feedback")
		return
	}

	c.JSON(http.StatusOK, fb)
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.NotFound(c, "feedback_not_found", "feedback not found")
			return
		}
		httperr.Internal(c, "failed_to_delete_feedback", "could not delete feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "feedback deleted"})
}
