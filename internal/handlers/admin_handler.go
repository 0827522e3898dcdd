package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahadevaelectronics/repair-api/internal/audit"
	"github.com/mahadevaelectronics/repair-api/internal/auth"
	"github.com/mahadevaelectronics/repair-api/internal/httperr"
	"github.com/mahadevaelectronics/repair-api/internal/middleware"
	"github.com/mahadevaelectronics/repair-api/internal/models"
	"github.com/mahadevaelectronics/repair-api/internal/validators"
)

type AdminAccountStore interface {
	GetByID(ctx context.Context, id uint) (*models.AdminUser, error)
	Create(ctx context.Context, admin *models.AdminUser) error
}

type AdminHandler struct {
	accounts AdminAccountStore
	audit    *audit.Dispatcher
}

func NewAdminHandler(accounts AdminAccountStore, dispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{accounts: accounts, audit: dispatcher}
}

// --------- Requests ---------

type CreateAdminUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *AdminHandler) GetMe(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	admin, err := h.accounts.GetByID(c.Request.Context(), adminID)
	if err != nil {
		httperr.Internal(c, "admin_not_found", "could not load admin account")
		return
	}

	c.JSON(http.StatusOK, admin)
}

func (h *AdminHandler) CreateAdminUser(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextAdminID).(uint)

	var req CreateAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "could not hash password")
		return
	}

	admin := models.AdminUser{
		Email:        validators.NormalizeEmail(req.Email),
		PasswordHash: hash,
		IsActive:     true,
	}
	if req.IsActive != nil {
		admin.IsActive = *req.IsActive
	}

	if err := h.accounts.Create(c.Request.Context(), &admin); err != nil {
		httperr.Internal(c, "failed_to_create_admin", "could not create admin user")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &actorID,
		Action:   "admin_user_created",
		Entity:   "admin_user",
		EntityID: &admin.ID,
	})

	c.JSON(http.StatusCreated, admin)
}
