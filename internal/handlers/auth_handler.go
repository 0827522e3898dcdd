package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahadevaelectronics/repair-api/internal/auth"
	"github.com/mahadevaelectronics/repair-api/internal/httperr"
	"github.com/mahadevaelectronics/repair-api/internal/validators"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// --------- Handlers ---------

func (h *AuthHandler) Token(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := validators.NormalizeEmail(req.Email)

	admin, err := h.svc.Authenticate(c.Request.Context(), email, req.Password)
	if err != nil {
		// One answer for every failure mode, so the response never says
		// whether the email exists.
		httperr.UnauthorizedBearer(c, "invalid_credentials", "incorrect email or password")
		return
	}

	token, err := h.svc.IssueToken(admin)
	if err != nil {
		httperr.Internal(c, "failed_to_issue_token", "could not issue token")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
