package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mahadevaelectronics/repair-api/internal/httperr"
	"github.com/mahadevaelectronics/repair-api/internal/httpresp"
	"github.com/mahadevaelectronics/repair-api/internal/models"
	"github.com/mahadevaelectronics/repair-api/internal/repository"
)

type AuditLogsHandler struct {
	store repository.Store[models.AuditLog]
}

func NewAuditLogsHandler(store repository.Store[models.AuditLog]) *AuditLogsHandler {
	return &AuditLogsHandler{store: store}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	logs, err := h.store.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "could not list audit logs")
		return
	}
	httpresp.List(c, logs)
}
