package handler

import (
	"github.com/gin-gonic/gin"

	systemapp "github.com/foodiejunction/backend/internal/application/system"
)

// SystemHandler handles storefront-wide endpoints
type SystemHandler struct {
	BaseHandler
	systemService *systemapp.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *systemapp.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

// Health reports service liveness
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{"status": "ok"})
}

// ResetDemoData restores the seed menu and clears the cart, profile,
// and order ledger
func (h *SystemHandler) ResetDemoData(c *gin.Context) {
	if err := h.systemService.ResetDemoData(c.Request.Context()); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
