package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/foodiejunction/backend/internal/application/identity"
)

// ProfileHandler handles the delivery profile and storefront mode
type ProfileHandler struct {
	BaseHandler
	profileService *identityapp.ProfileService
	modeService    *identityapp.ModeService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *identityapp.ProfileService, modeService *identityapp.ModeService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		modeService:    modeService,
	}
}

// Get returns the current delivery profile
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, profile)
}

// Update replaces the delivery profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req identityapp.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, profile)
}

// GetMode returns the active storefront mode
func (h *ProfileHandler) GetMode(c *gin.Context) {
	mode, err := h.modeService.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, mode)
}

// SwitchMode changes the storefront mode
func (h *ProfileHandler) SwitchMode(c *gin.Context) {
	var req identityapp.SwitchModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	mode, err := h.modeService.Switch(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, mode)
}
