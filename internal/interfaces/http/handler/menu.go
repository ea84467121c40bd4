package handler

import (
	"github.com/gin-gonic/gin"

	menuapp "github.com/foodiejunction/backend/internal/application/menu"
)

// MenuHandler handles menu browsing and catalog management endpoints
type MenuHandler struct {
	BaseHandler
	menuService *menuapp.MenuService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menuService *menuapp.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List returns available menu items, filtered and sorted by the
// storefront's search, category, and sort controls
func (h *MenuHandler) List(c *gin.Context) {
	var filter menuapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	items, err := h.menuService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, len(items))
}

// ListAll returns every item including unavailable ones, for the admin table
func (h *MenuHandler) ListAll(c *gin.Context) {
	items, err := h.menuService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, len(items))
}

// Get returns a single menu item
func (h *MenuHandler) Get(c *gin.Context) {
	item, err := h.menuService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// Categories returns the category filter options
func (h *MenuHandler) Categories(c *gin.Context) {
	categories, err := h.menuService.Categories(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, categories)
}

// Create adds a menu item
func (h *MenuHandler) Create(c *gin.Context) {
	var req menuapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.menuService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, item)
}

// Update edits a menu item
func (h *MenuHandler) Update(c *gin.Context) {
	var req menuapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.menuService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// availabilityRequest toggles whether an item can be ordered
type availabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// SetAvailability enables or disables an item
func (h *MenuHandler) SetAvailability(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.menuService.SetAvailability(c.Request.Context(), c.Param("id"), *req.Available)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete removes a menu item
func (h *MenuHandler) Delete(c *gin.Context) {
	if err := h.menuService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
