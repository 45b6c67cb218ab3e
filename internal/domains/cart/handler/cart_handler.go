package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/domains/cart/controller"
	"storefront-backend/internal/domains/cart/model"
	"storefront-backend/internal/shared/middleware"
	"storefront-backend/internal/shared/response"
)

// Handler exposes the cart controller over HTTP. Failures are surfaced as
// state, so every response carries the full controller state: the
// last-known-good cart, the loading flag, and the most recent error kind.
type Handler struct {
	carts *controller.Manager
}

// NewHandler creates handler instance
func NewHandler(carts *controller.Manager) *Handler {
	return &Handler{carts: carts}
}

// ===================================
// API 1: GET /cart
// ===================================

// GetCart handles GET /cart
// @Summary Get the session's shopping cart
// @Description Refreshes from the shop API; on upstream failure the
// last-known-good snapshot is returned with the error kind set.
// @Router /cart [get]
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctrl := h.carts.Get(c.Request.Context(), sessionID)
	_ = ctrl.FetchCart(c.Request.Context()) // failure lands in state

	response.Success(c, http.StatusOK, ctrl.State())
}

// ===================================
// API 2: POST /cart/items
// ===================================

// AddItem handles POST /cart/items
// @Summary Add a product to the cart
// @Router /cart/items [post]
func (h *Handler) AddItem(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid add-to-cart request", err)
		return
	}

	ctrl := h.carts.Get(c.Request.Context(), sessionID)
	if err := ctrl.AddItem(c.Request.Context(), req.ProductID, req.Quantity); err != nil {
		h.mutationError(c, ctrl, err)
		return
	}

	response.Success(c, http.StatusCreated, ctrl.State())
}

// ===================================
// API 3: PUT /cart/items/:id
// ===================================

// UpdateItem handles PUT /cart/items/:id
// @Summary Update a cart line's quantity (<= 0 removes the line)
// @Router /cart/items/{id} [put]
func (h *Handler) UpdateItem(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	itemID := c.Param("id")
	if itemID == "" {
		response.BadRequest(c, "item id is required")
		return
	}

	var req model.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid update request", err)
		return
	}

	ctrl := h.carts.Get(c.Request.Context(), sessionID)
	if err := ctrl.UpdateItem(c.Request.Context(), itemID, req.Quantity); err != nil {
		h.mutationError(c, ctrl, err)
		return
	}

	response.Success(c, http.StatusOK, ctrl.State())
}

// ===================================
// API 4: DELETE /cart/items/:id
// ===================================

// RemoveItem handles DELETE /cart/items/:id
// @Router /cart/items/{id} [delete]
func (h *Handler) RemoveItem(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	itemID := c.Param("id")
	if itemID == "" {
		response.BadRequest(c, "item id is required")
		return
	}

	ctrl := h.carts.Get(c.Request.Context(), sessionID)
	if err := ctrl.RemoveItem(c.Request.Context(), itemID); err != nil {
		h.mutationError(c, ctrl, err)
		return
	}

	response.Success(c, http.StatusOK, ctrl.State())
}

// ===================================
// API 5: POST /cart/clear
// ===================================

// ClearCart handles POST /cart/clear
// @Router /cart/clear [post]
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctrl := h.carts.Get(c.Request.Context(), sessionID)
	if err := ctrl.ClearCart(c.Request.Context()); err != nil {
		h.mutationError(c, ctrl, err)
		return
	}

	response.Success(c, http.StatusOK, ctrl.State())
}

// mutationError maps controller failures to HTTP. The failure kind becomes
// the error code; the controller state (with the untouched snapshot) rides
// along so the client can keep rendering it.
func (h *Handler) mutationError(c *gin.Context, ctrl *controller.Controller, err error) {
	if errors.Is(err, model.ErrInvalidQuantity) {
		response.BadRequest(c, err.Error())
		return
	}

	var opErr *model.OpError
	if errors.As(err, &opErr) {
		response.ErrorWithDetails(c, http.StatusBadGateway, string(opErr.Kind), opErr.Message, ctrl.State())
		return
	}

	response.InternalServerError(c, err.Error())
}
