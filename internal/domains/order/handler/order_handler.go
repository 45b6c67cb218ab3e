package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/domains/order/service"
	"storefront-backend/internal/shared/middleware"
	"storefront-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListOrders handles GET /orders
// @Summary Order history for the current session
// @Router /orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	orders, err := h.service.ListOrders(c.Request.Context(), sessionID)
	if err != nil {
		response.BadGateway(c, "Failed to load orders")
		return
	}

	response.Success(c, http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id
// @Router /orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), sessionID, id)
	if err != nil {
		response.NotFound(c, "Order not found")
		return
	}

	response.Success(c, http.StatusOK, order)
}
