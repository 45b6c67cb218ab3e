package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/domains/checkout/model"
	"storefront-backend/internal/domains/checkout/service"
	"storefront-backend/internal/shared/middleware"
	"storefront-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// CreateSession handles POST /checkout/session
// @Summary Create a checkout session and return the redirect URL
// @Router /checkout/session [post]
func (h *Handler) CreateSession(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateSession(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, model.ErrEmptyCart) {
			response.ErrorResponse(c, http.StatusConflict, "EMPTY_CART", err.Error())
			return
		}
		response.BadGateway(c, "Failed to create checkout session")
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// GetStatus handles GET /checkout/status/:id
// @Summary Poll payment status after the redirect returns
// @Router /checkout/status/{id} [get]
func (h *Handler) GetStatus(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkoutSessionID := c.Param("id")
	if checkoutSessionID == "" {
		response.BadRequest(c, "checkout session id is required")
		return
	}

	status, err := h.service.GetStatus(c.Request.Context(), sessionID, checkoutSessionID)
	if err != nil {
		response.BadGateway(c, "Failed to get payment status")
		return
	}

	response.Success(c, http.StatusOK, status)
}
