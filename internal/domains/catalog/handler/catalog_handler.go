package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/domains/catalog/model"
	"storefront-backend/internal/domains/catalog/service"
	"storefront-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListProducts handles GET /products
// @Summary Browse products with search/filter/ordering/pagination
// @Router /products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	filter := model.Filter{
		Search:   c.Query("search"),
		MinPrice: c.Query("min_price"),
		MaxPrice: c.Query("max_price"),
		Ordering: c.Query("ordering"),
		Category: queryInt(c, "category"),
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	}

	list, err := h.service.ListProducts(c.Request.Context(), filter)
	if err != nil {
		response.BadGateway(c, "Failed to load products")
		return
	}

	filter = filter.Normalize()
	response.SuccessWithMeta(c, http.StatusOK, list.Results, &response.Meta{
		Page:  filter.Page,
		Limit: filter.PageSize,
		Total: list.Count,
	})
}

// GetProduct handles GET /products/:id
// @Router /products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid product id")
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, "Product not found")
		return
	}

	response.Success(c, http.StatusOK, product)
}

// ListCategories handles GET /categories
// @Router /categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.BadGateway(c, "Failed to load categories")
		return
	}

	response.Success(c, http.StatusOK, categories)
}

func queryInt(c *gin.Context, key string) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return value
}
