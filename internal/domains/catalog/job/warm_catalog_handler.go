package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"storefront-backend/internal/domains/catalog/service"
	"storefront-backend/pkg/logger"
)

// WarmCatalogHandler refreshes the category cache ahead of expiry so
// storefront page loads hit Redis instead of the upstream shop API.
type WarmCatalogHandler struct {
	catalog service.ServiceInterface
}

func NewWarmCatalogHandler(catalog service.ServiceInterface) *WarmCatalogHandler {
	return &WarmCatalogHandler{
		catalog: catalog,
	}
}

func (h *WarmCatalogHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	logger.Info("Processing catalog warm task", map[string]interface{}{})

	if err := h.catalog.WarmCategories(ctx); err != nil {
		logger.Error("Failed to warm category cache", err)
		return fmt.Errorf("warm categories: %w", err)
	}

	logger.Info("Category cache warmed", map[string]interface{}{})
	return nil
}
