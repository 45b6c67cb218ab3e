package main

import (
	"github.com/hibiken/asynq"

	cartJob "storefront-backend/internal/domains/cart/job"
	catalogJob "storefront-backend/internal/domains/catalog/job"
	"storefront-backend/internal/shared"
	"storefront-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	pruneSnapshots *cartJob.PruneSnapshotsHandler
	warmCatalog    *catalogJob.WarmCatalogHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		pruneSnapshots: cartJob.NewPruneSnapshotsHandler(c.SnapshotStore),
		warmCatalog:    catalogJob.NewWarmCatalogHandler(c.CatalogService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeSnapshotPrune, h.pruneSnapshots.ProcessTask)
	mux.HandleFunc(shared.TypeCatalogWarm, h.warmCatalog.ProcessTask)
}
