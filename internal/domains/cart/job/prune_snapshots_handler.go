package job

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"storefront-backend/internal/infrastructure/snapshot"
	"storefront-backend/internal/shared/utils"
	"storefront-backend/pkg/logger"
)

// PruneSnapshotsPayload carries the retention window for a prune run.
type PruneSnapshotsPayload struct {
	RetentionHours int `json:"retention_hours"`
}

// PruneSnapshotsHandler removes cart snapshots older than the retention
// window. Guest sessions expire client-side, so their rows would otherwise
// accumulate forever.
type PruneSnapshotsHandler struct {
	store *snapshot.SQLiteStore
}

func NewPruneSnapshotsHandler(store *snapshot.SQLiteStore) *PruneSnapshotsHandler {
	return &PruneSnapshotsHandler{
		store: store,
	}
}

func (h *PruneSnapshotsHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload PruneSnapshotsPayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if payload.RetentionHours <= 0 {
		payload.RetentionHours = 24 * 30
	}

	cutoff := time.Now().Add(-time.Duration(payload.RetentionHours) * time.Hour)

	logger.Info("Processing snapshot prune task", map[string]interface{}{
		"cutoff": cutoff.Format(time.RFC3339),
	})

	pruned, err := h.store.PruneBefore(ctx, cutoff)
	if err != nil {
		logger.Error("Failed to prune snapshots", err)
		return fmt.Errorf("prune snapshots: %w", err)
	}

	logger.Info("Pruned expired cart snapshots", map[string]interface{}{
		"pruned_count": pruned,
	})

	return nil
}
