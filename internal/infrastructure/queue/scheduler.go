package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	cartJob "storefront-backend/internal/domains/cart/job"
	"storefront-backend/internal/shared"
	"storefront-backend/pkg/logger"
)

// SchedulerConfig holds tunables for the recurring maintenance jobs.
type SchedulerConfig struct {
	SnapshotRetentionHours int
}

type Scheduler struct {
	scheduler *asynq.Scheduler
	config    SchedulerConfig
}

func NewScheduler(redisAddress string, config SchedulerConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		config:    config,
	}
}

func (s *Scheduler) RegisterMaintenanceJobs() error {
	if err := s.registerPruneSnapshotsJob(); err != nil {
		return err
	}

	if err := s.registerWarmCatalogJob(); err != nil {
		return err
	}

	return nil
}

// ================================================
// JOB 1: Prune Cart Snapshots (Daily at 3 AM)
// ================================================
func (s *Scheduler) registerPruneSnapshotsJob() error {
	payload, err := json.Marshal(cartJob.PruneSnapshotsPayload{
		RetentionHours: s.config.SnapshotRetentionHours,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeSnapshotPrune, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *", // Daily at 3 AM, low traffic
		task,
		asynq.Queue(shared.QueueMaintenance),
		asynq.MaxRetry(2),
		asynq.Timeout(5*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register PruneSnapshots job", err)
		return err
	}

	logger.Info("✓ Registered PruneSnapshots: daily at 3 AM", map[string]interface{}{})
	return nil
}

// ================================================
// JOB 2: Warm Catalog Cache (Every 10 minutes)
// ================================================
// Category TTL is 10 minutes; warming on the same cadence keeps the cache
// hot so storefront page loads never pay the upstream round-trip.
func (s *Scheduler) registerWarmCatalogJob() error {
	task := asynq.NewTask(shared.TypeCatalogWarm, nil)

	_, err := s.scheduler.Register(
		"*/10 * * * *",
		task,
		asynq.Queue(shared.QueueMaintenance),
		asynq.MaxRetry(1),
		asynq.Timeout(1*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register WarmCatalog job", err)
		return err
	}

	logger.Info("✓ Registered WarmCatalog: every 10 minutes", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
