package shared

// Task types handled by cmd/worker.
const (
	TypeSnapshotPrune = "snapshot:prune"
	TypeCatalogWarm   = "catalog:warm"
)

// Queue names, in priority order.
const (
	QueueDefault     = "default"
	QueueMaintenance = "maintenance"
)
