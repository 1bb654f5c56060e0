package worker

import "errors"

// ErrPoolStopped is returned when enqueueing on a stopped pool
var ErrPoolStopped = errors.New("worker pool stopped")

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobCompleted = "Worker job completed"
)

// Log messages for the catalog refresh job
const (
	LogMsgCatalogRefreshed = "Catalog cache refreshed"
)

// CatalogRefreshJobName identifies the catalog refresh job in logs
const CatalogRefreshJobName = "catalog_refresh"
