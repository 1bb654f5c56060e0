package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of old log files kept when a new session starts
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting Green Terrace"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Component Wiring
// =============================================================================

const (
	// RefreshWorkers is the worker count of the background pool
	RefreshWorkers = 1

	// RefreshQueueSize is the background job queue length
	RefreshQueueSize = 4

	// RefreshJobTimeout bounds one catalog refresh
	RefreshJobTimeout = time.Minute
)

// Log messages for component wiring
const (
	LogMsgCatalogSource       = "Catalog source selected"
	LogMsgPriceSource         = "Price source selected"
	LogMsgPriceSourceDisabled = "No price source configured, catalog prices will be used"
	LogMsgCatalogRefreshOn    = "Catalog refresh scheduled"

	ErrMsgFailedLoadGrowingCosts = "failed to load growing costs"
	ErrMsgFailedLoadCatalog      = "failed to load catalog"
	ErrMsgFailedLoadPriceTable   = "failed to load price table"
	ErrMsgFailedConnectDatabase  = "failed to connect to database"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingBackground   = "Stopping background jobs..."
	LogMsgClosingDatabase      = "Closing database pool..."
)
