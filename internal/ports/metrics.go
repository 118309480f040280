package ports

import (
	"context"
	"time"
)

// CommandRecorder records the outcome of one service operation.
// *telemetry.Metrics implements it.
type CommandRecorder interface {
	RecordCommand(ctx context.Context, operation, result string, elapsed time.Duration)
}
