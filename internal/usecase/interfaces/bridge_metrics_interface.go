package interfaces

import (
	"context"
	"time"

	"ryft_bridge/internal/domain/entities"
)

// IBridgeMetrics records one sample per resolved or rejected bridge operation.
type IBridgeMetrics interface {
	RecordOperation(ctx context.Context, op entities.Operation, status string, elapsed time.Duration)
}
