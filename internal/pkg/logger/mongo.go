package logger

import (
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/event"
)

// Every query here is a single-document operation backed by an index,
// so anything past this threshold deserves a warning.
const slowCommandThreshold = 100 * time.Millisecond

const commandDetailCap = 512

// NewMongoMonitor logs driver commands: starts and fast completions at
// debug, slow completions at warn, failures at error.
func NewMongoMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(ctx context.Context, evt *event.CommandStartedEvent) {
			detail := evt.Command.String()
			if len(detail) > commandDetailCap {
				detail = detail[:commandDetailCap] + "..."
			}
			log.DebugContext(ctx, "mongo command started",
				"command", evt.CommandName,
				"database", evt.DatabaseName,
				"request_id", evt.RequestID,
				"detail", detail,
			)
		},
		Succeeded: func(ctx context.Context, evt *event.CommandSucceededEvent) {
			if evt.Duration > slowCommandThreshold {
				log.WarnContext(ctx, "mongo command slow",
					"command", evt.CommandName,
					"latency", evt.Duration,
					"request_id", evt.RequestID,
				)
				return
			}
			log.DebugContext(ctx, "mongo command succeeded",
				"command", evt.CommandName,
				"latency", evt.Duration,
				"request_id", evt.RequestID,
			)
		},
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			log.ErrorContext(ctx, "mongo command failed",
				"command", evt.CommandName,
				"latency", evt.Duration,
				"request_id", evt.RequestID,
				"err", evt.Failure,
			)
		},
	}
}
