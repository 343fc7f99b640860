package relay

import (
	"context"

	"go.uber.org/zap"

	"github.com/whiteelite/narrow/internal/domain/entities"
	"github.com/whiteelite/narrow/internal/domain/repositories"
)

// Relay consumes narrowed requests from one queue, runs the matching
// dispatch operation and publishes a report to another.
type Relay struct {
	consumer   repositories.MessageQueueConsumer
	producer   repositories.MessageQueueProducer
	dispatcher repositories.Dispatcher
	logger     *zap.Logger
}

func New(
	consumer repositories.MessageQueueConsumer,
	producer repositories.MessageQueueProducer,
	dispatcher repositories.Dispatcher,
	logger *zap.Logger,
) *Relay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Relay{
		consumer:   consumer,
		producer:   producer,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Run blocks until ctx is cancelled or the consumer channel closes.
// Requests that fail to dispatch are logged and skipped; the stream
// keeps going.
func (r *Relay) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case request, ok := <-r.consumer.ToConsumeBuffered():
			if !ok {
				return nil
			}

			lines, err := r.dispatcher.Dispatch(ctx, request)
			if err != nil {
				r.logger.Warn("dispatch failed", zap.Error(err))
				continue
			}

			report := entities.NewReport(lines)
			select {
			case r.producer.ToProduceBuffered() <- report:
			case <-ctx.Done():
				return ctx.Err()
			}

			r.logger.Info("request dispatched",
				zap.String("report_id", report.ID.String()),
				zap.Int("lines", len(lines)),
			)
		}
	}
}
