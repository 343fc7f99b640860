package repositories

import (
	"context"

	shared "github.com/whiteelite/narrow/pkg/shared/domain/entities"
)

// Dispatcher routes one decoded request to its shape-specific operation
// and returns the lines the operation reported.
type Dispatcher interface {
	Dispatch(ctx context.Context, request shared.Entity) ([]string, error)
}

type MessageQueueParams interface {
	Get() map[string]any
}

type InitializeMessageQueue func(MessageQueueParams) MessageQueue

type MessageQueueConsumer interface {
	ToConsumeBuffered() <-chan shared.Entity
	Close()
}

type MessageQueueProducer interface {
	ToProduceBuffered() chan<- shared.Entity
	Close()
}

type MessageQueue interface {
	MessageQueueProducer
	MessageQueueConsumer
}
