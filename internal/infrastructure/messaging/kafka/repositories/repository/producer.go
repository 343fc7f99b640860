package repository

import (
	"context"
	"sync"

	json "github.com/goccy/go-json"

	sdk "github.com/segmentio/kafka-go"
	mapper "github.com/whiteelite/narrow/internal/infrastructure/messaging/kafka/repositories/mapper"
	shared "github.com/whiteelite/narrow/pkg/shared/domain/entities"
)

// StartProducer drains bucket, wraps each entity in an envelope and
// writes it to the topic. Runs until ctx is cancelled or bucket closes;
// owns the errors channel.
func StartProducer(
	ctx context.Context,
	wg *sync.WaitGroup,
	writer *sdk.Writer,
	bucket <-chan shared.Entity,
	errors chan<- error,
) {
	defer wg.Done()
	defer close(errors)

	for {
		select {
		case <-ctx.Done():
			return
		case entity, ok := <-bucket:
			if !ok {
				return
			}

			envelope, err := mapper.ToEnvelope(entity)
			if err != nil {
				errors <- err
				continue
			}

			serialized, err := json.Marshal(envelope)
			if err != nil {
				errors <- err
				continue
			}

			err = writer.WriteMessages(ctx, sdk.Message{
				Key:   []byte(envelope.Hash),
				Value: serialized,
			})
			if err != nil {
				errors <- err
				continue
			}
		}
	}
}
