package repository

import (
	"context"
	"sync"

	json "github.com/goccy/go-json"

	sdk "github.com/segmentio/kafka-go"
	mapper "github.com/whiteelite/narrow/internal/infrastructure/messaging/kafka/repositories/mapper"
	models "github.com/whiteelite/narrow/internal/infrastructure/messaging/kafka/repositories/models"
	shared "github.com/whiteelite/narrow/pkg/shared/domain/entities"
)

// StartConsumer reads envelopes from the topic, narrows each to its
// concrete entity and pushes it to bucket. Offsets commit through
// ReadMessage's consumer-group handling. Runs until ctx is cancelled;
// owns bucket and the errors channel.
func StartConsumer(
	ctx context.Context,
	wg *sync.WaitGroup,
	reader *sdk.Reader,
	bucket chan<- shared.Entity,
	errors chan<- error,
) {
	defer wg.Done()
	defer close(bucket)
	defer close(errors)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			data, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				errors <- err
				continue
			}

			envelope := new(models.Envelope)
			if err := json.Unmarshal(data.Value, envelope); err != nil {
				errors <- err
				continue
			}

			entity, err := mapper.FromEnvelope(envelope)
			if err != nil {
				errors <- err
				continue
			}

			select {
			case bucket <- entity:
			case <-ctx.Done():
				return
			}
		}
	}
}
