package repository

import (
	"context"
	"errors"
	"sync"

	sdk "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	domainrepos "github.com/whiteelite/narrow/internal/domain/repositories"
	shared "github.com/whiteelite/narrow/pkg/shared/domain/entities"
)

// KafkaMessageQueueParams implements repositories.MessageQueueParams
// and provides configuration for initializing KafkaMessageQueue.
type KafkaMessageQueueParams struct {
	// Required
	Brokers []string
	Topic   string

	// Optional
	GroupID          string
	ToProduceBufSize int
	ToConsumeBufSize int
	Logger           *zap.Logger
}

func (p KafkaMessageQueueParams) Get() map[string]any {
	return map[string]any{
		"brokers":         p.Brokers,
		"topic":           p.Topic,
		"groupId":         p.GroupID,
		"toProduceBuffer": p.ToProduceBufSize,
		"toConsumeBuffer": p.ToConsumeBufSize,
	}
}

// KafkaMessageQueue implements the domain MessageQueue interfaces by
// bridging to the StartProducer/StartConsumer workers.
type KafkaMessageQueue struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     *sync.WaitGroup
	logger *zap.Logger

	reader *sdk.Reader
	writer *sdk.Writer

	toProduce chan shared.Entity
	toConsume chan shared.Entity

	errorsProd chan error
	errorsCons chan error

	closeOnce sync.Once
}

// InitializeKafkaMessageQueue creates a KafkaMessageQueue using params.
func InitializeKafkaMessageQueue(params domainrepos.MessageQueueParams) domainrepos.MessageQueue {
	typed, _ := params.(KafkaMessageQueueParams)

	// defaults
	if typed.ToProduceBufSize <= 0 {
		typed.ToProduceBufSize = 1024
	}
	if typed.ToConsumeBufSize <= 0 {
		typed.ToConsumeBufSize = 1024
	}
	if typed.Logger == nil {
		typed.Logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())

	writer := &sdk.Writer{
		Addr:         sdk.TCP(typed.Brokers...),
		Topic:        typed.Topic,
		RequiredAcks: sdk.RequireAll,
		Balancer:     &sdk.LeastBytes{},
	}

	reader := sdk.NewReader(sdk.ReaderConfig{
		Brokers: typed.Brokers,
		Topic:   typed.Topic,
		GroupID: typed.GroupID,
	})

	mq := &KafkaMessageQueue{
		ctx:        ctx,
		cancel:     cancel,
		wg:         &sync.WaitGroup{},
		logger:     typed.Logger,
		reader:     reader,
		writer:     writer,
		toProduce:  make(chan shared.Entity, typed.ToProduceBufSize),
		toConsume:  make(chan shared.Entity, typed.ToConsumeBufSize),
		errorsProd: make(chan error, 16),
		errorsCons: make(chan error, 16),
	}

	mq.startWorkers()
	return mq
}

func (q *KafkaMessageQueue) startWorkers() {
	q.wg.Add(1)
	go StartProducer(q.ctx, q.wg, q.writer, q.toProduce, q.errorsProd)

	q.wg.Add(1)
	go StartConsumer(q.ctx, q.wg, q.reader, q.toConsume, q.errorsCons)

	// Drain worker errors into the log so buffers never fill up
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for q.errorsProd != nil || q.errorsCons != nil {
			select {
			case err, ok := <-q.errorsProd:
				if !ok {
					q.errorsProd = nil
					continue
				}
				q.logger.Warn("kafka produce failed", zap.String("topic", q.writer.Topic), zap.Error(err))
			case err, ok := <-q.errorsCons:
				if !ok {
					q.errorsCons = nil
					continue
				}
				q.logger.Warn("kafka consume failed", zap.String("topic", q.writer.Topic), zap.Error(err))
			}
		}
	}()
}

// ToConsumeBuffered exposes the consumer channel of entities.
func (q *KafkaMessageQueue) ToConsumeBuffered() <-chan shared.Entity {
	return q.toConsume
}

// ToProduceBuffered exposes the producer channel of entities.
func (q *KafkaMessageQueue) ToProduceBuffered() chan<- shared.Entity {
	return q.toProduce
}

// Close stops workers and closes resources. Safe to call more than
// once.
func (q *KafkaMessageQueue) Close() {
	q.closeOnce.Do(func() {
		q.cancel()
		close(q.toProduce)

		if q.reader != nil {
			_ = q.reader.Close()
		}
		if q.writer != nil {
			_ = q.writer.Close()
		}

		q.wg.Wait()
	})
}

// Compile-time assertions to ensure interface conformance
var _ domainrepos.MessageQueueConsumer = (*KafkaMessageQueue)(nil)
var _ domainrepos.MessageQueueProducer = (*KafkaMessageQueue)(nil)
var _ domainrepos.MessageQueue = (*KafkaMessageQueue)(nil)

// Helper to ensure required params are set.
func ValidateKafkaParams(p KafkaMessageQueueParams) error {
	if len(p.Brokers) == 0 {
		return errors.New("kafka brokers are required")
	}
	if p.Topic == "" {
		return errors.New("kafka topic is required")
	}
	return nil
}
