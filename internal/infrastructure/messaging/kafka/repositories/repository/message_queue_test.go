package repository_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/whiteelite/narrow/internal/infrastructure/messaging/kafka/repositories/models"
	"github.com/whiteelite/narrow/internal/infrastructure/messaging/kafka/repositories/repository"
)

func TestValidateKafkaParams(t *testing.T) {
	t.Parallel()

	if err := repository.ValidateKafkaParams(repository.KafkaMessageQueueParams{Topic: "t"}); err == nil {
		t.Error("missing brokers must fail")
	}
	if err := repository.ValidateKafkaParams(repository.KafkaMessageQueueParams{Brokers: []string{"b:9092"}}); err == nil {
		t.Error("missing topic must fail")
	}
	if err := repository.ValidateKafkaParams(repository.KafkaMessageQueueParams{
		Brokers: []string{"b:9092"},
		Topic:   "t",
	}); err != nil {
		t.Errorf("valid params failed: %v", err)
	}
}

func TestKafkaParams_Get(t *testing.T) {
	t.Parallel()

	params := repository.KafkaMessageQueueParams{
		Brokers: []string{"b:9092"},
		Topic:   "t",
		GroupID: "g",
	}
	got := params.Get()
	if got["topic"] != "t" || got["groupId"] != "g" {
		t.Fatalf("got %v", got)
	}
}

// Round trip against a live broker. Set NARROW_TEST_BROKERS (comma
// separated) to run, e.g. NARROW_TEST_BROKERS=localhost:9092.
func TestKafkaMessageQueue_RoundTrip(t *testing.T) {
	brokersEnv := os.Getenv("NARROW_TEST_BROKERS")
	if brokersEnv == "" {
		t.Skip("NARROW_TEST_BROKERS not set")
	}
	brokers := strings.Split(brokersEnv, ",")
	topic := "narrow-test-" + uuid.NewString()

	queue := repository.InitializeKafkaMessageQueue(repository.KafkaMessageQueueParams{
		Brokers: brokers,
		Topic:   topic,
		GroupID: "narrow-test",
	})
	defer queue.Close()

	queue.ToProduceBuffered() <- models.VehicleRequest{Variant: "truck"}

	select {
	case entity := <-queue.ToConsumeBuffered():
		if _, ok := entity.(interface{ Drive() string }); !ok {
			t.Fatalf("got %T, want a drivable entity", entity)
		}
	case <-time.After(30 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}
