package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/whiteelite/narrow/internal/domain/dispatch"
	"github.com/whiteelite/narrow/internal/infrastructure/messaging/kafka/repositories/repository"
	"github.com/whiteelite/narrow/internal/relay"
)

// relayCmd serves request envelopes from Kafka
var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Consume request envelopes from Kafka and publish dispatch reports",
	RunE:  runRelay,
}

func runRelay(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	requestParams := repository.KafkaMessageQueueParams{
		Brokers:          cfg.Relay.Brokers,
		Topic:            cfg.Relay.RequestTopic,
		GroupID:          cfg.Relay.GroupID,
		ToConsumeBufSize: cfg.Relay.ToConsumeBufSize,
		Logger:           logger,
	}
	if err := repository.ValidateKafkaParams(requestParams); err != nil {
		return err
	}

	reportParams := repository.KafkaMessageQueueParams{
		Brokers:          cfg.Relay.Brokers,
		Topic:            cfg.Relay.ReportTopic,
		ToProduceBufSize: cfg.Relay.ToProduceBufSize,
		Logger:           logger,
	}
	if err := repository.ValidateKafkaParams(reportParams); err != nil {
		return err
	}

	requests := repository.InitializeKafkaMessageQueue(requestParams)
	defer requests.Close()

	reports := repository.InitializeKafkaMessageQueue(reportParams)
	defer reports.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("relay started",
		zap.Strings("brokers", cfg.Relay.Brokers),
		zap.String("request_topic", cfg.Relay.RequestTopic),
		zap.String("report_topic", cfg.Relay.ReportTopic),
	)

	err := relay.New(requests, reports, dispatch.NewService(), logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
