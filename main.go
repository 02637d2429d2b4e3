package main

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/api"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/events"
	"github.com/carson-networks/ledger-server/internal/events/kafka"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

func main() {
	// Optional .env for local runs; the environment wins.
	_ = godotenv.Load()

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logrus.Info("ledger-server starting")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	svc := service.NewService(dbStorage)

	workers := envConfig.OperatorWorkers
	if envConfig.StorageBackend == config.BackendMemory && workers != 1 {
		// The memory backend relies on the queue for write serialization.
		logrus.Info("memory backend: forcing a single operator worker")
		workers = 1
	}
	delegator := operator.NewOperatorDelegator(dbStorage, workers)
	delegator.Start()
	defer delegator.Stop()

	var publisher events.Publisher = events.NopPublisher{}
	if len(envConfig.KafkaBrokers) > 0 {
		kafkaPublisher := kafka.NewPublisher(envConfig.KafkaBrokers, envConfig.KafkaTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:    logger,
			Port:      envConfig.Port,
			Service:   svc,
			Operator:  delegator,
			Publisher: publisher,
			Topic:     envConfig.KafkaTopic,
			Strict:    envConfig.StrictReferences,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
