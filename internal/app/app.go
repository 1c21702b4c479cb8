package app

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/devmarrez/payment-relay/config"
	"github.com/devmarrez/payment-relay/internal/gateway"
	"github.com/devmarrez/payment-relay/internal/handlers"
	"github.com/devmarrez/payment-relay/internal/metrics"
	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/devmarrez/payment-relay/internal/publisher"
	"github.com/devmarrez/payment-relay/internal/repository/posgrest"
	"github.com/devmarrez/payment-relay/internal/service"
	"github.com/devmarrez/payment-relay/internal/subscriber"
	"github.com/devmarrez/payment-relay/internal/webhook"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg

	metrics.RegisterMetrics()

	topics := []string{
		models.PaymentRequestedTopic,
		models.PaymentStatusTopic,
		models.PaymentEventsTopic,
		models.PaymentsDLQTopic,
	}
	pub := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, topics, cfg.Kafka.GetRetryConfig())

	var deduper subscriber.Deduper
	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})
		deduper = subscriber.NewRedisDeduper(client, cfg.Redis.DedupTTL)
	} else {
		logrus.Warn("Redis not configured, duplicate deliveries will not be filtered")
	}

	var logRepo service.DeliveryLogRepo
	var logReader handlers.DeliveryLogReader
	endpointURLs := cfg.Webhook.EndpointPairs()
	if cfg.DB.Enabled() {
		db, err := cfg.DB.GormConnect()
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		store := posgrest.NewWebhookStore(db)
		if err := store.Migrate(); err != nil {
			log.Fatalf("failed to auto migrate: %v", err)
		}
		logRepo = store
		logReader = store

		registered, err := store.ActiveEndpoints(context.Background())
		if err != nil {
			log.Fatalf("failed to load webhook endpoint registry: %v", err)
		}
		for _, ep := range registered {
			endpointURLs[ep.Name] = ep.URL
		}
	}

	secrets := webhook.NewEnvSecretStore(cfg.Webhook.SecretPrefix)
	endpoints := make([]webhook.Endpoint, 0, len(endpointURLs))
	for name, url := range endpointURLs {
		secret, err := secrets.Secret(name)
		if err != nil {
			log.Fatalf("webhook endpoint %s: %v", name, err)
		}
		endpoints = append(endpoints, webhook.Endpoint{Name: name, URL: url, Secret: secret})
	}
	dispatcher := webhook.NewDispatcher(endpoints, cfg.Webhook)

	var gw gateway.GatewayClient = gateway.NewSimulatedGateway()

	intake := service.NewIntakeService(pub)
	validator := service.NewValidatorService(pub, service.NewSimulatedFraudScorer())
	processor := service.NewProcessorService(gw, service.NewEventPublisher(pub))
	notifier := service.NewNotifierService(dispatcher, logRepo)
	analytics := service.NewAnalyticsService()

	paymentHandler := handlers.NewPaymentHandler(intake, logReader)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(paymentHandler)

	a.initSubscriptions(pub, deduper, validator, processor, notifier, analytics)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

// initSubscriptions wires the delivery topology: the request queue has a
// single consumer group; the status and events topics are broadcast, each
// subscription with its own group, delivery counts and dead-letter state.
func (a *App) initSubscriptions(
	pub *publisher.KafkaPublisher,
	deduper subscriber.Deduper,
	validator *service.ValidatorService,
	processor *service.ProcessorService,
	notifier *service.NotifierService,
	analytics *service.AnalyticsService,
) {
	kafkaCfg := a.config.Kafka
	brokers := kafkaCfg.BrokerList()
	retry := kafkaCfg.GetRetryConfig()
	ctx := context.Background()

	newSub := func(topic, group string) *subscriber.Subscription {
		return subscriber.NewSubscription(
			brokers, topic, group, pub, deduper,
			kafkaCfg.DeadLetterThreshold, kafkaCfg.MaxConcurrentPerSub, retry,
		)
	}

	newSub(models.PaymentRequestedTopic, kafkaCfg.ValidatorGroup).Listen(ctx, validator.HandleRequest)
	newSub(models.PaymentStatusTopic, kafkaCfg.ProcessorGroup).Listen(ctx, processor.HandleStatus)
	newSub(models.PaymentEventsTopic, kafkaCfg.NotifierGroup).Listen(ctx, notifier.HandleEvent)
	newSub(models.PaymentStatusTopic, kafkaCfg.AnalyticsGroup+".status").Listen(ctx, analytics.HandleStatus)
	newSub(models.PaymentEventsTopic, kafkaCfg.AnalyticsGroup+".events").Listen(ctx, analytics.HandleEvent)
}
