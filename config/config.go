package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Warn("No .env file found, reading configuration from environment")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Redis
	Gateway
	Webhook
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// Enabled reports whether a database was configured at all. The delivery
// log and endpoint registry are optional collaborators.
func (db DB) Enabled() bool {
	return db.HOST != ""
}

type Kafka struct {
	Brokers              string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ValidatorGroup       string `env:"KAFKA_VALIDATOR_GROUP" envDefault:"payment-validator"`
	ProcessorGroup       string `env:"KAFKA_PROCESSOR_GROUP" envDefault:"payment-processor"`
	NotifierGroup        string `env:"KAFKA_NOTIFIER_GROUP" envDefault:"payment-notifier"`
	AnalyticsGroup       string `env:"KAFKA_ANALYTICS_GROUP" envDefault:"payment-analytics"`
	DeadLetterThreshold  int    `env:"KAFKA_DEAD_LETTER_THRESHOLD" envDefault:"3"`
	MaxConcurrentPerSub  int    `env:"KAFKA_MAX_CONCURRENT" envDefault:"8"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

func (k Kafka) BrokerList() []string {
	return strings.Split(k.Brokers, ",")
}

type Redis struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	Database int           `env:"REDIS_DB" envDefault:"0"`
	DedupTTL time.Duration `env:"REDIS_DEDUP_TTL" envDefault:"24h"`
}

func (r Redis) Enabled() bool {
	return r.Addr != ""
}

type Gateway struct {
	Mode string `env:"GATEWAY_MODE" envDefault:"simulated"`
}

type Webhook struct {
	// Endpoints is a comma separated list of name=url pairs, e.g.
	// "erp=https://erp.example.com/hooks,crm=https://crm.example.com/hooks".
	Endpoints    string        `env:"WEBHOOK_ENDPOINTS"`
	SecretPrefix string        `env:"WEBHOOK_SECRET_PREFIX" envDefault:"WEBHOOK_SECRET_"`
	Timeout      time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"10s"`
	MaxAttempts  int           `env:"WEBHOOK_MAX_ATTEMPTS" envDefault:"3"`
	BackoffBase  time.Duration `env:"WEBHOOK_BACKOFF_BASE" envDefault:"1s"`
	APIVersion   string        `env:"WEBHOOK_API_VERSION" envDefault:"1.0"`
}

// EndpointPairs parses the Endpoints value into name/url pairs, skipping
// malformed entries.
func (w Webhook) EndpointPairs() map[string]string {
	pairs := make(map[string]string)
	if w.Endpoints == "" {
		return pairs
	}
	for _, entry := range strings.Split(w.Endpoints, ",") {
		name, url, ok := strings.Cut(strings.TrimSpace(entry), "=")
		if !ok || name == "" || url == "" {
			logrus.Warnf("Skipping malformed webhook endpoint entry %q", entry)
			continue
		}
		pairs[name] = url
	}
	return pairs
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
