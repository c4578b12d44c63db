package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig           `envconfig:"APP"`
	HttpServer    HttpServerConfig    `envconfig:"HTTP"`
	HttpClient    HttpClientConfig    `envconfig:"HTTP_CLIENT"`
	Database      DatabaseConfig      `envconfig:"DB"`
	Redis         RedisConfig         `envconfig:"REDIS"`
	MessageStream MessageStreamConfig `envconfig:"AMQP"`
	Gateway       GatewayConfig       `envconfig:"GATEWAY"`
	Session       SessionConfig       `envconfig:"SESSION"`
	Telegram      TelegramConfig      `envconfig:"TELEGRAM"`
	Scheduler     SchedulerConfig     `envconfig:"SCHEDULER"`
}

type AppConfig struct {
	Name string `envconfig:"NAME" default:"turf-booking-service"`
	Env  string `envconfig:"ENV" default:"production"`
	// public base URL used to build gateway callback URLs and browser redirects
	BaseURL string `envconfig:"BASE_URL" required:"true"`
	// requests per minute per client IP on login, signup and payment initiation
	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"30"`
	// reverse proxies whose X-Forwarded-For is believed; empty means the socket peer is the client
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

type HttpServerConfig struct {
	Port            string        `envconfig:"PORT" default:"3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type HttpClientConfig struct {
	// breaker type: threshold | consecutive | rate
	Type             string        `envconfig:"TYPE" default:"consecutive"`
	Timeout          time.Duration `envconfig:"TIMEOUT" default:"15s"`
	ConsecutiveFails int64         `envconfig:"CONSECUTIVE_FAILS" default:"5"`
	Threshold        int64         `envconfig:"THRESHOLD" default:"10"`
	ErrorRate        float64       `envconfig:"ERROR_RATE" default:"0.5"`
	MinSamples       int64         `envconfig:"MIN_SAMPLES" default:"20"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD"`
	Name            string        `envconfig:"NAME" default:"pma"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"TIMEZONE" default:"Asia/Dhaka"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"30s"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
	// topic the settlement path publishes notifications to
	NotificationTopic string `envconfig:"NOTIFICATION_TOPIC" default:"payment_notification"`
	PoisonedTopic     string `envconfig:"POISONED_TOPIC" default:"poisoned_queue"`
}

type GatewayConfig struct {
	BaseURL       string `envconfig:"BASE_URL" default:"https://sandbox.sslcommerz.com"`
	StoreID       string `envconfig:"STORE_ID" required:"true"`
	StorePassword string `envconfig:"STORE_PASSWORD" required:"true"`
	Currency      string `envconfig:"CURRENCY" default:"BDT"`
}

type SessionConfig struct {
	Secret     string        `envconfig:"SECRET" required:"true"`
	TTL        time.Duration `envconfig:"TTL" default:"12h"`
	CookieName string        `envconfig:"COOKIE_NAME" default:"pma_session"`
}

type TelegramConfig struct {
	BaseURL string `envconfig:"BASE_URL" default:"https://api.telegram.org"`
	Token   string `envconfig:"API_KEY"`
	ChatID  string `envconfig:"GROUP_ID"`
}

type SchedulerConfig struct {
	MonitoringPort string        `envconfig:"MONITORING_PORT" default:"8080"`
	Concurrency    int           `envconfig:"CONCURRENCY" default:"10"`
	RetryDelay     time.Duration `envconfig:"RETRY_DELAY" default:"1m"`
	MaxRetry       int           `envconfig:"MAX_RETRY" default:"12"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}
	return &cfg
}
