package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	MessageStream MessageStreamConfig
	HttpClient    HttpClientConfig
	Stripe        StripeConfig
	Jwt           JwtConfig
	GoogleOauth   GoogleOauthConfig
	SmsGateway    SmsGatewayConfig
	Smtp          SmtpConfig
	Booking       BookingConfig
}

type HttpServerConfig struct {
	Port           string `envconfig:"HTTP_PORT" default:"8081"`
	MonitoringPort string `envconfig:"MONITORING_PORT" default:"8090"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"DB_HOST" default:"localhost"`
	Port         string `envconfig:"DB_PORT" default:"5432"`
	Username     string `envconfig:"DB_USERNAME" default:"postgres"`
	Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name         string `envconfig:"DB_NAME" default:"callbooking"`
	SslMode      string `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"AMQP_HOST" default:"localhost"`
	Port     string `envconfig:"AMQP_PORT" default:"5672"`
	Username string `envconfig:"AMQP_USERNAME" default:"guest"`
	Password string `envconfig:"AMQP_PASSWORD" default:"guest"`
}

type HttpClientConfig struct {
	Type                string  `envconfig:"HTTP_CLIENT_CB_TYPE" default:"threshold"`
	Timeout             int     `envconfig:"HTTP_CLIENT_TIMEOUT_SECONDS" default:"10"`
	Threshold           int64   `envconfig:"HTTP_CLIENT_CB_THRESHOLD" default:"10"`
	ConsecutiveFailures int64   `envconfig:"HTTP_CLIENT_CB_CONSECUTIVE" default:"5"`
	ErrorRate           float64 `envconfig:"HTTP_CLIENT_CB_ERROR_RATE" default:"0.65"`
	MinSamples          int64   `envconfig:"HTTP_CLIENT_CB_MIN_SAMPLES" default:"20"`
}

type StripeConfig struct {
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY" default:""`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" default:""`
	Currency      string `envconfig:"STRIPE_CURRENCY" default:"usd"`
}

type JwtConfig struct {
	Secret      string `envconfig:"JWT_SECRET" default:"secretkey"`
	ExpiryHours int    `envconfig:"JWT_EXPIRY_HOURS" default:"1"`
}

type GoogleOauthConfig struct {
	ClientID     string `envconfig:"GOOGLE_CLIENT_ID" default:""`
	ClientSecret string `envconfig:"GOOGLE_CLIENT_SECRET" default:""`
	RedirectURL  string `envconfig:"GOOGLE_REDIRECT_URL" default:"http://localhost:8081/api/v1/auth/google/callback"`
}

type SmsGatewayConfig struct {
	BaseURL string `envconfig:"SMS_GATEWAY_BASE_URL" default:"http://localhost:9090"`
	Sender  string `envconfig:"SMS_GATEWAY_SENDER" default:"CallBooking"`
	ApiKey  string `envconfig:"SMS_GATEWAY_API_KEY" default:""`
	CodeTTL int    `envconfig:"SMS_CODE_TTL_MINUTES" default:"5"`
}

type SmtpConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"localhost"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"SMTP_FROM" default:"noreply@onlycalls.example"`
}

type BookingConfig struct {
	DefaultCommissionPct int64  `envconfig:"BOOKING_DEFAULT_COMMISSION_PCT" default:"30"`
	CallLinkBase         string `envconfig:"BOOKING_CALL_LINK_BASE" default:"https://onlycalls.example/call"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return &cfg
}
