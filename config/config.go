package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer     HttpServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	MessageStream  MessageStreamConfig
	HttpClient     HttpClientConfig
	UserService    UserServiceConfig
	PaymentGateway PaymentGatewayConfig
	Scheduler      SchedulerConfig
	Platform       PlatformConfig
}

type HttpServerConfig struct {
	Port string `envconfig:"http_server_port" default:"8081"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"db_host" default:"localhost"`
	Port         string `envconfig:"db_port" default:"5432"`
	User         string `envconfig:"db_user" default:"postgres"`
	Password     string `envconfig:"db_password" default:"postgres"`
	Name         string `envconfig:"db_name" default:"movie_booking"`
	SSLMode      string `envconfig:"db_ssl_mode" default:"disable"`
	MaxOpenConns int    `envconfig:"db_max_open_conns" default:"20"`
	MaxIdleConns int    `envconfig:"db_max_idle_conns" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"redis_host" default:"localhost"`
	Port     string `envconfig:"redis_port" default:"6379"`
	Password string `envconfig:"redis_password" default:""`
	DB       int    `envconfig:"redis_db" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"amqp_host" default:"localhost"`
	Port     string `envconfig:"amqp_port" default:"5672"`
	User     string `envconfig:"amqp_user" default:"guest"`
	Password string `envconfig:"amqp_password" default:"guest"`
}

type HttpClientConfig struct {
	Type                string  `envconfig:"http_client_type" default:"threshold"`
	Timeout             int     `envconfig:"http_client_timeout" default:"10"`
	ConsecutiveFailures int64   `envconfig:"http_client_consecutive_failures" default:"5"`
	ErrorRate           float64 `envconfig:"http_client_error_rate" default:"0.65"`
	MinSamples          int64   `envconfig:"http_client_min_samples" default:"10"`
	Threshold           int64   `envconfig:"http_client_threshold" default:"10"`
}

type UserServiceConfig struct {
	Host string `envconfig:"user_service_host" default:"localhost"`
	Port string `envconfig:"user_service_port" default:"8080"`
}

type PaymentGatewayConfig struct {
	Host        string `envconfig:"payment_gateway_host" default:"localhost"`
	Port        string `envconfig:"payment_gateway_port" default:"8090"`
	CallbackURL string `envconfig:"payment_gateway_callback_url" default:"http://localhost:8081/api/private/payment/callback"`
}

type SchedulerConfig struct {
	SeatHoldTTLMinutes    int    `envconfig:"scheduler_seat_hold_ttl_minutes" default:"5"`
	PaymentTTLMinutes     int    `envconfig:"scheduler_payment_ttl_minutes" default:"10"`
	VendorPayoutCronSpec  string `envconfig:"scheduler_vendor_payout_cron" default:"0 2 1 * *"`
	MonitoringEnabled     bool   `envconfig:"scheduler_monitoring_enabled" default:"false"`
	MonitoringBindAddress string `envconfig:"scheduler_monitoring_bind_address" default:":8082"`
}

type PlatformConfig struct {
	AdminUserID          int64   `envconfig:"platform_admin_user_id" default:"1"`
	CommissionRate       float64 `envconfig:"platform_commission_rate" default:"0.15"`
	CancellationFeeRate  float64 `envconfig:"platform_cancellation_fee_rate" default:"0.15"`
	MoviePassDiscount    float64 `envconfig:"platform_movie_pass_discount" default:"0.08"`
	LoyaltyPointsPerSeat int     `envconfig:"platform_loyalty_points_per_seat" default:"5"`
}

func InitConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, reading configuration from environment")
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		log.Fatal(err)
	}

	return cfg
}
