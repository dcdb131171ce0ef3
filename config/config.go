package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type Postgres struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"restoran"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
}

func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Name)
}

type Redis struct {
	Host string `env:"REDIS_HOST" envDefault:"localhost"`
	Port string `env:"REDIS_PORT" envDefault:"6379"`
}

func (r Redis) Addr() string {
	return r.Host + ":" + r.Port
}

type Kafka struct {
	Broker string `env:"KAFKA_BROKER" envDefault:"localhost:9092"`
	Topic  string `env:"KAFKA_TOPIC" envDefault:"restaurant-events"`
}

type MenuService struct {
	Addr          string `env:"HTTP_ADDR" envDefault:":8081"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	Postgres      Postgres
	Kafka         Kafka
}

type CartService struct {
	Addr          string        `env:"HTTP_ADDR" envDefault:":8084"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	CatalogURL    string        `env:"CATALOG_URL" envDefault:"http://localhost:8080/api"`
	Storage       string        `env:"CART_STORAGE" envDefault:"redis"`
	CartTTL       time.Duration `env:"CART_TTL" envDefault:"720h"`
	SecureCookies bool          `env:"SECURE_COOKIES" envDefault:"false"`
	Redis         Redis
}

type FeedbackService struct {
	Addr         string        `env:"HTTP_ADDR" envDefault:":8082"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	DuplicateTTL time.Duration `env:"FEEDBACK_DUPLICATE_TTL" envDefault:"10m"`
	Postgres     Postgres
	Redis        Redis
	Kafka        Kafka
}

type AggService struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	GroupID  string `env:"KAFKA_GROUP_ID" envDefault:"agg-svc"`
	Redis    Redis
	Kafka    Kafka
}

type AnalyticsService struct {
	Addr     string `env:"HTTP_ADDR" envDefault:":8083"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Postgres Postgres
	Redis    Redis
}

type Gateway struct {
	Addr            string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	MenuSvcURL      string `env:"MENU_SVC_URL" envDefault:"http://localhost:8081"`
	FeedbackSvcURL  string `env:"FEEDBACK_SVC_URL" envDefault:"http://localhost:8082"`
	AnalyticsSvcURL string `env:"ANALYTICS_SVC_URL" envDefault:"http://localhost:8083"`
	CartSvcURL      string `env:"CART_SVC_URL" envDefault:"http://localhost:8084"`
	FrontendDir     string `env:"FRONTEND_DIR" envDefault:"./frontend"`
	SecureCookies   bool   `env:"SECURE_COOKIES" envDefault:"false"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:8080,http://127.0.0.1:8080" envSeparator:","`
}

// Load parses environment variables into cfg using its env tags.
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// MustLoad is Load for service entry points.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
}

func MustInitPostgres(cfg Postgres) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg Redis) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	return client
}

func NewKafkaReader(cfg Kafka, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(cfg Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
}
