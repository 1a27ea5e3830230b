package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Seckill SeckillConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR" required:"true"`
	Password     string        `envconfig:"REDIS_PASSWORD" default:""`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"100"`
	MinIdleConns int           `envconfig:"REDIS_MIN_IDLE_CONNS" default:"10"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"500ms"`
	// must exceed SECKILL_BLOCK_TIMEOUT, otherwise blocking stream reads time out client-side
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"500ms"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret              string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"1h"`
}

// Stream/group/consumer names are fixed per deployment; every worker process shares them.
type SeckillConfig struct {
	Stream          string        `envconfig:"SECKILL_STREAM" default:"stream.orders"`
	DeadLetter      string        `envconfig:"SECKILL_DEAD_LETTER_STREAM" default:"stream.orders.dlq"`
	Group           string        `envconfig:"SECKILL_GROUP" default:"g1"`
	Consumer        string        `envconfig:"SECKILL_CONSUMER" default:"c1"`
	Workers         int           `envconfig:"SECKILL_WORKERS" default:"1"`
	BlockTimeout    time.Duration `envconfig:"SECKILL_BLOCK_TIMEOUT" default:"2s"`
	RetryInterval   time.Duration `envconfig:"SECKILL_RETRY_INTERVAL" default:"500ms"`
	LockLease       time.Duration `envconfig:"SECKILL_LOCK_LEASE" default:"10s"`
	SweepEvery      int           `envconfig:"SECKILL_SWEEP_EVERY" default:"100"`
	OrderIDPrefix   string        `envconfig:"SECKILL_ORDER_ID_PREFIX" default:"order"`
	DisableConsumer bool          `envconfig:"SECKILL_DISABLE_CONSUMER" default:"false"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Addr:         "localhost:16379",
			PoolSize:     20,
			MinIdleConns: 1,
			DialTimeout:  time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:              "test-secret-key-for-seckill-voucher",
			AccessTokenDuration: "1h",
		},
		Seckill: SeckillConfig{
			Stream:        "stream.orders",
			DeadLetter:    "stream.orders.dlq",
			Group:         "g1",
			Consumer:      "c1",
			Workers:       1,
			BlockTimeout:  100 * time.Millisecond,
			RetryInterval: 20 * time.Millisecond,
			LockLease:     5 * time.Second,
			SweepEvery:    100,
			OrderIDPrefix: "order",
		},
	}
}
