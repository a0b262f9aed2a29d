package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bookhive/lending-service/pkg/kafka"
	"github.com/bookhive/lending-service/pkg/logger"
	"github.com/bookhive/lending-service/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type HTTPServer struct {
	Host         string        `envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

type Store struct {
	// Driver selects the snapshot store: "file" or "postgres".
	Driver  string `envconfig:"STORE_DRIVER" default:"file"`
	DataDir string `envconfig:"STORE_DATA_DIR" default:"data"`
}

type Config struct {
	Server   HTTPServer
	Store    Store
	Database postgres.Config
	Kafka    kafka.Config
	Log      logger.Log
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}
