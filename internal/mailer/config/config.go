// Package config holds runtime settings for the mailer consumer, read from
// environment variables.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	AppName     string `env:"APP_NAME, default=tools"`
	AppMode     string `env:"APP_MODE, default=development"`
	ServiceName string `env:"SERVICE_NAME, default=mailer"`

	KafkaAddrs []string `env:"KAFKA_ADDRS, default=localhost:9092"`
	GroupID    string   `env:"KAFKA_GROUP_ID, default=mailer"`
	InputTopic string   `env:"KAFKA_INPUT_TOPIC, default=mailer"`

	SMTPServer   string `env:"SMTP_SERVER"`
	SMTPPort     int    `env:"SMTP_PORT, default=587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	SenderName  string `env:"SENDER_NAME, default=Tools"`
	SenderEmail string `env:"SENDER_EMAIL"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
