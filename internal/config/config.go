package config

import (
	"fmt"
	"time"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/gateway"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/mq"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	API        API            `mapstructure:"api"`
	Database   mysql.Config   `mapstructure:"database"`
	Redis      Redis          `mapstructure:"redis"`
	RabbitMQ   mq.Config      `mapstructure:"rabbitmq"`
	Gateway    gateway.Config `mapstructure:"gateway"`
	Fees       Fees           `mapstructure:"fees"`
	Reconciler Reconciler     `mapstructure:"reconciler"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Redis struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Fees are the fixed charges added on top of the product amount, in
// minor-currency units. They are injected into the fee calculator, never
// read from ambient state.
type Fees struct {
	BaseFee     int64  `mapstructure:"base_fee"`
	DeliveryFee int64  `mapstructure:"delivery_fee"`
	Currency    string `mapstructure:"currency"`
}

type Reconciler struct {
	Interval      time.Duration `mapstructure:"interval"`
	BatchSize     int           `mapstructure:"batch_size"`
	PendingExpiry time.Duration `mapstructure:"pending_expiry"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
