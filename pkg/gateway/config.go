package gateway

import "time"

type Config struct {
	BaseURL         string        `mapstructure:"base_url"`
	PublicKey       string        `mapstructure:"public_key"`
	PrivateKey      string        `mapstructure:"private_key"`
	IntegritySecret string        `mapstructure:"integrity_secret"`
	Timeout         time.Duration `mapstructure:"timeout"`
}
