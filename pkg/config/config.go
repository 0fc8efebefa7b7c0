package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "greenkart"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	CORS     CORSConfig
	Checkout CheckoutConfig
	Stripe   StripeConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GREENKART_APP_ENV" default:"dev"`
	Port         string `envconfig:"GREENKART_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"GREENKART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GREENKART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"GREENKART_CORS_ALLOWED_ORIGINS" default:"http://localhost:5000,http://localhost:5173"`
}

// CheckoutConfig carries the order pricing constants. Amounts are integer paise.
type CheckoutConfig struct {
	TaxRatePercent        int64  `envconfig:"GREENKART_CHECKOUT_TAX_RATE_PERCENT" default:"5"`
	ShippingFee           int64  `envconfig:"GREENKART_CHECKOUT_SHIPPING_FEE" default:"9900"`
	FreeShippingThreshold int64  `envconfig:"GREENKART_CHECKOUT_FREE_SHIPPING_THRESHOLD" default:"100000"`
	Currency              string `envconfig:"GREENKART_CHECKOUT_CURRENCY" default:"inr"`
}

func (c CheckoutConfig) validate() error {
	if c.TaxRatePercent < 0 {
		return fmt.Errorf("checkout tax rate must not be negative, got %d", c.TaxRatePercent)
	}
	if c.ShippingFee < 0 {
		return fmt.Errorf("checkout shipping fee must not be negative, got %d", c.ShippingFee)
	}
	if c.Currency == "" {
		return fmt.Errorf("checkout currency is required")
	}
	return nil
}

type StripeConfig struct {
	APIKey string `envconfig:"GREENKART_STRIPE_API_KEY"`
	Env    string `envconfig:"GREENKART_STRIPE_ENV" default:"test"`
}

// Environment returns the normalized Stripe environment (test/live).
func (s StripeConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "test"
	}
	return env
}

// Configured reports whether a Stripe API key was supplied.
func (s StripeConfig) Configured() bool {
	return strings.TrimSpace(s.APIKey) != ""
}
