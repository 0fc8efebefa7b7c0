package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.App.Port != "5000" {
		t.Fatalf("unexpected default port %q", cfg.App.Port)
	}
	if !cfg.App.IsDev() {
		t.Fatalf("expected dev env by default, got %q", cfg.App.Env)
	}
	if cfg.Checkout.TaxRatePercent != 5 {
		t.Fatalf("unexpected tax rate %d", cfg.Checkout.TaxRatePercent)
	}
	if cfg.Checkout.ShippingFee != 9900 {
		t.Fatalf("unexpected shipping fee %d", cfg.Checkout.ShippingFee)
	}
	if cfg.Checkout.FreeShippingThreshold != 100000 {
		t.Fatalf("unexpected free shipping threshold %d", cfg.Checkout.FreeShippingThreshold)
	}
	if cfg.Checkout.Currency != "inr" {
		t.Fatalf("unexpected currency %q", cfg.Checkout.Currency)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GREENKART_APP_ENV", "prod")
	t.Setenv("GREENKART_CHECKOUT_SHIPPING_FEE", "4900")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatalf("expected prod env, got %q", cfg.App.Env)
	}
	if cfg.Checkout.ShippingFee != 4900 {
		t.Fatalf("unexpected shipping fee %d", cfg.Checkout.ShippingFee)
	}
}

func TestLoadRejectsNegativeShippingFee(t *testing.T) {
	t.Setenv("GREENKART_CHECKOUT_SHIPPING_FEE", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative shipping fee")
	}
}

func TestStripeConfigEnvironment(t *testing.T) {
	if env := (StripeConfig{Env: " Live "}).Environment(); env != "live" {
		t.Fatalf("expected normalized live, got %q", env)
	}
	if env := (StripeConfig{}).Environment(); env != "test" {
		t.Fatalf("expected test fallback, got %q", env)
	}
	if (StripeConfig{}).Configured() {
		t.Fatal("expected unconfigured without api key")
	}
}
