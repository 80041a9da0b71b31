package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration. The ten leaves listed in
// envBindings map 1:1 to an environment variable from the external
// interfaces table, each readable both as BILLING_<NAME> and as the
// bare <NAME> for deployments that set the unprefixed name directly;
// every other leaf is read from its BILLING_-prefixed name only.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Ledger  LedgerConfig  `mapstructure:"ledger"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Card    CardConfig    `mapstructure:"card"`
	Wallet  WalletConfig  `mapstructure:"wallet"`
	Billing BillingConfig `mapstructure:"billing"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Mode        string `mapstructure:"mode"`         // debug, release, test
	Secret      string `mapstructure:"secret"`       // SERVER_SECRET: HMAC key for API-key hashing
	WebappURL   string `mapstructure:"webapp_url"`   // WEBAPP_URL: success redirect base
	FrontendURL string `mapstructure:"frontend_url"` // FRONTEND_URL: cancel redirect base
}

// LedgerConfig points at the durable store (Postgres). URL is a full
// connection string, not assembled from host/port/user fields.
type LedgerConfig struct {
	URL             string        `mapstructure:"url"` // LEDGER_URL
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// CacheConfig points at the volatile store (Redis).
type CacheConfig struct {
	URL      string `mapstructure:"url"` // CACHE_URL
	PoolSize int    `mapstructure:"pool_size"`
}

// CardConfig holds the card provider's credentials.
type CardConfig struct {
	APIKey        string `mapstructure:"api_key"`        // CARD_API_KEY
	WebhookSecret string `mapstructure:"webhook_secret"` // CARD_WEBHOOK_SECRET
	Env           string `mapstructure:"env"`            // CARD_ENV: sandbox or live
}

// WalletConfig holds the wallet (Stars) provider's credential.
type WalletConfig struct {
	BotToken string `mapstructure:"bot_token"` // WALLET_BOT_TOKEN
}

// BillingConfig holds the usage-to-credit conversion rate.
type BillingConfig struct {
	CreditsPerUSD int `mapstructure:"credits_per_usd"` // CREDITS_PER_USD
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// envBindings lists every leaf that the external interfaces table
// names directly, pairing the viper key it unmarshals into with the
// bare env var name. Both BILLING_<bare> and <bare> are bound so a
// deployment can set either.
var envBindings = []struct {
	key  string
	bare string
}{
	{"ledger.url", "LEDGER_URL"},
	{"cache.url", "CACHE_URL"},
	{"server.secret", "SERVER_SECRET"},
	{"card.api_key", "CARD_API_KEY"},
	{"card.webhook_secret", "CARD_WEBHOOK_SECRET"},
	{"card.env", "CARD_ENV"},
	{"wallet.bot_token", "WALLET_BOT_TOKEN"},
	{"billing.credits_per_usd", "CREDITS_PER_USD"},
	{"server.webapp_url", "WEBAPP_URL"},
	{"server.frontend_url", "FRONTEND_URL"},
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Leaves not named in
// the external interfaces table fall back to the BILLING_ prefix with
// underscore-separated nesting, e.g. BILLING_LEDGER_MAX_CONNS.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.secret", "")
	v.SetDefault("server.webapp_url", "")
	v.SetDefault("server.frontend_url", "")
	v.SetDefault("ledger.url", "")
	v.SetDefault("ledger.max_conns", 20)
	v.SetDefault("ledger.min_conns", 2)
	v.SetDefault("ledger.conn_max_lifetime", "30m")
	v.SetDefault("cache.url", "")
	v.SetDefault("cache.pool_size", 50)
	v.SetDefault("card.api_key", "")
	v.SetDefault("card.webhook_secret", "")
	v.SetDefault("card.env", "sandbox")
	v.SetDefault("wallet.bot_token", "")
	v.SetDefault("billing.credits_per_usd", 1000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("BILLING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, b := range envBindings {
		if err := v.BindEnv(b.key, "BILLING_"+b.bare, b.bare); err != nil {
			return nil, fmt.Errorf("binding env var for %s: %w", b.key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
