package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	BackendSimulated = "simulated"
	BackendLive      = "live"

	ArithmeticFloat   = "float"
	ArithmeticDecimal = "decimal"
)

type Config struct {
	ListenAddr   string
	Env          string
	Backend      string
	DatabaseURL  string
	TokensFile   string
	Swap         SwapConfig
	Notification NotificationConfig
	Ledger       LedgerConfig
	Registry     RegistryConfig
}

type SwapConfig struct {
	DefaultRate     decimal.Decimal
	Arithmetic      string
	DefaultSlippage string
}

type NotificationConfig struct {
	Duration time.Duration
	Step     time.Duration
}

type LedgerConfig struct {
	SimulatedLatency time.Duration
}

type RegistryConfig struct {
	Endpoint      string
	APIKey        string
	AccountID     string
	ProbeSchedule string
	RateLimit     time.Duration
}

// LoadFromEnv reads configuration from environment variables with fallback defaults.
// It also loads `.env` if present (for local development).
func LoadFromEnv() *Config {
	// Load .env if exists, ignore error if no file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, relying on environment variables")
	}

	backend := getEnv("BACKEND", BackendSimulated)
	databaseURL := os.Getenv("DATABASE_URL")
	switch backend {
	case BackendSimulated:
	case BackendLive:
		if databaseURL == "" {
			log.Fatal("[FATAL] DATABASE_URL is required when BACKEND=live")
		}
	default:
		log.Fatalf("[FATAL] Invalid BACKEND %q (want simulated or live)", backend)
	}

	arithmetic := getEnv("SWAP_ARITHMETIC", ArithmeticFloat)
	if arithmetic != ArithmeticFloat && arithmetic != ArithmeticDecimal {
		log.Fatalf("[FATAL] Invalid SWAP_ARITHMETIC %q (want float or decimal)", arithmetic)
	}

	rate, err := decimal.NewFromString(getEnv("SWAP_DEFAULT_RATE", "0.02"))
	if err != nil || !rate.IsPositive() {
		log.Fatalf("[FATAL] Invalid SWAP_DEFAULT_RATE: must be a positive decimal")
	}

	return &Config{
		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		Env:         getEnv("ENV", "dev"),
		Backend:     backend,
		DatabaseURL: databaseURL,
		TokensFile:  os.Getenv("TOKENS_FILE"),
		Swap: SwapConfig{
			DefaultRate:     rate,
			Arithmetic:      arithmetic,
			DefaultSlippage: getEnv("SLIPPAGE_DEFAULT", "0.5"),
		},
		Notification: NotificationConfig{
			Duration: mustDuration("NOTIFICATION_DURATION", "5s"),
			Step:     mustDuration("NOTIFICATION_STEP", "100ms"),
		},
		Ledger: LedgerConfig{
			SimulatedLatency: mustDuration("SIMULATED_LATENCY", "2s"),
		},
		Registry: RegistryConfig{
			Endpoint:      os.Getenv("REGISTRY_ENDPOINT"),
			APIKey:        os.Getenv("REGISTRY_API_KEY"),
			AccountID:     os.Getenv("REGISTRY_ACCOUNT_ID"),
			ProbeSchedule: os.Getenv("REGISTRY_PROBE_SCHEDULE"),
			RateLimit:     mustDuration("REGISTRY_RATE_LIMIT", "1s"),
		},
	}
}

// helper to get env with default fallback
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(key, fallback string) time.Duration {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		log.Fatalf("[FATAL] Invalid %s duration: %v", key, err)
	}
	return d
}
