package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds the service configuration, read from the environment.
type Config struct {
	Port    string
	GinMode string

	// Gateways are tried in order for ipfs:// media.
	PrimaryGateway   string
	SecondaryGateway string

	MainNetAPI string
	TestNetAPI string

	// ProbeTimeout bounds each HEAD probe against a gateway or media URL.
	ProbeTimeout time.Duration
	// FetchTimeout bounds NFD API calls and image downloads while rendering.
	FetchTimeout time.Duration

	AssetsDir string
	LogLevel  string
	LogFile   string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, applying defaults.
func FromEnv() (*Config, error) {
	probe, err := getEnvAsDuration("PROBE_TIMEOUT", 4*time.Second)
	if err != nil {
		return nil, err
	}
	fetch, err := getEnvAsDuration("FETCH_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "release"),
		PrimaryGateway:   getEnv("PRIMARY_GATEWAY", "https://images.nf.domains"),
		SecondaryGateway: getEnv("SECONDARY_GATEWAY", "https://ipfs.algonode.dev"),
		MainNetAPI:       getEnv("NFD_MAINNET_API", "https://api.nf.domains"),
		TestNetAPI:       getEnv("NFD_TESTNET_API", "https://api.testnet.nf.domains"),
		ProbeTimeout:     probe,
		FetchTimeout:     fetch,
		AssetsDir:        getEnv("ASSETS_DIR", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFile:          getEnv("LOG_FILE", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	if d <= 0 {
		return 0, errors.Errorf("%s must be positive, got %s", key, value)
	}
	return d, nil
}
