package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultClientLogLevel keeps the CLI output quiet unless overridden.
const DefaultClientLogLevel = "warn"

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the marketplace API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientState holds where and how long the client keeps local state.
type ClientState struct {
	// SessionFile stores the bearer token between invocations.
	SessionFile string
	// CacheTTL controls how long product reads stay cached.
	CacheTTL time.Duration
	// LogFile receives client logs. Empty means stderr.
	LogFile string
	// LogLevel is the minimum zerolog level.
	LogLevel string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Client contains session and cache settings.
	Client ClientState
}

// GetClientConfig builds and validates a client-specific config view.
//
// Command-line flags are left to the client's own sub-commands, so only
// defaults, .env, environment variables and the JSON file are merged.
func GetClientConfig() (*ClientConfig, error) {
	return buildClientConfig(newConfigBuilder().
		withDefaults().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withJSON())
}

func buildClientConfig(b *configBuilder) (*ClientConfig, error) {
	cfg, err := b.buildWith(nil)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	sessionFile := cfg.Client.SessionFile
	if sessionFile == "" {
		sessionFile = defaultSessionFile()
	}

	logLevel := cfg.Client.LogLevel
	if logLevel == "" {
		logLevel = DefaultClientLogLevel
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Client: ClientState{
			SessionFile: sessionFile,
			CacheTTL:    cfg.Client.CacheTTL,
			LogFile:     cfg.Client.LogFile,
			LogLevel:    logLevel,
		},
	}

	return clientCfg, clientCfg.validate()
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "go-marketplace", "session.json")
}
