package config

import "time"

// Built-in defaults. They form the lowest-priority configuration layer.
const (
	DefaultTokenIssuer      = "go-marketplace"
	DefaultTokenDuration    = 7 * 24 * time.Hour
	DefaultPasswordHashCost = 12
	DefaultLogLevel         = "debug"
	DefaultVersion          = "1.0.0"

	DefaultDSN = "./marketplace.sqlite"

	DefaultHTTPAddress     = ":5000"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultAuthRateLimit   = 20

	DefaultAdapterAddress        = "http://localhost:5000"
	DefaultAdapterRequestTimeout = 10 * time.Second
	DefaultCacheTTL              = time.Minute
)

// DefaultAllowedOrigins lists the web front-ends allowed by CORS out of the box.
var DefaultAllowedOrigins = []string{"http://localhost:3000"}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			LogLevel:         DefaultLogLevel,
			Version:          DefaultVersion,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			AllowedOrigins:  append([]string(nil), DefaultAllowedOrigins...),
			AuthRateLimit:   DefaultAuthRateLimit,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
		Client: Client{
			CacheTTL: DefaultCacheTTL,
		},
	}
}
