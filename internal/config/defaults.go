package config

import "time"

// Defaults applied to fields left empty by every other source.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultTokenDuration   = time.Hour
	DefaultTokenIssuer     = "go-typed-routes"
	DefaultServiceName     = "go-typed-routes"
	DefaultLogLevel        = "debug"
	DefaultRateBurst       = 20
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:     DefaultServiceName,
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			RateBurst:       DefaultRateBurst,
		},
		Auth: Auth{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Tracing: Tracing{
			ServiceName: DefaultServiceName,
		},
	}
}
