// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 || cfg.Server.BodyLimit < 0 {
		return fmt.Errorf("%w: rate limit, burst and body limit must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAuthConfigs)
	}

	if cfg.Auth.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAuthConfigs)
	}

	switch cfg.Tracing.Exporter {
	case "", "none", "stdout":
	default:
		return fmt.Errorf("%w: unknown exporter %q", ErrInvalidTracingConfigs, cfg.Tracing.Exporter)
	}

	return nil
}
