package config

import (
	"errors"
	"fmt"
	"strings"
)

const minJWTSecretLength = 32

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}

	for i, s := range c.Phonics.ResearchSources {
		if strings.TrimSpace(s) == "" {
			errs = append(errs, fmt.Errorf("phonics.research_sources[%d] is blank", i))
		}
	}

	errs = append(errs, c.Cache.validate()...)

	if c.Database.Enabled() && c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns))
	}

	if c.Usage.Enabled {
		if c.Usage.BufferSize <= 0 {
			errs = append(errs, fmt.Errorf("usage.buffer_size must be > 0 (got %d)", c.Usage.BufferSize))
		}
		if c.Usage.BatchSize <= 0 {
			errs = append(errs, fmt.Errorf("usage.batch_size must be > 0 (got %d)", c.Usage.BatchSize))
		}
		if c.Usage.FlushInterval <= 0 {
			errs = append(errs, fmt.Errorf("usage.flush_interval must be > 0 (got %s)", c.Usage.FlushInterval))
		}
	}

	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < minJWTSecretLength {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d characters (got %d)", minJWTSecretLength, len(c.Auth.JWTSecret)))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			errs = append(errs, fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute))
		}
		if c.RateLimit.CleanupInterval <= 0 {
			errs = append(errs, fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval))
		}
	}

	switch c.Tracing.Exporter {
	case TraceExporterNone, TraceExporterStdout:
	default:
		errs = append(errs, fmt.Errorf("tracing.exporter must be none or stdout (got %q)", c.Tracing.Exporter))
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio must be in [0, 1] (got %v)", c.Tracing.SampleRatio))
	}

	return errors.Join(errs...)
}

func (c CacheConfig) validate() []error {
	var errs []error
	switch c.Backend {
	case CacheNone:
	case CacheMemory:
		if c.Size <= 0 {
			errs = append(errs, fmt.Errorf("cache.size must be > 0 for the memory backend (got %d)", c.Size))
		}
	case CacheRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("cache.redis.addr is required for the redis backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.backend must be none, memory or redis (got %q)", c.Backend))
	}
	if c.TTL < 0 {
		errs = append(errs, fmt.Errorf("cache.ttl must be >= 0 (got %s)", c.TTL))
	}
	return errs
}
