// Package config provides environment-driven configuration for a graphbench worker.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all worker configuration values.
type Config struct {
	Port            string
	ListenHost      string
	CORSOrigins     []string
	LogLevel        string
	PoolWidth       int
	PageRankMaxIter int
	PageRankDamping float64
	WeightSeed      uint64
	ReportDir       string
	MaxBodyBytes    int64
	TraceExporter   string
	OTLPEndpoint    string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          envOrDefault("PORT", "8081"),
		ListenHost:    envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		ReportDir:     envOrDefault("REPORT_DIR", "."),
		TraceExporter: envOrDefault("TRACE_EXPORTER", "none"),
		OTLPEndpoint:  envOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	var err error

	if cfg.PoolWidth, err = strconv.Atoi(envOrDefault("POOL_WIDTH", "4")); err != nil {
		return nil, fmt.Errorf("POOL_WIDTH must be an integer: %w", err)
	}

	if cfg.PageRankMaxIter, err = strconv.Atoi(envOrDefault("PAGERANK_MAX_ITER", "10")); err != nil {
		return nil, fmt.Errorf("PAGERANK_MAX_ITER must be an integer: %w", err)
	}

	if cfg.PageRankDamping, err = strconv.ParseFloat(envOrDefault("PAGERANK_DAMPING", "0.85"), 64); err != nil {
		return nil, fmt.Errorf("PAGERANK_DAMPING must be a number: %w", err)
	}

	if cfg.WeightSeed, err = strconv.ParseUint(envOrDefault("WEIGHT_SEED", "0"), 10, 64); err != nil {
		return nil, fmt.Errorf("WEIGHT_SEED must be a non-negative integer: %w", err)
	}

	if cfg.MaxBodyBytes, err = strconv.ParseInt(envOrDefault("MAX_BODY_BYTES", "268435456"), 10, 64); err != nil {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be an integer: %w", err)
	}

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3000")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
