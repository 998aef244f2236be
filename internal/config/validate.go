package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

func (c *Config) validate() error {
	if err := c.validateNetwork(); err != nil {
		return err
	}

	if err := c.validateCORS(); err != nil {
		return err
	}

	if err := c.validateAlgorithms(); err != nil {
		return err
	}

	if err := c.validateTracing(); err != nil {
		return err
	}

	if c.MaxBodyBytes < 1 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}

	return nil
}

func (c *Config) validateNetwork() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid integer: %w", err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	// Loopback for local runs; 0.0.0.0/:: when workers sit behind a container network.
	validHosts := map[string]bool{
		"127.0.0.1": true,
		"::1":       true,
		"localhost": true,
		"0.0.0.0":   true,
		"::":        true,
	}
	if !validHosts[c.ListenHost] {
		return fmt.Errorf("LISTEN_HOST must be a loopback address or 0.0.0.0/:: for containers (got %q)", c.ListenHost)
	}

	return nil
}

func (c *Config) validateCORS() error {
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("CORS_ORIGINS must not contain wildcard '*'")
		}
		if strings.ContainsAny(origin, "*?[]") {
			return fmt.Errorf("CORS_ORIGINS must not contain glob characters (*?[]), got %q", origin)
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("CORS_ORIGINS contains invalid origin %q (must have scheme and host)", origin)
		}
	}

	return nil
}

func (c *Config) validateAlgorithms() error {
	if c.PoolWidth < 1 || c.PoolWidth > 64 {
		return fmt.Errorf("POOL_WIDTH must be between 1 and 64, got %d", c.PoolWidth)
	}

	if c.PageRankMaxIter < 1 {
		return fmt.Errorf("PAGERANK_MAX_ITER must be positive, got %d", c.PageRankMaxIter)
	}

	if c.PageRankDamping <= 0 || c.PageRankDamping >= 1 {
		return fmt.Errorf("PAGERANK_DAMPING must be in (0, 1), got %v", c.PageRankDamping)
	}

	return nil
}

func (c *Config) validateTracing() error {
	switch c.TraceExporter {
	case "none", "stdout":
	case "otlp":
		if c.OTLPEndpoint == "" {
			return fmt.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT is required when TRACE_EXPORTER is otlp")
		}

		u, err := url.Parse(c.OTLPEndpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT must be a URL with scheme and host, got %q", c.OTLPEndpoint)
		}
	default:
		return fmt.Errorf("TRACE_EXPORTER must be 'none', 'stdout' or 'otlp', got %q", c.TraceExporter)
	}

	return nil
}
