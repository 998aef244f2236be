package config

// Version is the graphbench binary version.
// Set at build time via: -ldflags "-X github.com/persistorai/graphbench/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
