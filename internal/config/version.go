package config

// Version is the caseboard binary version.
// Set at build time via: -ldflags "-X github.com/caseboard/caseboard/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
