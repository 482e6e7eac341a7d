package main

import "os"

// cacheConfig is the env-var driven configuration for the optional
// sqlite-backed memoization layer, following the same default-then-
// override shape the rest of this stack's config loading uses.
type cacheConfig struct {
	DBPath string
	Debug  bool
}

func loadCacheConfig() cacheConfig {
	cfg := cacheConfig{DBPath: ":memory:"}
	if path := os.Getenv("SYSMLCORE_CACHE_DB"); path != "" {
		cfg.DBPath = path
	}
	if os.Getenv("SYSMLCORE_CACHE_DEBUG") == "1" {
		cfg.Debug = true
	}
	return cfg
}
