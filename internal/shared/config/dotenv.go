package config

import (
	"os"

	"piterface-backend/internal/envfile"
	"piterface-backend/internal/shared/telemetry"
)

// loadEnvFiles loads KEY=VALUE pairs from the given files if they exist,
// without overriding variables already present in the environment. It is a
// best-effort helper for local development: missing files are ignored and
// unreadable or malformed files are skipped with a warning.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		values, err := envfile.Load(path)
		if err != nil {
			if !os.IsNotExist(err) {
				telemetry.Warn("env file skipped", map[string]any{
					"path":  path,
					"error": err.Error(),
				})
			}
			continue
		}
		for key, val := range values {
			if _, exists := os.LookupEnv(key); !exists {
				os.Setenv(key, val)
			}
		}
	}
}
