// Package config loads the runtime settings shared by the binaries.
package config

import "os"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is unset or empty.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
