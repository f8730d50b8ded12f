package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

// GetEnv returns the trimmed value of key, or "" when unset.
func GetEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func GetEnvOrDefault(key, defaultVal string) string {
	val := GetEnv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// GetEnvIntOrDefault parses key as a base-10 integer. An unset key yields
// defaultVal; a set but malformed key is an error.
func GetEnvIntOrDefault(key string, defaultVal int) (int, error) {
	val := GetEnv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return n, nil
}
