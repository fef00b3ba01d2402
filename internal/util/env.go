package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var env = newEnv()

func newEnv() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	return v
}

// GetEnv returns the value of the environment variable key or defaultVal if unset.
func GetEnv(key string, defaultVal string) string {
	if env.IsSet(key) {
		return env.GetString(key)
	}

	return defaultVal
}

// GetEnvAsInt returns the environment variable key parsed as int or defaultVal.
func GetEnvAsInt(key string, defaultVal int) int {
	if !env.IsSet(key) {
		return defaultVal
	}

	val, err := strconv.Atoi(strings.TrimSpace(env.GetString(key)))
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Invalid integer in environment, using default")
		return defaultVal
	}

	return val
}

// GetEnvAsBool returns the environment variable key parsed as bool or defaultVal.
func GetEnvAsBool(key string, defaultVal bool) bool {
	if !env.IsSet(key) {
		return defaultVal
	}

	switch strings.ToLower(strings.TrimSpace(env.GetString(key))) {
	case "1", "true", "t", "yes", "y":
		return true
	case "0", "false", "f", "no", "n":
		return false
	default:
		log.Warn().Str("key", key).Msg("Invalid boolean in environment, using default")
		return defaultVal
	}
}

// GetEnvAsDuration returns the environment variable key parsed as time.Duration or defaultVal.
func GetEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if !env.IsSet(key) {
		return defaultVal
	}

	val, err := time.ParseDuration(env.GetString(key))
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Invalid duration in environment, using default")
		return defaultVal
	}

	return val
}

// LogLevelFromString parses s into a zerolog level, falling back to defaultVal.
func LogLevelFromString(s string, defaultVal zerolog.Level) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || s == "" {
		return defaultVal
	}

	return level
}

// GetEnvAsLogLevel returns the environment variable key parsed as zerolog level or defaultVal.
func GetEnvAsLogLevel(key string, defaultVal zerolog.Level) zerolog.Level {
	return LogLevelFromString(GetEnv(key, ""), defaultVal)
}
