// Package config handles pre-run configuration, such as cache sizing and
// output defaults.
//
// TODO: I have never seen a viper setup that I liked.
package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Viper-based config loader
func Init() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	viper.SetConfigType("yaml")
	viper.SetConfigName(".divvy")
	viper.AddConfigPath(home)
	viper.AutomaticEnv()
	viper.BindEnv("default_min_coins", "DIVVY_DEFAULT_MIN_COINS")
	viper.BindEnv("cache_size", "DIVVY_CACHE_SIZE")
	viper.BindEnv("cache_ttl", "DIVVY_CACHE_TTL")
	viper.BindEnv("raw_output", "DIVVY_RAW_OUTPUT")
	viper.SetDefault("default_min_coins", 50)
	viper.SetDefault("cache_size", 64)
	viper.SetDefault("cache_ttl", "30m")
	viper.SetDefault("raw_output", false)
	err = viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// no config file is fine; a broken one deserves a line
			log.Printf("viper can't read config file: %v", err)
		}
	}
}

// DefaultMinCoins is the per-winner floor offered when the operator does
// not name one.
func DefaultMinCoins() int64 {
	return viper.GetInt64("default_min_coins")
}

func CacheSize() int {
	return viper.GetInt("cache_size")
}

func CacheTTL() time.Duration {
	return viper.GetDuration("cache_ttl")
}

// RawOutput makes JSON the default output format, for people who pipe
// everything anyway.
func RawOutput() bool {
	return viper.GetBool("raw_output")
}
