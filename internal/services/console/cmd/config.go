package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/LeonardoBeccarini/farm_advisor/pkg/logging"
)

type Config struct {
	LogLevel    string
	MetricsAddr string // empty disables /metrics

	MQTTHost     string // empty disables the advisory bus
	MQTTPort     int
	MQTTUser     string
	MQTTPassword string
	MQTTTopic    string

	BreakerFails int
	BreakerOpen  time.Duration
	DedupTTL     time.Duration
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}
func getenvDuration(k string, d time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if dur, err := time.ParseDuration(v); err == nil {
			return dur
		}
	}
	return d
}

// loadConfig reads the environment; flags override it afterwards.
func loadConfig() Config {
	return Config{
		LogLevel:    getenv("FARM_LOG_LEVEL", logging.DefaultLevel),
		MetricsAddr: getenv("FARM_METRICS_ADDR", ""),

		MQTTHost:     getenv("FARM_MQTT_HOST", ""),
		MQTTPort:     getenvInt("FARM_MQTT_PORT", 1883),
		MQTTUser:     getenv("FARM_MQTT_USER", "guest"),
		MQTTPassword: getenv("FARM_MQTT_PASSWORD", "guest"),
		MQTTTopic:    getenv("FARM_MQTT_TOPIC", "farm/advisory/{kind}"),

		BreakerFails: getenvInt("FARM_MQTT_CB_FAILS", 3),
		BreakerOpen:  getenvDuration("FARM_MQTT_CB_OPEN", 30*time.Second),
		DedupTTL:     getenvDuration("FARM_DEDUP_TTL", 10*time.Minute),
	}
}

func (c Config) validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.MQTTHost != "" {
		if c.MQTTPort <= 0 || c.MQTTPort > 65535 {
			errs = append(errs, fmt.Errorf("invalid mqtt port %d", c.MQTTPort))
		}
		if c.MQTTTopic == "" {
			errs = append(errs, errors.New("mqtt topic must not be empty"))
		}
		if c.BreakerFails <= 0 {
			errs = append(errs, fmt.Errorf("mqtt breaker failures must be positive, got %d", c.BreakerFails))
		}
		if c.BreakerOpen <= 0 {
			errs = append(errs, fmt.Errorf("mqtt breaker open duration must be positive, got %s", c.BreakerOpen))
		}
	}
	if c.DedupTTL < 0 {
		errs = append(errs, fmt.Errorf("dedup ttl must not be negative, got %s", c.DedupTTL))
	}
	return errors.Join(errs...)
}
