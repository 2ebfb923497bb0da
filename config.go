package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/cdzombak/midea2influx/boolconv"
)

type Config struct {
	HeartbeatURL string   `json:"heartbeat_url,omitempty"`
	MideaArgs    []string `json:"midea_beautiful_air_cli_discover_args"`
	NumberLocale string   `json:"number_locale,omitempty"`

	DehumidifierMeasurementName string `json:"measurement_name_dehumidifier,omitempty"`
	InfluxServer                string `json:"influx_server,omitempty"`
	InfluxBucket                string `json:"influx_bucket,omitempty"`
	InfluxUser                  string `json:"influx_user,omitempty"`
	InfluxPass                  string `json:"influx_password,omitempty"`
	InfluxToken                 string `json:"influx_token,omitempty"`
	InfluxOrg                   string `json:"influx_org,omitempty"`
	InfluxHealthCheckDisabled   bool   `json:"influx_health_check_disabled,omitempty"`

	MQTTHost     string `json:"mqtt_host,omitempty"`
	MQTTPort     int    `json:"mqtt_port,omitempty"`
	MQTTTopic    string `json:"mqtt_topic,omitempty"`
	MQTTClientID string `json:"mqtt_client_id,omitempty"`
	MQTTUsername string `json:"mqtt_username,omitempty"`
	MQTTPassword string `json:"mqtt_password,omitempty"`

	provider boolconv.FormatProvider
}

func (c Config) InfluxConfigured() bool {
	return c.InfluxServer != "" && c.InfluxBucket != ""
}

func (c Config) MQTTConfigured() bool {
	return c.MQTTHost != "" && c.MQTTTopic != ""
}

// Provider returns the number format used to read device values.
func (c Config) Provider() boolconv.FormatProvider {
	if c.provider == nil {
		return boolconv.Invariant
	}
	return c.provider
}

func ConfigFromFile(filename string) (Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file '%s': %w", filename, err)
	}
	defer f.Close()

	var config Config
	if err := json.NewDecoder(f).Decode(&config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file '%s': %w", filename, err)
	}
	if err := config.applyDefaults(); err != nil {
		return Config{}, fmt.Errorf("invalid config file '%s': %w", filename, err)
	}
	return config, nil
}

func (c *Config) applyDefaults() error {
	if c.DehumidifierMeasurementName == "" {
		c.DehumidifierMeasurementName = "midea_dehumidifier"
	}

	if !c.InfluxConfigured() && !c.MQTTConfigured() {
		return fmt.Errorf("at least one output must be configured: either InfluxDB (influx_server and influx_bucket) or MQTT (mqtt_host and mqtt_topic)")
	}
	if (c.InfluxServer == "") != (c.InfluxBucket == "") {
		return fmt.Errorf("influx_server and influx_bucket must be given together")
	}
	if (c.MQTTHost == "") != (c.MQTTTopic == "") {
		return fmt.Errorf("mqtt_host and mqtt_topic must be given together")
	}
	if c.MQTTConfigured() {
		if c.MQTTPort == 0 {
			c.MQTTPort = 1883
		}
		if c.MQTTClientID == "" {
			c.MQTTClientID = programName
		}
	}

	if c.HeartbeatURL != "" {
		if _, err := url.Parse(c.HeartbeatURL); err != nil {
			return fmt.Errorf("failed to parse heartbeat_url: %w", err)
		}
	}
	if len(c.MideaArgs) == 0 {
		return fmt.Errorf("midea_beautiful_air_cli_discover_args is required")
	}

	if c.NumberLocale != "" {
		culture, err := boolconv.ParseCulture(c.NumberLocale)
		if err != nil {
			return fmt.Errorf("failed to parse number_locale: %w", err)
		}
		c.provider = culture
	}
	return nil
}

func DefaultCfgPath() string {
	if _, err := os.Stat("/config.json"); err == nil {
		return "/config.json"
	}
	if _, err := os.Stat("./config.json"); err == nil {
		return "./config.json"
	}
	return ""
}
