package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdzombak/midea2influx/boolconv"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestConfigFromFileDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"midea_beautiful_air_cli_discover_args": ["--account", "me"],
		"mqtt_host": "broker.local",
		"mqtt_topic": "home/dehumidifier"
	}`)

	config, err := ConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "midea_dehumidifier", config.DehumidifierMeasurementName)
	assert.Equal(t, 1883, config.MQTTPort)
	assert.Equal(t, programName, config.MQTTClientID)
	assert.True(t, config.MQTTConfigured())
	assert.False(t, config.InfluxConfigured())
	assert.Equal(t, boolconv.Invariant, config.Provider())
}

func TestConfigFromFileLocale(t *testing.T) {
	path := writeConfig(t, `{
		"midea_beautiful_air_cli_discover_args": ["--account", "me"],
		"influx_server": "http://influx:8086",
		"influx_bucket": "home",
		"number_locale": "de-DE"
	}`)

	config, err := ConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "de-DE", config.Provider().Name())
}

func TestConfigFromFileErrors(t *testing.T) {
	tests := map[string]string{
		"no outputs":     `{"midea_beautiful_air_cli_discover_args": ["x"]}`,
		"missing bucket": `{"midea_beautiful_air_cli_discover_args": ["x"], "influx_server": "s", "mqtt_host": "h", "mqtt_topic": "t"}`,
		"missing args":   `{"mqtt_host": "h", "mqtt_topic": "t"}`,
		"bad locale":     `{"midea_beautiful_air_cli_discover_args": ["x"], "mqtt_host": "h", "mqtt_topic": "t", "number_locale": "!!"}`,
		"malformed json": `{`,
		"bad args type":  `{"midea_beautiful_air_cli_discover_args": "x"}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ConfigFromFile(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := ConfigFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
