package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDevice() *Device {
	return &Device{
		ID:     "5678",
		Tags:   map[string]string{"name": "basement", "sn": "Q1"},
		Fields: map[string]any{"online": true, "temp_c": 20.5},
	}
}

func TestDevicePoints(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	points := DevicePoints("midea_dehumidifier", []*Device{sampleDevice(), sampleDevice()}, ts)
	require.Len(t, points, 2)

	p := points[0]
	assert.Equal(t, "midea_dehumidifier", p.Name())
	assert.Equal(t, ts, p.Time())
	assert.Len(t, p.TagList(), 2)
	assert.Len(t, p.FieldList(), 2)
}

func TestInfluxAuthString(t *testing.T) {
	assert.Equal(t, "u:p", influxAuthString(Config{InfluxUser: "u", InfluxPass: "p"}))
	assert.Equal(t, "tok", influxAuthString(Config{InfluxToken: "tok"}))
	assert.Equal(t, "", influxAuthString(Config{}))
}
