package main

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/samber/lo"
)

const (
	influxTimeout    = 3 * time.Second
	influxAttempts   = 3
	influxRetryDelay = 1 * time.Second
)

func influxAuthString(config Config) string {
	if config.InfluxUser != "" || config.InfluxPass != "" {
		return fmt.Sprintf("%s:%s", config.InfluxUser, config.InfluxPass)
	}
	return config.InfluxToken
}

func NewInfluxClient(config Config, debugLog logFunc) (influxdb2.Client, error) {
	client := influxdb2.NewClient(config.InfluxServer, influxAuthString(config))
	if config.InfluxHealthCheckDisabled {
		return client, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), influxTimeout)
	defer cancel()
	health, err := client.Health(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to check InfluxDB health: %w", err)
	}
	if health.Status != "pass" {
		client.Close()
		msg := ""
		if health.Message != nil {
			msg = *health.Message
		}
		return nil, fmt.Errorf("InfluxDB did not pass health check: status %s; message '%s'", health.Status, msg)
	}
	debugLog("InfluxDB passed health check")
	return client, nil
}

func DevicePoints(measurement string, devices []*Device, ts time.Time) []*write.Point {
	return lo.Map(devices, func(d *Device, _ int) *write.Point {
		return influxdb2.NewPoint(measurement, d.Tags, d.Fields, ts)
	})
}

func WriteInflux(client influxdb2.Client, config Config, points []*write.Point) error {
	writeAPI := client.WriteAPIBlocking(config.InfluxOrg, config.InfluxBucket)
	err := retry.Do(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), influxTimeout)
		defer cancel()
		return writeAPI.WritePoint(ctx, points...)
	}, retry.Attempts(influxAttempts), retry.Delay(influxRetryDelay))
	if err != nil {
		return fmt.Errorf("failed to write %d points to Influx: %w", len(points), err)
	}
	return nil
}
