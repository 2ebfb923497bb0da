package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/samber/lo"
)

const (
	mqttTimeout    = 5 * time.Second
	mqttAttempts   = 3
	mqttRetryDelay = 1 * time.Second
	mqttQuiesceMs  = 250
)

func DeviceTopic(base, id string) string {
	return strings.TrimSuffix(base, "/") + "/" + id
}

// DevicePayload flattens a device's tags and fields into one JSON object.
// Fields win over tags with the same name.
func DevicePayload(d *Device) ([]byte, error) {
	tags := lo.MapValues(d.Tags, func(v string, _ string) any { return v })
	return json.Marshal(lo.Assign(tags, d.Fields))
}

func waitToken(t mqtt.Token) error {
	if !t.WaitTimeout(mqttTimeout) {
		return errors.New("timed out waiting for MQTT broker")
	}
	return t.Error()
}

func PublishMQTT(config Config, devices []*Device, debugLog logFunc) error {
	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%d", config.MQTTHost, config.MQTTPort)).
		SetClientID(config.MQTTClientID).
		SetConnectTimeout(mqttTimeout)
	if config.MQTTUsername != "" {
		opts.SetUsername(config.MQTTUsername)
		opts.SetPassword(config.MQTTPassword)
	}

	client := mqtt.NewClient(opts)
	if err := waitToken(client.Connect()); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker %s:%d: %w", config.MQTTHost, config.MQTTPort, err)
	}
	defer client.Disconnect(mqttQuiesceMs)

	for _, d := range devices {
		payload, err := DevicePayload(d)
		if err != nil {
			return fmt.Errorf("failed to encode device %s: %w", d.ID, err)
		}
		topic := DeviceTopic(config.MQTTTopic, d.ID)
		if err := retry.Do(func() error {
			return waitToken(client.Publish(topic, 0, false, payload))
		}, retry.Attempts(mqttAttempts), retry.Delay(mqttRetryDelay)); err != nil {
			return fmt.Errorf("failed to publish device %s to '%s': %w", d.ID, topic, err)
		}
		debugLog("published device %s to '%s'", d.ID, topic)
	}
	return nil
}
