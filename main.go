package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/samber/lo"
)

var version = "<dev>"

const (
	programName = "midea2influx"
	mCliName    = "midea-beautiful-air-cli"

	hbTimeout = 10 * time.Second
)

func main() {
	configFile := flag.String("config", DefaultCfgPath(), "Configuration JSON file.")
	printVersion := flag.Bool("version", false, "Print version and exit.")
	debug := flag.Bool("debug", false, "Enable debug logging.")
	dryRun := flag.Bool("dry-run", false, "Print collected points instead of writing them.")
	flag.Parse()

	debugLog := DebugLogger(*debug)

	if *printVersion {
		fmt.Fprintln(os.Stderr, programName+" "+version)
		os.Exit(0)
	}

	if *configFile == "" {
		fmt.Fprintln(os.Stderr, "-config is required.")
		os.Exit(6)
	}

	config, err := ConfigFromFile(*configFile)
	if err != nil {
		log.Printf("Loading config from '%s' failed: %s", *configFile, err)
		os.Exit(6)
	}
	conv := NewConverter(config.Provider())
	debugLog("reading device values with %s number format", config.Provider().Name())

	mCliPath, err := exec.LookPath(mCliName)
	if err != nil {
		log.Fatalf("Could not find %s in PATH: %s", mCliName, err)
	}
	debugLog("%s found at %s", mCliName, mCliPath)

	out, err := runDiscover(config.MideaArgs)
	if err != nil {
		log.Fatal(err)
	}

	devices := lo.Filter(ParseDiscover(out, conv, debugLog), func(d *Device, _ int) bool {
		if len(d.Fields) == 0 {
			debugLog("device %s reported no data", d.ID)
			return false
		}
		return true
	})
	if len(devices) == 0 {
		log.Fatalf("no devices with data to report found")
	}

	if *dryRun {
		for _, p := range DevicePoints(config.DehumidifierMeasurementName, devices, time.Now()) {
			fmt.Print(write.PointToLineProtocol(p, time.Second))
		}
		return
	}

	if config.InfluxConfigured() {
		influxClient, err := NewInfluxClient(config, debugLog)
		if err != nil {
			log.Fatal(err)
		}
		points := DevicePoints(config.DehumidifierMeasurementName, devices, time.Now())
		err = WriteInflux(influxClient, config, points)
		influxClient.Close()
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %d points to Influx", len(points))
	}

	if config.MQTTConfigured() {
		if err := PublishMQTT(config, devices, debugLog); err != nil {
			log.Fatal(err)
		}
		log.Printf("Published %d devices to MQTT", len(devices))
	}

	if config.HeartbeatURL != "" {
		hbClient := &http.Client{Timeout: hbTimeout}
		resp, err := hbClient.Get(config.HeartbeatURL)
		if err != nil {
			log.Printf("Failed to send heartbeat to %s: %s", config.HeartbeatURL, err)
		} else {
			resp.Body.Close()
			debugLog("Sent heartbeat to %s", config.HeartbeatURL)
		}
	}
}
