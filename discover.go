package main

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

type Device struct {
	ID        string
	ErrorCode string
	Tags      map[string]string
	Fields    map[string]any
}

func newDevice(header string) *Device {
	id := strings.TrimSpace(strings.TrimPrefix(header, "id "))
	if parts := strings.SplitN(id, "/", 2); len(parts) == 2 {
		id = parts[1]
	}
	return &Device{
		ID:     id,
		Tags:   map[string]string{},
		Fields: map[string]any{},
	}
}

func runDiscover(args []string) (string, error) {
	out, err := exec.Command(mCliName, append([]string{"discover"}, args...)...).Output()
	if err != nil {
		msg := fmt.Sprintf("failed to run %s: %s; stdout: %s", mCliName, err, out)
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg += "; stderr: " + string(exitErr.Stderr)
		}
		return "", errors.New(msg)
	}
	return string(out), nil
}

// ParseDiscover reads the device blocks printed by the discover command.
// Each block starts with an "id " header followed by "key = value" lines.
func ParseDiscover(out string, conv Converter, debugLog logFunc) []*Device {
	var devices []*Device
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "id ") {
			devices = append(devices, newDevice(l))
			continue
		}
		l := strings.TrimSpace(l)
		if l == "" {
			continue
		}
		parts := strings.SplitN(l, "=", 2)
		if len(parts) < 2 {
			debugLog("ignoring line of unknown format: '%s'", l)
			continue
		}
		if len(devices) == 0 {
			debugLog("ignoring line before first device: '%s'", l)
			continue
		}
		d := devices[len(devices)-1]
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if tag, ok := deviceTags[key]; ok {
			d.Tags[tag] = value
			continue
		}
		if spec, ok := deviceFields[key]; ok {
			fields, err := conv.Fields(spec, value)
			if err != nil {
				debugLog("failed to convert '%s' for device %s: %s", key, d.ID, err)
				continue
			}
			for k, v := range fields {
				d.Fields[k] = v
			}
			continue
		}
		if key == "error" {
			d.ErrorCode = value
			if _, err := conv.Float(value); err != nil || conv.Bool(value) {
				warnf("device %s reports error %s", d.ID, value)
			}
		}
	}
	return devices
}
