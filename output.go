package main

import "log"

type logFunc func(format string, args ...any)

func DebugLogger(debug bool) logFunc {
	if !debug {
		return func(string, ...any) {}
	}
	return func(format string, args ...any) {
		log.Printf("[DEBUG] "+format, args...)
	}
}

func warnf(format string, args ...any) {
	log.Printf("[WARN] "+format, args...)
}
