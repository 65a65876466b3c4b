package util

import (
	"log"
)

// LogError records a failed background write with its cause. Mutations keep
// going; persistence failures are reported, not fatal.
func LogError(message string, err error) {
	if err != nil {
		log.Printf("ERROR: %s - %v", message, err)
	}
}

// LogWarning records a recoverable condition.
func LogWarning(message string) {
	log.Printf("WARNING: %s", message)
}
