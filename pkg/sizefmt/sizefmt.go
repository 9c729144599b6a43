// Package sizefmt converts between byte counts and human-readable sizes.
package sizefmt

import (
	"fmt"
	"strings"
)

const (
	B  int64 = 1
	KB       = 1024 * B
	MB       = 1024 * KB
	GB       = 1024 * MB
	TB       = 1024 * GB
)

// Format converts a byte count to a human-readable magnitude string.
// Base 1024, two decimal places, rolling over at 1024.0 per unit.
func Format(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}

	size := float64(bytes)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024.0 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.2f TB", size)
}

// Parse converts a human-readable size string like "100MB" to bytes.
func Parse(size string) (int64, error) {
	size = strings.TrimSpace(size)

	var value float64
	var unit string
	if _, err := fmt.Sscanf(size, "%f%s", &value, &unit); err != nil {
		// A bare number is taken as bytes.
		if _, err := fmt.Sscanf(size, "%f", &value); err != nil {
			return 0, fmt.Errorf("invalid size format: %s", size)
		}
		return int64(value), nil
	}

	switch strings.ToUpper(unit) {
	case "B":
		return int64(value), nil
	case "KB", "K":
		return int64(value * float64(KB)), nil
	case "MB", "M":
		return int64(value * float64(MB)), nil
	case "GB", "G":
		return int64(value * float64(GB)), nil
	case "TB", "T":
		return int64(value * float64(TB)), nil
	default:
		return 0, fmt.Errorf("unknown unit: %s", unit)
	}
}
