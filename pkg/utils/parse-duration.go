package utils

import (
	"fmt"
	"time"
)

// ParseDurationString parses duration strings from config values, e.g.
// "30s" or "12h".
func ParseDurationString(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("cannot parse duration '%s': %w", value, err)
	}
	return d, nil
}
