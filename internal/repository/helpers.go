package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// encodeStrings serializes a string slice into a JSON array column.
func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeStrings parses a JSON array column. An empty column yields an empty slice.
func decodeStrings(column string) ([]string, error) {
	values := []string{}
	if column == "" {
		return values, nil
	}
	if err := json.Unmarshal([]byte(column), &values); err != nil {
		return nil, fmt.Errorf("decoding string list: %w", err)
	}
	return values, nil
}

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
