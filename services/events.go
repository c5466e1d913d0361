package services

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed data/events.yaml
var defaultEventsYAML []byte

var monthDayPattern = regexp.MustCompile(`^(\d{2})-(\d{2})$`)

// EventTable maps an "MM-DD" key to the events that happened on that day.
// It is built once and never mutated afterwards, so concurrent reads are safe.
type EventTable struct {
	entries map[string][]string
}

// DefaultEventTable returns the table bundled with the binary.
func DefaultEventTable() (*EventTable, error) {
	return ParseEventTable(defaultEventsYAML)
}

// LoadEventTable reads a YAML events file from disk.
func LoadEventTable(path string) (*EventTable, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read events file %s: %w", path, err)
	}
	return ParseEventTable(content)
}

// ParseEventTable decodes a YAML mapping of "MM-DD" keys to event lists.
// Keys must name a real calendar day (02-29 included).
func ParseEventTable(content []byte) (*EventTable, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal events: %w", err)
	}

	entries := make(map[string][]string, len(raw))
	for key, events := range raw {
		if err := validateMonthDay(key); err != nil {
			return nil, err
		}
		entries[key] = append([]string(nil), events...)
	}

	return &EventTable{entries: entries}, nil
}

// Lookup returns the events for key. Unknown keys yield an empty, non-nil slice.
func (t *EventTable) Lookup(key string) []string {
	events := t.entries[key]
	out := make([]string, len(events))
	copy(out, events)
	return out
}

// Len reports how many days have events.
func (t *EventTable) Len() int {
	return len(t.entries)
}

func validateMonthDay(key string) error {
	m := monthDayPattern.FindStringSubmatch(key)
	if m == nil {
		return fmt.Errorf("invalid event key %q: expected MM-DD", key)
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return fmt.Errorf("invalid event key %q: month out of range", key)
	}
	// 2000 is a leap year, so 02-29 is accepted
	if day < 1 || day > daysInMonth(2000, time.Month(month)) {
		return fmt.Errorf("invalid event key %q: day out of range", key)
	}
	return nil
}
