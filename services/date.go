package services

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// maxEpochMillis bounds integer timestamps to the range a JavaScript Date can
// hold (±100,000,000 days), which is what clients of this API expect.
const maxEpochMillis = 8_640_000_000_000_000

// Clock abstracts time.Now() so "now"-relative queries can be tested.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Time
}

// NormalizedDate is the canonical representation of a resolved instant.
type NormalizedDate struct {
	Unix int64  `json:"unix"`
	UTC  string `json:"utc"`
}

// Normalize renders t as epoch milliseconds plus its RFC 1123 GMT string.
func Normalize(t time.Time) NormalizedDate {
	return NormalizedDate{
		Unix: t.UnixMilli(),
		UTC:  FormatUTC(t),
	}
}

// FormatUTC renders t like "Wed, 25 Dec 2024 00:00:00 GMT".
func FormatUTC(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

// dateLayouts is the ordered parse chain for calendar strings. The first
// layout that accepts the whole input wins, so month-first forms shadow
// day-first ones for ambiguous tokens such as 01-02-2024.
var dateLayouts = []string{
	http.TimeFormat,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.ANSIC,
	time.UnixDate,
	time.RubyDate,
	time.RFC822,
	time.RFC822Z,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
	time.DateOnly,
	"2006/01/02",
	"01-02-2006",
	"01/02/2006",
	"02-01-2006",
	"02/01/2006",
	"02.01.2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Mon Jan 2 2006",
}

// DateResolver decides which instant a caller-supplied token denotes.
type DateResolver struct {
	clock   Clock
	layouts []string
}

// NewDateResolver creates a resolver reading "now" from clock.
// A nil clock means the system clock.
func NewDateResolver(clock Clock) *DateResolver {
	if clock == nil {
		clock = RealClock{}
	}
	return &DateResolver{
		clock:   clock,
		layouts: dateLayouts,
	}
}

// Now returns the resolver's current instant.
func (r *DateResolver) Now() time.Time {
	return r.clock.Now()
}

// Parse interprets token as epoch milliseconds when it is a whole integer,
// and otherwise tries each calendar layout in order. Inputs without a zone
// are read as UTC.
func (r *DateResolver) Parse(token string) (time.Time, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrInvalidDate)
	}

	if ms, ok := ParseInteger(token); ok {
		if ms > maxEpochMillis || ms < -maxEpochMillis {
			return time.Time{}, fmt.Errorf("%w: timestamp %d out of range", ErrInvalidDate, ms)
		}
		return time.UnixMilli(ms).UTC(), nil
	}

	for _, layout := range r.layouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t.UTC(), nil
		}
	}

	if t, ok := parseGMT(token); ok {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", ErrInvalidDate, token)
}

// IsValid reports whether token denotes an instant.
func (r *DateResolver) IsValid(token string) bool {
	_, err := r.Parse(token)
	return err == nil
}

// Resolve normalizes token, treating an absent token as the current instant.
func (r *DateResolver) Resolve(token string) (NormalizedDate, error) {
	if strings.TrimSpace(token) == "" {
		return Normalize(r.clock.Now()), nil
	}

	t, err := r.Parse(token)
	if err != nil {
		return NormalizedDate{}, err
	}
	return Normalize(t), nil
}

// ParseInteger accepts an optional leading '-' followed by digits only.
// Every integer token of the API (timestamps, years) uses this grammar.
func ParseInteger(token string) (int64, bool) {
	if strings.HasPrefix(token, "+") {
		return 0, false
	}
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// gmtPattern matches FormatUTC output for years the four-digit layouts
// cannot read, such as "-0001" or "275760".
var gmtPattern = regexp.MustCompile(`^(Mon|Tue|Wed|Thu|Fri|Sat|Sun), (\d{2}) (Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) (-?\d{4,6}) (\d{2}):(\d{2}):(\d{2}) GMT$`)

var shortMonths = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March, "Apr": time.April,
	"May": time.May, "Jun": time.June, "Jul": time.July, "Aug": time.August,
	"Sep": time.September, "Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// parseGMT reads back what FormatUTC writes, whatever the year.
func parseGMT(token string) (time.Time, bool) {
	m := gmtPattern.FindStringSubmatch(token)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[2])
	month := shortMonths[m[3]]
	year, _ := strconv.Atoi(m[4])
	hour, _ := strconv.Atoi(m[5])
	minute, _ := strconv.Atoi(m[6])
	second, _ := strconv.Atoi(m[7])
	if day < 1 || day > daysInMonth(year, month) || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}

	t := time.Date(year, month, day, hour, minute, second, 0, time.UTC)
	if ms := t.UnixMilli(); ms > maxEpochMillis || ms < -maxEpochMillis {
		return time.Time{}, false
	}
	return t, true
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func daysInMonth(year int, month time.Month) int {
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}
