package services

import (
	"fmt"
	"strings"
	"time"

	"datetime_api_go/services/i18n"
)

const millisPerDay = 24 * 60 * 60 * 1000

// SupportedFormats lists the date notations the parse chain accepts.
var SupportedFormats = []string{
	"YYYY-MM-DD",
	"MM-DD-YYYY",
	"DD-MM-YYYY",
	"Unix Timestamp",
	"YYYY/MM/DD",
	"MM/DD/YYYY",
	"DD.MM.YYYY",
	"RFC 1123",
	"RFC 3339",
	"Month D, YYYY",
}

type LeapYearResult struct {
	Year       int  `json:"year"`
	IsLeapYear bool `json:"isLeapYear"`
}

type DurationResult struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int64  `json:"days"`
}

type DayOfWeekResult struct {
	Date string `json:"date"`
	Day  string `json:"day"`
}

type CountdownResult struct {
	Date      string         `json:"date"`
	Countdown CountdownParts `json:"countdown"`
}

type FormatsResult struct {
	SupportedFormats []string `json:"supportedFormats"`
}

type EventsResult struct {
	Date   string   `json:"date"`
	Events []string `json:"events"`
}

type AgeResult struct {
	Birthdate string `json:"birthdate"`
	Age       int    `json:"age"`
}

// DateQueries answers every query type the API exposes. It holds only
// read-only collaborators, so one instance serves all requests.
type DateQueries struct {
	resolver *DateResolver
	events   *EventTable
	catalog  *i18n.Catalog
}

func NewDateQueries(resolver *DateResolver, events *EventTable, catalog *i18n.Catalog) *DateQueries {
	return &DateQueries{
		resolver: resolver,
		events:   events,
		catalog:  catalog,
	}
}

// CurrentTime normalizes the current instant.
func (q *DateQueries) CurrentTime() NormalizedDate {
	return Normalize(q.resolver.Now())
}

// EchoDate normalizes a path token, reading whole integers as epoch milliseconds.
func (q *DateQueries) EchoDate(token string) (NormalizedDate, error) {
	t, err := q.resolver.Parse(token)
	if err != nil {
		return NormalizedDate{}, err
	}
	return Normalize(t), nil
}

// LeapYear reports whether the year in token is a Gregorian leap year.
func (q *DateQueries) LeapYear(token string) (LeapYearResult, error) {
	year, ok := ParseInteger(strings.TrimSpace(token))
	if !ok {
		return LeapYearResult{}, fmt.Errorf("%w: %q", ErrInvalidYear, token)
	}
	return LeapYearResult{Year: int(year), IsLeapYear: IsLeapYear(int(year))}, nil
}

// Duration counts whole days from start to end, truncated toward zero.
func (q *DateQueries) Duration(start, end string) (DurationResult, error) {
	startTime, startErr := q.resolver.Parse(start)
	endTime, endErr := q.resolver.Parse(end)
	if startErr != nil || endErr != nil {
		return DurationResult{}, fmt.Errorf("%w: start=%q end=%q", ErrInvalidDates, start, end)
	}

	return DurationResult{
		Start: FormatUTC(startTime),
		End:   FormatUTC(endTime),
		Days:  (endTime.UnixMilli() - startTime.UnixMilli()) / millisPerDay,
	}, nil
}

// DayOfWeek names the UTC weekday of token.
func (q *DateQueries) DayOfWeek(token string) (DayOfWeekResult, error) {
	t, err := q.resolver.Parse(token)
	if err != nil {
		return DayOfWeekResult{}, err
	}
	return DayOfWeekResult{Date: token, Day: t.Weekday().String()}, nil
}

// Countdown breaks down the time remaining until token.
func (q *DateQueries) Countdown(token string) (CountdownResult, error) {
	target, err := q.resolver.Parse(token)
	if err != nil {
		return CountdownResult{}, err
	}

	remaining := target.UnixMilli() - q.resolver.Now().UnixMilli()
	return CountdownResult{
		Date:      FormatUTC(target),
		Countdown: breakdownMillis(remaining),
	}, nil
}

func (q *DateQueries) SupportedFormats() FormatsResult {
	formats := make([]string, len(SupportedFormats))
	copy(formats, SupportedFormats)
	return FormatsResult{SupportedFormats: formats}
}

// HistoricalEvents looks up an "MM-DD" key. Unknown keys are not an error.
func (q *DateQueries) HistoricalEvents(monthDay string) EventsResult {
	return EventsResult{Date: monthDay, Events: q.events.Lookup(monthDay)}
}

// Age returns the whole years elapsed since the birthdate in token.
func (q *DateQueries) Age(token string) (AgeResult, error) {
	birth, err := q.resolver.Parse(token)
	if err != nil {
		return AgeResult{}, err
	}
	return AgeResult{Birthdate: token, Age: yearsBetween(birth, q.resolver.Now())}, nil
}

// LocalizedDate resolves token (absent means now) and, when lang names a
// supported locale, replaces the UTC string with the locale's long form.
// Unsupported languages are ignored.
func (q *DateQueries) LocalizedDate(token, lang string) (NormalizedDate, error) {
	resolved, err := q.resolver.Resolve(token)
	if err != nil {
		return NormalizedDate{}, err
	}

	if code, ok := q.catalog.Match(lang); ok {
		resolved.UTC = q.catalog.FormatLong(time.UnixMilli(resolved.Unix), code)
	}
	return resolved, nil
}

// yearsBetween counts completed years from `from` to `to`. The result is
// negative when to precedes from. A Feb 29 anniversary falls on Feb 28 in
// common years.
func yearsBetween(from, to time.Time) int {
	if to.Before(from) {
		return -yearsBetween(to, from)
	}
	from, to = from.UTC(), to.UTC()

	years := to.Year() - from.Year()
	day := from.Day()
	if last := daysInMonth(to.Year(), from.Month()); day > last {
		day = last
	}
	anniversary := time.Date(to.Year(), from.Month(), day,
		from.Hour(), from.Minute(), from.Second(), from.Nanosecond(), time.UTC)
	if to.Before(anniversary) {
		years--
	}
	return years
}
