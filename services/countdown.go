package services

// CountdownParts is a calendar-style breakdown of a remaining duration. Each
// field is taken modulo its unit after larger units are removed, so Days is
// the remainder left once whole months are taken out.
type CountdownParts struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// A Gregorian 400-year cycle has 146097 days and 4800 months.
const (
	daysPerCycle   = 146097
	monthsPerCycle = 4800
)

// breakdownMillis splits ms into parts. All parts share the sign of ms, so a
// target in the past yields parts that are all <= 0.
func breakdownMillis(ms int64) CountdownParts {
	totalSeconds := ms / 1000
	totalMinutes := totalSeconds / 60
	totalHours := totalMinutes / 60
	days := totalHours / 24

	months := days * monthsPerCycle / daysPerCycle
	days -= ceilAway(months*daysPerCycle, monthsPerCycle)

	return CountdownParts{
		Days:    days,
		Hours:   totalHours % 24,
		Minutes: totalMinutes % 60,
		Seconds: totalSeconds % 60,
	}
}

// ceilAway divides and rounds away from zero.
func ceilAway(a, b int64) int64 {
	q := a / b
	if a%b != 0 {
		if a > 0 {
			q++
		} else {
			q--
		}
	}
	return q
}
