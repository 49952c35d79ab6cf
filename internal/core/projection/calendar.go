package projection

import (
	"time"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
)

// dateOnly drops the time of day, keeping the location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func daysInMonth(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// addMonths moves t forward n months keeping its day of month, clamped to the
// last day of a shorter target month (Jan 31 + 1 month is Feb 28/29).
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(target.Year(), target.Month(), t.Location()); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, 0, 0, 0, 0, t.Location())
}

// withMonth forces the month of t (1-12), clamping the day.
func withMonth(t time.Time, month int) time.Time {
	y, _, d := t.Date()
	if last := daysInMonth(y, time.Month(month), t.Location()); d > last {
		d = last
	}
	return time.Date(y, time.Month(month), d, 0, 0, 0, 0, t.Location())
}

// withDayOfMonth moves t to the given day of its own month, clamping to the
// month length.
func withDayOfMonth(t time.Time, day int) time.Time {
	y, m, _ := t.Date()
	if last := daysInMonth(y, m, t.Location()); day > last {
		day = last
	}
	return time.Date(y, m, day, 0, 0, 0, 0, t.Location())
}

// nextWeekday advances t to the first date on or after t falling on weekday.
// It never moves backward.
func nextWeekday(t time.Time, weekday int) time.Time {
	delta := (weekday - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, delta)
}

// nthWeekday returns the ordinal-th (0-based) weekday of t's month. When that
// date would fall outside the month, t is returned unchanged.
func nthWeekday(t time.Time, weekday, ordinal int) time.Time {
	y, m, _ := t.Date()
	first := nextWeekday(time.Date(y, m, 1, 0, 0, 0, 0, t.Location()), weekday)
	candidate := first.AddDate(0, 0, 7*ordinal)
	if candidate.Month() != m {
		return t
	}
	return candidate
}

// anchorStart applies the month-of-year anchor to the begin date. Every later
// monthly or yearly occurrence is recomputed from this date.
func anchorStart(rule domain.RecurrenceRule) time.Time {
	start := dateOnly(rule.BeginDate)
	if rule.FrequencyMonthOfYear != nil {
		start = withMonth(start, *rule.FrequencyMonthOfYear)
	}
	return start
}

// anchorDay applies the weekday, nth-weekday and day-of-month anchors inside
// the month of base.
func anchorDay(base time.Time, rule domain.RecurrenceRule) time.Time {
	switch {
	case rule.FrequencyDayOfWeek != nil && rule.FrequencyWeekOfMonth != nil:
		return nthWeekday(base, *rule.FrequencyDayOfWeek, *rule.FrequencyWeekOfMonth)
	case rule.FrequencyDayOfWeek != nil:
		return nextWeekday(base, *rule.FrequencyDayOfWeek)
	case rule.FrequencyDayOfMonth != nil:
		return withDayOfMonth(base, *rule.FrequencyDayOfMonth)
	default:
		return base
	}
}

// anchorInMonth applies the day anchors like anchorDay without leaving the
// month of base. A weekday with no match left after the base day falls back
// to the last such weekday of the month.
func anchorInMonth(base time.Time, rule domain.RecurrenceRule) time.Time {
	date := anchorDay(base, rule)
	if date.Month() != base.Month() {
		date = date.AddDate(0, 0, -7)
	}
	return date
}

// FirstOccurrence returns the first date a rule fires on.
func FirstOccurrence(rule domain.RecurrenceRule) time.Time {
	return anchorDay(anchorStart(rule), rule)
}

// Occurrences lists every date the rule fires on from its first occurrence up
// to and including until. Past dates are included; callers filter them.
func Occurrences(rule domain.RecurrenceRule, until time.Time) []time.Time {
	if rule.FrequencyType < domain.Daily || rule.FrequencyType > domain.Yearly {
		return nil
	}

	var dates []time.Time
	interval := rule.Interval()
	start := anchorStart(rule)
	date := anchorDay(start, rule)

	// The first weekday on or after the begin date may sit in the next month.
	// Later monthly and yearly steps then count from that month so no month
	// fires twice.
	shift := 0
	if date.Month() != start.Month() {
		shift = 1
	}

	step := 0
	for !date.After(until) {
		dates = append(dates, date)
		step += interval

		switch rule.FrequencyType {
		case domain.Daily:
			date = date.AddDate(0, 0, interval)
		case domain.Weekly:
			date = date.AddDate(0, 0, 7*interval)
		case domain.Monthly:
			date = anchorInMonth(addMonths(start, shift+step), rule)
		case domain.Yearly:
			date = anchorInMonth(addMonths(start, shift+12*step), rule)
		}
	}
	return dates
}
