package datemath

import "time"

// SeasonalDate resolves a fixed month/day anchor against a reference date.
// The anchor is placed in the reference year; if that calendar date is
// strictly before the reference date it rolls over to the next year.
// An anchor equal to the reference date stays in the current year.
//
// The result is always constructed with time.Date from the anchor's
// month and day, so leap years cannot desynchronize the anchor.
func SeasonalDate(ref time.Time, month time.Month, day int) time.Time {
	refDay := StartOfDay(ref)
	candidate := time.Date(ref.Year(), month, day, 0, 0, 0, 0, ref.Location())
	if candidate.Before(refDay) {
		candidate = time.Date(ref.Year()+1, month, day, 0, 0, 0, 0, ref.Location())
	}
	return candidate
}

// SeasonalAnchorDate is SeasonalDate for a named Anchor.
func SeasonalAnchorDate(ref time.Time, a Anchor) time.Time {
	return SeasonalDate(ref, a.Month, a.Day)
}

// NextWeekday returns the next occurrence of the target weekday strictly
// after the reference date. A reference that already falls on the target
// weekday resolves a full week ahead, never to itself.
func NextWeekday(ref time.Time, target time.Weekday) time.Time {
	days := (int(target) - int(ref.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return StartOfDay(ref).AddDate(0, 0, days)
}

// MonthDay returns the given day within the reference date's month and year.
// Out-of-range days are normalized by time.Date (day 31 in a 30-day month
// becomes the 1st of the next month); a day already past in the month is
// returned as-is, with no forward rollover. See MonthDay tests for the
// pinned policy.
func MonthDay(ref time.Time, day int) time.Time {
	return time.Date(ref.Year(), ref.Month(), day, 0, 0, 0, 0, ref.Location())
}

// StartOfDay truncates a time to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ISODate formats a time as a YYYY-MM-DD calendar date.
func ISODate(t time.Time) string {
	return t.Format(DateFormatISO)
}
