package datemath

import "time"

// DateFormatISO is the calendar date layout used everywhere a date
// crosses the prompt or response boundary.
const DateFormatISO = "2006-01-02"

// Anchor is a fixed month/day pair marking an astronomical season boundary.
type Anchor struct {
	Month time.Month
	Day   int
}

// Astronomical season boundaries (equinoxes and solstices), not
// calendar quarters.
var (
	SpringStart = Anchor{time.March, 20}
	SpringEnd   = Anchor{time.June, 20}
	SummerStart = Anchor{time.June, 21}
	SummerEnd   = Anchor{time.September, 22}
	FallStart   = Anchor{time.September, 23}
	FallEnd     = Anchor{time.December, 21}
	WinterStart = Anchor{time.December, 21}
	WinterEnd   = Anchor{time.March, 19}
)
