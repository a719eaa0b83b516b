package cronx

import "time"

// calendarOps groups the day-dependent resolution functions the
// engine needs for L/W/#N: they are deliberately NOT baked into
// Component bits at parse time (those flags are month- and
// year-dependent), and are instead recomputed on demand during
// search, per §9.

// lastDayOfMonth returns the last calendar day of month m in year y,
// computed as "first of next month, minus one day" so it is correct
// across leap years without a hand-rolled days-in-month table.
func lastDayOfMonth(y int, m time.Month) int {
	firstOfNext := time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)
	lastOfThis := firstOfNext.AddDate(0, 0, -1)
	return lastOfThis.Day()
}

// nthWeekdayOfMonth returns the day-of-month of the n-th (1-based)
// occurrence of weekday in the given month, or 0 if that occurrence
// does not exist (e.g. a 5th Friday that doesn't fall in this month).
func nthWeekdayOfMonth(y int, m time.Month, weekday time.Weekday, n int) int {
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	day := 1 + offset + (n-1)*7
	if day > lastDayOfMonth(y, m) {
		return 0
	}
	return day
}

// isNthWeekdayOfMonth reports whether day is the n-th occurrence of
// weekday within month m of year y.
func isNthWeekdayOfMonth(y int, m time.Month, day int, weekday time.Weekday, n int) bool {
	return nthWeekdayOfMonth(y, m, weekday, n) == day
}

// lastWeekdayOfMonth returns the day-of-month of the last occurrence
// of weekday in the given month.
func lastWeekdayOfMonth(y int, m time.Month, weekday time.Weekday) int {
	last := lastDayOfMonth(y, m)
	t := time.Date(y, m, last, 0, 0, 0, 0, time.UTC)
	offset := (int(t.Weekday()) - int(weekday) + 7) % 7
	return last - offset
}

// isLastWeekdayOfMonth reports whether day is the last occurrence of
// weekday within month m of year y.
func isLastWeekdayOfMonth(y int, m time.Month, day int, weekday time.Weekday) bool {
	return lastWeekdayOfMonth(y, m, weekday) == day
}

// closestWeekdayTrigger resolves the CLOSEST_WEEKDAY ("W") nominal
// day p in month m of year y to its actual trigger day-of-month,
// never crossing a month boundary:
//   - Mon-Fri: trigger = p.
//   - Sat: trigger = p-1 if still in this month, else p+2 (Monday).
//   - Sun: trigger = p+1 if still in this month, else p-2 (Friday).
//
// p itself must exist in the month (e.g. 31W in April, which only has
// 30 days); such a date never fires, so 0 is returned rather than
// clamping to the month's last day.
func closestWeekdayTrigger(y int, m time.Month, p int) int {
	last := lastDayOfMonth(y, m)
	if p > last {
		return 0
	}
	weekday := time.Date(y, m, p, 0, 0, 0, 0, time.UTC).Weekday()
	switch weekday {
	case time.Saturday:
		if p > 1 {
			return p - 1
		}
		return p + 2
	case time.Sunday:
		if p < last {
			return p + 1
		}
		return p - 2
	default:
		return p
	}
}

// isClosestWeekdayMatch reports whether day is the resolved trigger
// date for any CLOSEST_WEEKDAY-flagged nominal day in dom.
func isClosestWeekdayMatch(dom *Component, y int, m time.Month, day int) bool {
	for _, p := range dom.GetSetValues(FlagClosestWeekday) {
		if closestWeekdayTrigger(y, m, p) == day {
			return true
		}
	}
	return false
}
