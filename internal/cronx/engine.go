package cronx

import "time"

// OccurrenceEngine walks a Pattern's fields to find the next or
// previous matching instant relative to a start time, or to test a
// single instant for a match. It holds no state of its own beyond the
// configured horizon and is safe for concurrent use: Patterns are
// immutable and the engine never mutates shared state.
type OccurrenceEngine struct {
	HorizonYears int
}

// NewOccurrenceEngine builds an engine with the given year horizon.
// Pass 0 (or call NewDefaultOccurrenceEngine) to use DefaultHorizonYears.
func NewOccurrenceEngine(horizonYears int) *OccurrenceEngine {
	if horizonYears <= 0 {
		horizonYears = DefaultHorizonYears
	}
	return &OccurrenceEngine{HorizonYears: horizonYears}
}

// NewDefaultOccurrenceEngine builds an engine using DefaultHorizonYears.
func NewDefaultOccurrenceEngine() *OccurrenceEngine {
	return NewOccurrenceEngine(DefaultHorizonYears)
}

// civil is a zone-free calendar/wall-clock tuple. The engine performs
// all of its cascading arithmetic in civil time (anchored to UTC
// purely as a normalization trick, never as a real zone) and only
// reattaches the caller's zone once a candidate fully matches, per
// §4.4 step 4 / §9.
type civil struct {
	y, mo, d, h, mi, s int
}

func fromTime(t time.Time) civil {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return civil{y, int(mo), d, h, mi, s}
}

func normalizeCivil(c civil) civil {
	t := time.Date(c.y, time.Month(c.mo), c.d, c.h, c.mi, c.s, 0, time.UTC)
	return fromTime(t)
}

func (c civil) addSeconds(n int) civil {
	return normalizeCivil(civil{c.y, c.mo, c.d, c.h, c.mi, c.s + n})
}

func (c civil) addMinutes(n int) civil {
	return normalizeCivil(civil{c.y, c.mo, c.d, c.h, c.mi + n, c.s})
}

func (c civil) addHours(n int) civil {
	return normalizeCivil(civil{c.y, c.mo, c.d, c.h + n, c.mi, c.s})
}

func (c civil) addDays(n int) civil {
	return normalizeCivil(civil{c.y, c.mo, c.d + n, c.h, c.mi, c.s})
}

func (c civil) addMonths(n int) civil {
	return normalizeCivil(civil{c.y, c.mo + n, c.d, c.h, c.mi, c.s})
}

func (c civil) weekday() time.Weekday {
	return time.Date(c.y, time.Month(c.mo), c.d, 0, 0, 0, 0, time.UTC).Weekday()
}

// FindNext returns the next instant at or after (if inclusive) or
// strictly after (if !inclusive) start that matches pattern.
func (e *OccurrenceEngine) FindNext(pattern *Pattern, start time.Time, inclusive bool) (time.Time, error) {
	loc := start.Location()
	startYear := start.Year()
	c := fromTime(start)
	if !inclusive {
		c = c.addSeconds(1)
	}

	for {
		if c.y > startYear+e.HorizonYears {
			return time.Time{}, newPatternError(ErrTimeSearchLimitExceeded, pattern.Raw, "forward search exceeded year horizon")
		}

		if !pattern.Year.IsSet(c.y, FlagAll) {
			ny := pattern.Year.NextSet(c.y, FlagAll)
			if ny == NoMatch {
				return time.Time{}, newPatternError(ErrTimeSearchLimitExceeded, pattern.Raw, "no matching year remains in domain")
			}
			c = civil{ny, 1, 1, 0, 0, 0}
			continue
		}

		if !pattern.Month.IsSet(c.mo, FlagAll) {
			c.d = 1
			c = c.addMonths(1)
			c.d, c.h, c.mi, c.s = 1, 0, 0, 0
			continue
		}

		if !dayMatchesPattern(pattern, c) {
			c = c.addDays(1)
			c.h, c.mi, c.s = 0, 0, 0
			continue
		}

		if nh := pattern.Hour.NextSet(c.h, FlagAll); nh == NoMatch {
			c = c.addDays(1)
			c.h, c.mi, c.s = 0, 0, 0
			continue
		} else if nh != c.h {
			c.h, c.mi, c.s = nh, 0, 0
			continue
		}

		if nm := pattern.Minute.NextSet(c.mi, FlagAll); nm == NoMatch {
			c = c.addHours(1)
			c.mi, c.s = 0, 0
			continue
		} else if nm != c.mi {
			c.mi, c.s = nm, 0
			continue
		}

		if ns := pattern.Second.NextSet(c.s, FlagAll); ns == NoMatch {
			c = c.addMinutes(1)
			c.s = 0
			continue
		} else if ns != c.s {
			c.s = ns
			continue
		}

		return resolveInZone(loc, c, true), nil
	}
}

// FindPrev is the mirror of FindNext: every increment becomes a
// decrement, every zero-reset becomes a reset-to-field-max, per §9's
// "explicit mirror code" guidance.
func (e *OccurrenceEngine) FindPrev(pattern *Pattern, start time.Time, inclusive bool) (time.Time, error) {
	loc := start.Location()
	startYear := start.Year()
	c := fromTime(start)
	if !inclusive {
		c = c.addSeconds(-1)
	}

	for {
		if c.y < startYear-e.HorizonYears {
			return time.Time{}, newPatternError(ErrTimeSearchLimitExceeded, pattern.Raw, "backward search exceeded year horizon")
		}

		if !pattern.Year.IsSet(c.y, FlagAll) {
			py := pattern.Year.PrevSet(c.y, FlagAll)
			if py == NoMatch {
				return time.Time{}, newPatternError(ErrTimeSearchLimitExceeded, pattern.Raw, "no matching year remains in domain")
			}
			c = civil{py, 12, 31, 23, 59, 59}
			continue
		}

		if !pattern.Month.IsSet(c.mo, FlagAll) {
			c.d = 1
			c = c.addMonths(-1)
			c.d = lastDayOfMonth(c.y, time.Month(c.mo))
			c.h, c.mi, c.s = 23, 59, 59
			continue
		}

		if !dayMatchesPattern(pattern, c) {
			c = c.addDays(-1)
			c.h, c.mi, c.s = 23, 59, 59
			continue
		}

		if ph := pattern.Hour.PrevSet(c.h, FlagAll); ph == NoMatch {
			c = c.addDays(-1)
			c.h, c.mi, c.s = 23, 59, 59
			continue
		} else if ph != c.h {
			c.h, c.mi, c.s = ph, 59, 59
			continue
		}

		if pm := pattern.Minute.PrevSet(c.mi, FlagAll); pm == NoMatch {
			c = c.addHours(-1)
			c.mi, c.s = 59, 59
			continue
		} else if pm != c.mi {
			c.mi, c.s = pm, 59
			continue
		}

		if ps := pattern.Second.PrevSet(c.s, FlagAll); ps == NoMatch {
			c = c.addMinutes(-1)
			c.s = 59
			continue
		} else if ps != c.s {
			c.s = ps
			continue
		}

		return resolveInZone(loc, c, false), nil
	}
}

// IsMatch reports whether instant matches pattern, evaluated directly
// in instant's own zone with no cascading search.
func (e *OccurrenceEngine) IsMatch(pattern *Pattern, instant time.Time) bool {
	c := fromTime(instant)
	return pattern.Year.IsSet(c.y, FlagAll) &&
		pattern.Month.IsSet(c.mo, FlagAll) &&
		dayMatchesPattern(pattern, c) &&
		pattern.Hour.IsSet(c.h, FlagAll) &&
		pattern.Minute.IsSet(c.mi, FlagAll) &&
		pattern.Second.IsSet(c.s, FlagAll)
}

// dayMatchesPattern evaluates the dom/dow interaction (§4.3) for the
// calendar date in c, resolving L/W/#N on demand since they are
// month- and year-dependent (§9).
func dayMatchesPattern(p *Pattern, c civil) bool {
	month := time.Month(c.mo)

	domOK := p.Dom.IsSet(c.d, FlagAll) ||
		(p.Dom.HasWholeLast() && c.d == lastDayOfMonth(c.y, month)) ||
		isClosestWeekdayMatch(p.Dom, c.y, month, c.d)

	weekday := c.weekday()
	dowValue := weekdayToDowValue(weekday, p.AlternativeWeekdays)

	dowOK := p.Dow.IsSet(dowValue, FlagAll) ||
		(p.Dow.IsSet(dowValue, FlagLast) && isLastWeekdayOfMonth(c.y, month, c.d, weekday))
	if !dowOK {
		for n := 1; n <= 5; n++ {
			if p.Dow.IsSet(dowValue, nthFlags[n]) && isNthWeekdayOfMonth(c.y, month, c.d, weekday, n) {
				dowOK = true
				break
			}
		}
	}

	return p.dayMatches(domOK, dowOK)
}

// weekdayToDowValue maps Go's native Sunday=0..Saturday=6 weekday
// onto the Pattern's day-of-week domain: unchanged in POSIX mode,
// shifted by one in Quartz-style alternativeWeekdays mode.
func weekdayToDowValue(w time.Weekday, alternativeWeekdays bool) int {
	if alternativeWeekdays {
		return int(w) + 1
	}
	return int(w)
}

// resolveInZone reattaches loc to a civil candidate that the search
// loop has fully matched, resolving DST gaps and folds per §4.4 step
// 4: forward picks the earliest valid wall time after a gap and the
// earlier offset across a fold; backward picks the latest valid wall
// time before a gap and the later offset across a fold.
func resolveInZone(loc *time.Location, c civil, forward bool) time.Time {
	t0 := time.Date(c.y, time.Month(c.mo), c.d, c.h, c.mi, c.s, 0, loc)
	if fromTime(t0) == c {
		// Wall time exists. It may still be ambiguous (fold): the
		// same wall clock reachable from two offsets an hour apart
		// across a "fall back" transition.
		alt := t0.Add(time.Hour)
		if fromTime(alt) == c {
			if forward {
				return t0 // earlier offset
			}
			return alt // later offset
		}
		return t0
	}

	// Gap: this wall time never occurred. Bisect a window comfortably
	// spanning the transition to find its exact boundary.
	lo := t0.Add(-4 * time.Hour)
	hi := t0.Add(4 * time.Hour)
	boundary := findTransition(lo, hi)
	if forward {
		return boundary
	}
	return boundary.Add(-time.Second)
}

// findTransition bisects [lo, hi] (lo and hi must straddle exactly
// one zone-offset change) for the instant where the offset changes,
// returning the first instant carrying hi's offset.
func findTransition(lo, hi time.Time) time.Time {
	_, loOff := lo.Zone()
	for hi.Sub(lo) > time.Second {
		mid := lo.Add(hi.Sub(lo) / 2)
		if _, midOff := mid.Zone(); midOff == loOff {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}
