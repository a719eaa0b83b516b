package cronx

// Field value domains. Each Component is constructed against one of
// these [min, max] ranges.
const (
	MinSecond = 0
	MaxSecond = 59

	MinMinute = 0
	MaxMinute = 59

	MinHour = 0
	MaxHour = 23

	MinDayOfMonth = 1
	MaxDayOfMonth = 31

	MinMonth = 1
	MaxMonth = 12

	// MinDayOfWeek/MaxDayOfWeek use the POSIX range where 7 is an alias
	// for Sunday (0). Parser normalizes 7->0 after parsing in POSIX mode;
	// in alternativeWeekdays (Quartz) mode the domain is 1-7 instead, see
	// Parser.
	MinDayOfWeek = 0
	MaxDayOfWeek = 7

	MinYear = 1970
	MaxYear = 2099
)

// Flag is a per-value feature bit. A Component tracks, for every value
// in its domain, which of these are active in addition to plain
// membership (FlagAll).
type Flag uint16

const (
	// FlagAll marks a value as a member of the field's base set (i.e.
	// the value was named directly, via a list/range/step/wildcard).
	FlagAll Flag = 1 << iota

	// FlagLast marks a day-of-week value as "the last occurrence of
	// this weekday in the month" (dow "5L" syntax).
	FlagLast

	// FlagClosestWeekday marks a day-of-month value as "resolve to the
	// nearest weekday" (dom "15W" syntax).
	FlagClosestWeekday

	FlagNth1
	FlagNth2
	FlagNth3
	FlagNth4
	FlagNth5
)

// nthFlags indexes FlagNth1..FlagNth5 by occurrence number (1-based).
var nthFlags = [6]Flag{0, FlagNth1, FlagNth2, FlagNth3, FlagNth4, FlagNth5}

// NoMatch is the sentinel returned by Component.NextSet/PrevSet when no
// value in the requested direction carries the requested flag.
const NoMatch = -1

// DefaultHorizonYears bounds how many years the OccurrenceEngine walks
// forward/backward before giving up with TimeSearchLimitExceeded. Eight
// years is enough to find a "29 Feb" match (which can require up to 8
// years between leap years) while still rejecting a genuinely
// unsatisfiable pattern like "0 0 31 2 *" promptly.
const DefaultHorizonYears = 8
