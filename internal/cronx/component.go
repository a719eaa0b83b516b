package cronx

import (
	"strconv"
	"strings"
)

// Component is a bit-field over the contiguous integer domain
// [Min, Max], plus a small set of orthogonal per-value feature flags
// (LAST, CLOSEST_WEEKDAY, NTH-1..NTH-5). It is the unit the Parser
// populates one cron field into, per spec.md §4.1.
type Component struct {
	Min, Max int
	allowed  Flag

	bits  bitset      // FlagAll membership
	extra map[int]Flag // sparse per-value feature flags (W, #N, dow-L)

	wholeLast bool // bare "L" on day-of-month: last calendar day of any month

	Step         int  // the step used in the last "/N" parse, or 1; retained for describability
	FromWildcard bool // true iff the field text was exactly "*" (or "*/N")
	Raw          string
}

// NewComponent builds an empty Component over [min, max] that will
// accept the special features named in allowed (a bitwise-OR of
// FlagLast/FlagClosestWeekday/FlagNth1..FlagNth5; FlagAll is implicit).
func NewComponent(min, max int, allowed Flag) *Component {
	return &Component{
		Min:     min,
		Max:     max,
		allowed: allowed,
		bits:    newBitset(max - min + 1),
		extra:   make(map[int]Flag),
		Step:    1,
	}
}

// Parse populates the component from one already-trimmed, already
// case-normalized field token (aliases already substituted to numbers
// by the caller). It is idempotent only in the sense that re-parsing a
// fresh Component with the same token yields an equal one; a Component
// that has already been parsed should not be reused.
func (c *Component) Parse(raw string) error {
	c.Raw = raw

	if raw == "*" {
		c.setRange(c.Min, c.Max, 1)
		c.FromWildcard = true
		c.Step = 1
		return nil
	}

	for _, term := range strings.Split(raw, ",") {
		if term == "" {
			return newFieldError(ErrComponentError, c.fieldName(), raw, "empty term in list")
		}
		if err := c.parseTerm(term); err != nil {
			return err
		}
	}
	return nil
}

func (c *Component) parseTerm(term string) error {
	switch {
	case strings.Contains(term, "/"):
		return c.parseStep(term)
	case term == "L":
		if c.allowed&FlagLast == 0 {
			return newFieldError(ErrUnsupportedSpecialBit, c.fieldName(), term, "L not supported on this field")
		}
		c.wholeLast = true
		return nil
	case strings.Contains(term, "-"):
		start, end, err := c.parseRangeBounds(term)
		if err != nil {
			return err
		}
		c.setRange(start, end, 1)
		return nil
	case strings.HasSuffix(term, "W") && c.allowed&FlagClosestWeekday != 0:
		return c.parseClosestWeekday(term)
	case strings.HasSuffix(term, "#L") && c.allowed&FlagLast != 0:
		// "<weekday>#L" is accepted as a synonym of "<weekday>L" (last
		// occurrence of that weekday in the month).
		return c.parseWeekdayLastAlias(term)
	case strings.HasSuffix(term, "L") && c.allowed&FlagLast != 0:
		return c.parseWeekdayLast(term)
	case strings.Contains(term, "#"):
		return c.parseNth(term)
	default:
		v, err := c.parseValue(term)
		if err != nil {
			return err
		}
		c.bits.set(v - c.Min)
		return nil
	}
}

func (c *Component) parseStep(term string) error {
	idx := strings.IndexByte(term, '/')
	base, stepStr := term[:idx], term[idx+1:]

	step, err := strconv.Atoi(stepStr)
	if err != nil || step <= 0 {
		return newFieldError(ErrComponentError, c.fieldName(), term, "step must be a positive integer")
	}

	var start, end int
	switch {
	case base == "*":
		start, end = c.Min, c.Max
	case strings.Contains(base, "-"):
		start, end, err = c.parseRangeBounds(base)
		if err != nil {
			return err
		}
	default:
		start, err = c.parseValue(base)
		if err != nil {
			return err
		}
		end = c.Max
	}

	c.setRange2(start, end, step)
	c.Step = step
	if base == "*" {
		c.FromWildcard = true
	}
	return nil
}

func (c *Component) parseRangeBounds(term string) (int, int, error) {
	idx := strings.IndexByte(term, '-')
	if idx < 0 {
		return 0, 0, newFieldError(ErrComponentError, c.fieldName(), term, "invalid range")
	}
	start, err := c.parseValue(term[:idx])
	if err != nil {
		return 0, 0, err
	}
	end, err := c.parseValue(term[idx+1:])
	if err != nil {
		return 0, 0, err
	}
	if start > end {
		return 0, 0, newFieldError(ErrComponentError, c.fieldName(), term, "range start greater than end")
	}
	return start, end, nil
}

func (c *Component) parseClosestWeekday(term string) error {
	v, err := c.parseValue(term[:len(term)-1])
	if err != nil {
		return err
	}
	c.setExtra(v, FlagClosestWeekday)
	return nil
}

func (c *Component) parseWeekdayLast(term string) error {
	v, err := c.parseValue(term[:len(term)-1])
	if err != nil {
		return err
	}
	c.setExtra(v, FlagLast)
	return nil
}

func (c *Component) parseWeekdayLastAlias(term string) error {
	v, err := c.parseValue(term[:len(term)-2])
	if err != nil {
		return err
	}
	c.setExtra(v, FlagLast)
	return nil
}

func (c *Component) parseNth(term string) error {
	if c.allowed&(FlagNth1|FlagNth2|FlagNth3|FlagNth4|FlagNth5) == 0 {
		return newFieldError(ErrUnsupportedSpecialBit, c.fieldName(), term, "#N not supported on this field")
	}
	idx := strings.IndexByte(term, '#')
	weekday, err := c.parseValue(term[:idx])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(term[idx+1:])
	if err != nil || n < 1 || n > 5 {
		return newFieldError(ErrComponentError, c.fieldName(), term, "#N occurrence must be 1-5")
	}
	c.setExtra(weekday, nthFlags[n])
	return nil
}

func (c *Component) parseValue(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, newFieldError(ErrComponentError, c.fieldName(), s, "not a number")
	}
	if v < c.Min || v > c.Max {
		return 0, newFieldError(ErrComponentError, c.fieldName(), s, "value out of range")
	}
	return v, nil
}

func (c *Component) setExtra(value int, flag Flag) {
	if flag != FlagAll && c.allowed&flag == 0 {
		// caller already checked allowance for the common cases; this
		// guards NTH flags reached via parseNth's own check.
		return
	}
	c.extra[value] |= flag
}

func (c *Component) setRange(start, end, step int) {
	c.setRange2(start, end, step)
}

func (c *Component) setRange2(start, end, step int) {
	for v := start; v <= end; v += step {
		c.bits.set(v - c.Min)
	}
}

// IsSet reports whether value carries flag. FlagAll tests plain
// membership; any other flag tests the per-value feature bits.
func (c *Component) IsSet(value int, flag Flag) bool {
	if value < c.Min || value > c.Max {
		return false
	}
	if flag == FlagAll {
		return c.bits.test(value - c.Min)
	}
	return c.extra[value]&flag != 0
}

// HasWholeLast reports whether the bare "L" qualifier was set (only
// meaningful for the day-of-month component).
func (c *Component) HasWholeLast() bool { return c.wholeLast }

// GetSetValues returns every value in [Min, Max] carrying flag, in
// ascending order.
func (c *Component) GetSetValues(flag Flag) []int {
	var out []int
	for v := c.Min; v <= c.Max; v++ {
		if c.IsSet(v, flag) {
			out = append(out, v)
		}
	}
	return out
}

// NextSet returns the smallest v >= value with flag set, or NoMatch.
func (c *Component) NextSet(value int, flag Flag) int {
	if value < c.Min {
		value = c.Min
	}
	for v := value; v <= c.Max; v++ {
		if c.IsSet(v, flag) {
			return v
		}
	}
	return NoMatch
}

// PrevSet returns the largest v <= value with flag set, or NoMatch.
func (c *Component) PrevSet(value int, flag Flag) int {
	if value > c.Max {
		value = c.Max
	}
	for v := value; v >= c.Min; v-- {
		if c.IsSet(v, flag) {
			return v
		}
	}
	return NoMatch
}

// Equal compares two Components structurally: domain, membership
// (including feature flags), step, and fromWildcard — never the
// source text itself.
func (c *Component) Equal(o *Component) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.Min != o.Min || c.Max != o.Max || c.wholeLast != o.wholeLast {
		return false
	}
	if c.Step != o.Step || c.FromWildcard != o.FromWildcard {
		return false
	}
	if !c.bits.equal(&o.bits) {
		return false
	}
	if len(c.extra) != len(o.extra) {
		return false
	}
	for k, v := range c.extra {
		if o.extra[k] != v {
			return false
		}
	}
	return true
}

func (c *Component) fieldName() string {
	switch {
	case c.Min == MinSecond && c.Max == MaxSecond:
		return "second"
	case c.Min == MinHour && c.Max == MaxHour:
		return "hour"
	case c.Min == MinDayOfMonth && c.Max == MaxDayOfMonth:
		return "day-of-month"
	case c.Min == MinMonth && c.Max == MaxMonth:
		return "month"
	case c.Min == MinDayOfWeek:
		return "day-of-week"
	case c.Min == MinYear:
		return "year"
	default:
		return "minute"
	}
}
