package describe

import (
	"fmt"
	"strings"

	"github.com/hzerrad/cronic/internal/cronx"
)

// Humanizer renders a Pattern into a locale-specific sentence.
type Humanizer struct {
	lang Language
}

// NewHumanizer builds a Humanizer for the given locale, falling back to
// English for an unknown one (see Get).
func NewHumanizer(locale string) *Humanizer {
	return &Humanizer{lang: Get(locale)}
}

// Describe renders pattern using the Humanizer's configured locale.
func (h *Humanizer) Describe(pattern *cronx.Pattern) string {
	return Describe(pattern, h.lang)
}

// Describe renders pattern into a human sentence in lang, following
// original_source's describe::describe orchestration: a time clause, a
// day clause, a month clause and a year clause, joined with ", " and
// capitalized with a trailing period.
func Describe(pattern *cronx.Pattern, lang Language) string {
	var parts []string
	if t := describeTime(pattern, lang); t != "" {
		parts = append(parts, t)
	}
	if d := describeDay(pattern, lang); d != "" {
		parts = append(parts, d)
	}
	if m := describeMonth(pattern, lang); m != "" {
		parts = append(parts, m)
	}
	if y := describeYear(pattern, lang); y != "" {
		parts = append(parts, y)
	}

	description := strings.Join(parts, ", ")
	if description == "" {
		return description
	}
	return strings.ToUpper(description[:1]) + description[1:] + "."
}

// isAllSet reports whether every value in a component's domain is a
// member, following original_source's is_all_set: a stepped field
// (step != 1) is never "all set", and for huge domains (year) checking
// membership one value at a time is skipped in favor of the
// from-wildcard bookkeeping Parser already tracked.
func isAllSet(c *cronx.Component) bool {
	if c.Step != 1 {
		return false
	}
	total := c.Max - c.Min + 1
	if total > 10000 {
		return c.FromWildcard
	}
	return len(c.GetSetValues(cronx.FlagAll)) == total
}

// isSteppedFromStart reports whether vals looks like a "*/step" field:
// more than one unit apart and starting at the domain minimum.
func isSteppedFromStart(step int, vals []int, min int) bool {
	return step > 1 && len(vals) > 0 && vals[0] == min
}

func describeTime(p *cronx.Pattern, lang Language) string {
	secVals := p.Second.GetSetValues(cronx.FlagAll)
	minVals := p.Minute.GetSetValues(cronx.FlagAll)
	hourVals := p.Hour.GetSetValues(cronx.FlagAll)

	isDefaultSeconds := p.Second.Step == 1 && len(secVals) == 1 && secVals[0] == 0
	isEverySecond := isAllSet(p.Second)

	if isEverySecond && isAllSet(p.Minute) && isAllSet(p.Hour) {
		return lang.EverySecondPhrase()
	}
	if isDefaultSeconds && isAllSet(p.Minute) && isAllSet(p.Hour) {
		return lang.EveryMinute()
	}
	if isDefaultSeconds && isSteppedFromStart(p.Minute.Step, minVals, p.Minute.Min) && isAllSet(p.Hour) {
		return lang.AtPhrase(lang.EveryXMinutes(p.Minute.Step))
	}

	if !isEverySecond && p.Hour.Step == 1 && len(hourVals) == 1 && p.Minute.Step == 1 && len(minVals) == 1 {
		timeStr := fmt.Sprintf("%02d:%02d", hourVals[0], minVals[0])

		if !isDefaultSeconds {
			if isSteppedFromStart(p.Second.Step, secVals, p.Second.Min) {
				return lang.AtTimeAndEveryXSeconds(timeStr, p.Second.Step)
			}
			if len(secVals) == 1 {
				return lang.AtTime(fmt.Sprintf("%s:%02d", timeStr, secVals[0]))
			}
			return lang.AtTimeAtSecond(timeStr, formatNumberList(secVals, lang))
		}
		return lang.AtTime(timeStr)
	}

	// "* N * * *" reads as "every minute past hour N", not "At of hour N".
	if isDefaultSeconds && isAllSet(p.Minute) && !isAllSet(p.Hour) {
		return fmt.Sprintf("%s past %s", lang.EveryMinute(), hourDesc(p, lang, hourVals))
	}
	if isEverySecond && isAllSet(p.Minute) && !isAllSet(p.Hour) {
		return fmt.Sprintf("%s past %s", lang.EverySecondPhrase(), hourDesc(p, lang, hourVals))
	}

	var parts []string

	switch {
	case isEverySecond:
		parts = append(parts, lang.EverySecondPhrase())
	case !isDefaultSeconds:
		if isSteppedFromStart(p.Second.Step, secVals, p.Second.Min) {
			parts = append(parts, lang.EveryXSeconds(p.Second.Step))
		} else {
			parts = append(parts, lang.SecondPhrase(formatNumberList(secVals, lang)))
		}
	}

	switch {
	case isSteppedFromStart(p.Minute.Step, minVals, p.Minute.Min):
		parts = append(parts, lang.EveryXMinutes(p.Minute.Step))
	case !isAllSet(p.Minute):
		minDesc := lang.MinutePhrase(formatNumberList(minVals, lang))
		if isAllSet(p.Hour) && p.Hour.Step == 1 {
			parts = append(parts, lang.MinutePastEveryHourPhrase(minDesc))
		} else {
			parts = append(parts, minDesc)
		}
	}

	if !isAllSet(p.Hour) {
		if isSteppedFromStart(p.Hour.Step, hourVals, p.Hour.Min) {
			parts = append(parts, lang.EveryXHours(p.Hour.Step))
		} else {
			parts = append(parts, lang.HourPhrase(formatNumberList(hourVals, lang)))
		}
	}

	if len(parts) == 0 {
		return lang.EveryMinute()
	}
	if len(parts) > 1 && parts[0] == lang.EverySecondPhrase() {
		return strings.Join(parts, ", ")
	}
	return lang.AtPhrase(strings.Join(parts, ", "))
}

func hourDesc(p *cronx.Pattern, lang Language, hourVals []int) string {
	if isSteppedFromStart(p.Hour.Step, hourVals, p.Hour.Min) {
		return lang.EveryXHours(p.Hour.Step)
	}
	return fmt.Sprintf("hour %s", formatNumberList(hourVals, lang))
}

func describeDay(p *cronx.Pattern, lang Language) string {
	domDesc := describeDom(p, lang)
	dowParts := describeDowParts(p, lang)

	switch {
	case p.StarDom && p.StarDow:
		return ""
	case !p.StarDom && p.StarDow:
		return lang.OnPhrase(domDesc)
	}

	dowDesc := formatTextList(dowParts, lang)
	if p.StarDom && !p.StarDow {
		return lang.OnPhrase(dowDesc)
	}

	domPhrase := lang.OnPhrase(domDesc)
	if p.DomAndDow {
		if len(dowParts) > 1 {
			return lang.DomAndDowIfAlsoOneOf(domPhrase, dowDesc)
		}
		return lang.DomAndDowIfAlso(domPhrase, dowDesc)
	}
	return domPhrase + lang.ListConjunctionOr() + dowDesc
}

func describeDom(p *cronx.Pattern, lang Language) string {
	var parts []string

	regularDays := p.Dom.GetSetValues(cronx.FlagAll)
	if len(regularDays) > 0 {
		parts = append(parts, lang.DayPhrase(formatNumberList(regularDays, lang)))
	}
	if p.Dom.HasWholeLast() {
		parts = append(parts, lang.TheLastDayOfTheMonth())
	}
	if weekdayValues := p.Dom.GetSetValues(cronx.FlagClosestWeekday); len(weekdayValues) > 0 {
		parts = append(parts, lang.TheWeekdayNearestDay(formatNumberList(weekdayValues, lang)))
	}

	return formatTextList(parts, lang)
}

// dowNameIndex maps a normalized day-of-week value to a 0(Sunday)-based
// index into lang.DayOfWeekNames, honoring both the POSIX (Sunday=0)
// and alternative/Quartz (Sunday=1) numbering Parser can produce.
func dowNameIndex(value int, alternativeWeekdays bool) int {
	if alternativeWeekdays {
		return (value - 1 + 7) % 7
	}
	return ((value % 7) + 7) % 7
}

func describeDowParts(p *cronx.Pattern, lang Language) []string {
	var parts []string
	names := lang.DayOfWeekNames()

	dowName := func(v int) string { return names[dowNameIndex(v, p.AlternativeWeekdays)] }

	if lastValues := p.Dow.GetSetValues(cronx.FlagLast); len(lastValues) > 0 {
		days := make([]string, len(lastValues))
		for i, v := range lastValues {
			days[i] = dowName(v)
		}
		parts = append(parts, lang.TheLastWeekdayOfTheMonth(formatTextList(days, lang)))
	}

	nthFlags := []cronx.Flag{cronx.FlagNth1, cronx.FlagNth2, cronx.FlagNth3, cronx.FlagNth4, cronx.FlagNth5}
	for i, flag := range nthFlags {
		values := p.Dow.GetSetValues(flag)
		if len(values) == 0 {
			continue
		}
		days := make([]string, len(values))
		for j, v := range values {
			days[j] = dowName(v)
		}
		parts = append(parts, lang.TheNthWeekdayOfTheMonth(i+1, formatTextList(days, lang)))
	}

	if regularValues := p.Dow.GetSetValues(cronx.FlagAll); len(regularValues) > 0 {
		days := make([]string, len(regularValues))
		for i, v := range regularValues {
			days[i] = dowName(v)
		}
		parts = append(parts, formatTextList(days, lang))
	}

	return parts
}

func describeMonth(p *cronx.Pattern, lang Language) string {
	if isAllSet(p.Month) {
		return ""
	}
	if p.Month.Step > 1 {
		return lang.InPhrase(fmt.Sprintf("every %d months", p.Month.Step))
	}

	names := lang.MonthNames()
	values := p.Month.GetSetValues(cronx.FlagAll)
	list := make([]string, len(values))
	for i, v := range values {
		list[i] = names[v-1]
	}
	return lang.InPhrase(formatTextList(list, lang))
}

func describeYear(p *cronx.Pattern, lang Language) string {
	if isAllSet(p.Year) {
		return ""
	}
	if p.Year.Step > 1 {
		return lang.InPhrase(lang.YearPhrase(fmt.Sprintf("every %d", p.Year.Step)))
	}

	values := p.Year.GetSetValues(cronx.FlagAll)
	return lang.InPhrase(lang.YearPhrase(formatNumberList(values, lang)))
}
