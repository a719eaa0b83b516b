package describe

import "fmt"

// English renders phrases the way original_source/src/describe/lang/english.rs does.
type English struct{}

func (English) EveryMinute() string              { return "Every minute" }
func (English) EveryXMinutes(step int) string     { return fmt.Sprintf("every %d minutes", step) }
func (English) EveryXHours(step int) string        { return fmt.Sprintf("of every %d hours", step) }
func (English) AtTime(time string) string          { return fmt.Sprintf("At %s", time) }
func (English) AtPhrase(phrase string) string       { return fmt.Sprintf("At %s", phrase) }
func (English) OnPhrase(phrase string) string       { return fmt.Sprintf("on %s", phrase) }
func (English) InPhrase(phrase string) string       { return fmt.Sprintf("in %s", phrase) }
func (English) MinutePhrase(s string) string        { return fmt.Sprintf("minute %s", s) }
func (English) MinutePastEveryHourPhrase(s string) string {
	return fmt.Sprintf("%s past every hour", s)
}
func (English) HourPhrase(s string) string { return fmt.Sprintf("of hour %s", s) }
func (English) DayPhrase(s string) string  { return fmt.Sprintf("day %s", s) }
func (English) TheLastDayOfTheMonth() string {
	return "the last day of the month"
}
func (English) TheWeekdayNearestDay(day string) string {
	return fmt.Sprintf("the weekday nearest day %s", day)
}
func (English) TheLastWeekdayOfTheMonth(day string) string {
	return fmt.Sprintf("the last %s of the month", day)
}
func (English) TheNthWeekdayOfTheMonth(n int, day string) string {
	suffix := "th"
	switch n {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	return fmt.Sprintf("the %d%s %s of the month", n, suffix, day)
}
func (English) ListConjunctionAnd() string      { return " and " }
func (English) ListConjunctionAndComma() string { return ", and " }
func (English) ListConjunctionOr() string       { return " or " }

func (English) EverySecondPhrase() string          { return "Every second" }
func (English) EveryXSeconds(step int) string       { return fmt.Sprintf("every %d seconds", step) }
func (English) AtTimeAtSecond(time, second string) string {
	return fmt.Sprintf("At %s, at second %s", time, second)
}
func (English) AtTimeAndEveryXSeconds(time string, step int) string {
	return fmt.Sprintf("At %s, every %d seconds", time, step)
}
func (English) SecondPhrase(s string) string { return fmt.Sprintf("second %s", s) }
func (English) YearPhrase(s string) string   { return fmt.Sprintf("year %s", s) }

func (English) DomAndDowIfAlso(domPhrase, dowPhrase string) string {
	return fmt.Sprintf("%s (if it is also %s)", domPhrase, dowPhrase)
}
func (English) DomAndDowIfAlsoOneOf(domPhrase, dowPhrase string) string {
	return fmt.Sprintf("%s (if it is also one of: %s)", domPhrase, dowPhrase)
}

func (English) DayOfWeekNames() [7]string {
	return [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
}

func (English) MonthNames() [12]string {
	return [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
}
