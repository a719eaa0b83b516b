package describe

import "fmt"

// Swedish renders phrases the way original_source/src/describe/lang/swedish.rs does.
type Swedish struct{}

func (Swedish) EveryMinute() string          { return "Varje minut" }
func (Swedish) EveryXMinutes(step int) string { return fmt.Sprintf("var %d:e minut", step) }
func (Swedish) EveryXHours(step int) string   { return fmt.Sprintf("var %d:e timme", step) }
func (Swedish) AtTime(time string) string     { return fmt.Sprintf("Klockan %s", time) }
func (Swedish) AtPhrase(phrase string) string  { return fmt.Sprintf("Vid %s", phrase) }
func (Swedish) OnPhrase(phrase string) string  { return fmt.Sprintf("på %s", phrase) }
func (Swedish) InPhrase(phrase string) string  { return fmt.Sprintf("i %s", phrase) }
func (Swedish) MinutePhrase(s string) string   { return fmt.Sprintf("minut %s", s) }
func (Swedish) MinutePastEveryHourPhrase(s string) string {
	return fmt.Sprintf("%s över varje heltimme", s)
}
func (Swedish) HourPhrase(s string) string { return fmt.Sprintf("timme %s", s) }
func (Swedish) DayPhrase(s string) string  { return fmt.Sprintf("dag %s", s) }
func (Swedish) TheLastDayOfTheMonth() string {
	return "sista dagen i månaden"
}
func (Swedish) TheWeekdayNearestDay(day string) string {
	return fmt.Sprintf("veckodagen närmast dag %s", day)
}
func (Swedish) TheLastWeekdayOfTheMonth(day string) string {
	return fmt.Sprintf("sista %s i månaden", day)
}
func (Swedish) TheNthWeekdayOfTheMonth(n int, day string) string {
	ordinals := map[int]string{1: "första", 2: "andra", 3: "tredje", 4: "fjärde", 5: "femte"}
	return fmt.Sprintf("den %s %s i månaden", ordinals[n], day)
}
func (Swedish) ListConjunctionAnd() string      { return " och " }
func (Swedish) ListConjunctionAndComma() string { return " och " } // Oxford comma is not used in Swedish
func (Swedish) ListConjunctionOr() string       { return " eller " }

func (Swedish) EverySecondPhrase() string           { return "Varje sekund" }
func (Swedish) EveryXSeconds(step int) string        { return fmt.Sprintf("var %d:e sekund", step) }
func (Swedish) AtTimeAtSecond(time, second string) string {
	return fmt.Sprintf("Klockan %s, på sekund %s", time, second)
}
func (Swedish) AtTimeAndEveryXSeconds(time string, step int) string {
	return fmt.Sprintf("Klockan %s, var %d:e sekund", time, step)
}
func (Swedish) SecondPhrase(s string) string { return fmt.Sprintf("sekund %s", s) }
func (Swedish) YearPhrase(s string) string   { return fmt.Sprintf("år %s", s) }

func (Swedish) DomAndDowIfAlso(domPhrase, dowPhrase string) string {
	return fmt.Sprintf("%s (om det också är %s)", domPhrase, dowPhrase)
}
func (Swedish) DomAndDowIfAlsoOneOf(domPhrase, dowPhrase string) string {
	return fmt.Sprintf("%s (om det också är en av: %s)", domPhrase, dowPhrase)
}

func (Swedish) DayOfWeekNames() [7]string {
	return [7]string{"söndag", "måndag", "tisdag", "onsdag", "torsdag", "fredag", "lördag"}
}

func (Swedish) MonthNames() [12]string {
	return [12]string{
		"januari", "februari", "mars", "april", "maj", "juni",
		"juli", "augusti", "september", "oktober", "november", "december",
	}
}
