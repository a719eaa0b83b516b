package cronx

// Pattern aggregates the seven Components that make up one cron
// expression, plus the disambiguation flags recorded during parsing.
// Once built by a Parser, a Pattern is immutable and safe to share
// across concurrent OccurrenceEngine searches.
type Pattern struct {
	Second *Component
	Minute *Component
	Hour   *Component
	Dom    *Component
	Month  *Component
	Dow    *Component
	Year   *Component

	StarDom bool
	StarDow bool

	DomAndDow           bool
	AlternativeWeekdays bool

	Raw string
}

// dayMatches evaluates the dom/dow interaction rule of §4.3: given
// whether the day-of-month side and the day-of-week side each match
// the candidate date, decide whether the date as a whole matches.
func (p *Pattern) dayMatches(domMatches, dowMatches bool) bool {
	switch {
	case p.StarDom && p.StarDow:
		return true
	case p.StarDom != p.StarDow:
		if p.StarDom {
			return dowMatches
		}
		return domMatches
	case p.DomAndDow:
		return domMatches && dowMatches
	default:
		return domMatches || dowMatches
	}
}

// Equal compares two Patterns structurally: every Component plus the
// disambiguation flags, never the source text, per spec.md §3.
func (p *Pattern) Equal(o *Pattern) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Second.Equal(o.Second) &&
		p.Minute.Equal(o.Minute) &&
		p.Hour.Equal(o.Hour) &&
		p.Dom.Equal(o.Dom) &&
		p.Month.Equal(o.Month) &&
		p.Dow.Equal(o.Dow) &&
		p.Year.Equal(o.Year) &&
		p.StarDom == o.StarDom &&
		p.StarDow == o.StarDow &&
		p.DomAndDow == o.DomAndDow &&
		p.AlternativeWeekdays == o.AlternativeWeekdays
}

// dowDomain returns the day-of-week domain in effect for this
// Pattern: POSIX 0-7 (7 aliasing Sunday, normalized away at parse
// time) or Quartz-style 1-7.
func (p *Pattern) dowDomain() (min, max int) {
	if p.AlternativeWeekdays {
		return 1, 7
	}
	return MinDayOfWeek, MaxDayOfWeek - 1
}
