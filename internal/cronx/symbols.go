package cronx

import "strings"

// SymbolRegistry provides locale-specific mappings for day and month
// names used in alias substitution (step 3 of the Parser pipeline).
type SymbolRegistry interface {
	// ParseDaySymbol resolves a three-letter weekday alias (SUN..SAT)
	// to its numeric value under the given weekday numbering.
	ParseDaySymbol(s string, alternativeWeekdays bool) (int, bool)

	// ParseMonthSymbol resolves a three-letter month alias (JAN..DEC)
	// to its numeric value (always 1-12).
	ParseMonthSymbol(s string) (int, bool)

	// Locale returns the locale identifier (e.g., "en").
	Locale() string
}

// symbolRegistry is the default implementation, keyed by locale.
type symbolRegistry struct {
	locale        string
	dayNamesPosix map[string]int // SUN=0 .. SAT=6
	dayNamesAlt   map[string]int // SUN=1 .. SAT=7
	monthNames    map[string]int
}

// NewSymbolRegistry creates a new symbol registry with the given
// mappings. dayNamesPosix and dayNamesAlt must agree on key set.
func NewSymbolRegistry(locale string, dayNamesPosix, dayNamesAlt, monthNames map[string]int) SymbolRegistry {
	return &symbolRegistry{
		locale:        locale,
		dayNamesPosix: dayNamesPosix,
		dayNamesAlt:   dayNamesAlt,
		monthNames:    monthNames,
	}
}

func (r *symbolRegistry) ParseDaySymbol(s string, alternativeWeekdays bool) (int, bool) {
	upper := strings.ToUpper(s)
	table := r.dayNamesPosix
	if alternativeWeekdays {
		table = r.dayNamesAlt
	}
	v, ok := table[upper]
	return v, ok
}

func (r *symbolRegistry) ParseMonthSymbol(s string) (int, bool) {
	v, ok := r.monthNames[strings.ToUpper(s)]
	return v, ok
}

func (r *symbolRegistry) Locale() string { return r.locale }

// DefaultSymbolRegistry is the English (en) symbol registry.
var DefaultSymbolRegistry = NewSymbolRegistry(
	"en",
	map[string]int{
		"SUN": 0,
		"MON": 1,
		"TUE": 2,
		"WED": 3,
		"THU": 4,
		"FRI": 5,
		"SAT": 6,
	},
	map[string]int{
		"SUN": 1,
		"MON": 2,
		"TUE": 3,
		"WED": 4,
		"THU": 5,
		"FRI": 6,
		"SAT": 7,
	},
	map[string]int{
		"JAN": 1,
		"FEB": 2,
		"MAR": 3,
		"APR": 4,
		"MAY": 5,
		"JUN": 6,
		"JUL": 7,
		"AUG": 8,
		"SEP": 9,
		"OCT": 10,
		"NOV": 11,
		"DEC": 12,
	},
)

// SymbolRegistryMap holds all available symbol registries by locale.
var SymbolRegistryMap = map[string]SymbolRegistry{
	"en": DefaultSymbolRegistry,
}

// GetSymbolRegistry returns the symbol registry for locale, falling
// back to English when the locale is not registered.
func GetSymbolRegistry(locale string) (SymbolRegistry, bool) {
	if registry, ok := SymbolRegistryMap[locale]; ok {
		return registry, true
	}
	return DefaultSymbolRegistry, false
}
