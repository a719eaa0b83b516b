package describe

import (
	"fmt"
	"strconv"
	"strings"
)

// formatTextList joins items into a single phrase using lang's
// conjunctions, following original_source's format_text_list.
func formatTextList(items []string, lang Language) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + lang.ListConjunctionAnd() + items[1]
	default:
		front := items[:len(items)-1]
		last := items[len(items)-1]
		return strings.Join(front, ", ") + lang.ListConjunctionAndComma() + last
	}
}

// formatNumberList collapses three-or-more consecutive integers into a
// "start-end" range before joining, following
// original_source's format_number_list.
func formatNumberList(values []int, lang Language) string {
	if len(values) == 0 {
		return ""
	}

	var items []string
	i := 0
	for i < len(values) {
		start := values[i]
		j := i
		for j+1 < len(values) && values[j+1] == values[j]+1 {
			j++
		}
		if j > i+1 {
			items = append(items, fmt.Sprintf("%d-%d", start, values[j]))
		} else {
			for k := i; k <= j; k++ {
				items = append(items, strconv.Itoa(values[k]))
			}
		}
		i = j + 1
	}
	return formatTextList(items, lang)
}
