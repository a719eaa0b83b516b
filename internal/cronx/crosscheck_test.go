package cronx

import (
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests cross-check plain five-field POSIX expressions (no L/W/#N
// extensions, where the two libraries' semantics are expected to agree)
// against robfig/cron's independent implementation, as a sanity net on
// top of the hand-verified scenarios in engine_test.go.
func TestEngine_CrossCheck_AgreesWithRobfigCronOnPlainExpressions(t *testing.T) {
	exprs := []string{
		"*/15 * * * *",
		"0 9 * * 1-5",
		"30 4 1,15 * *",
		"0 0 1 */3 *",
		"45 23 * * 0",
	}

	engine := NewDefaultOccurrenceEngine()
	parser := NewParser()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, expr := range exprs {
		expr := expr
		t.Run(expr, func(t *testing.T) {
			pat, err := parser.Parse(expr)
			require.NoError(t, err)

			reference, err := cron.ParseStandard(expr)
			require.NoError(t, err)

			from := start
			for i := 0; i < 5; i++ {
				want := reference.Next(from)
				got, err := engine.FindNext(pat, from, false)
				require.NoError(t, err)
				assert.Equal(t, want, got, "occurrence %d after %s", i, from)
				from = got
			}
		})
	}
}
