package strength

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalc(t *testing.T) {
	t.Parallel()
	tests := []struct {
		password string
		percent  float64
		label    string
		color    Color
	}{
		{"", 0, "Weak", Red},
		{"abc", 12.5, "Weak", Red},
		{"abcdefgh", 32.5, "Weak", Red},
		{"abcdefgH", 45, "Fair", Orange},
		{"abcdefgH1", 57.5, "Fair", Orange},
		{"abcdefgH1!", 70, "Good", Yellow},
		{"abcdefgH1!xy", 90, "Strong", Green},
		{"abcdefgH1!xyzwvu", 100, "Strong", Green},
		{"aaaaaaaaaaaa", 52.5, "Fair", Orange},
		{"Aa1!", 50, "Fair", Orange},
		{"pass word", 45, "Fair", Orange},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			t.Parallel()
			got := Calc(tt.password)
			assert.Equal(t, tt.percent, got.Percent)
			assert.Equal(t, tt.label, got.Label)
			assert.Equal(t, tt.color, got.Color)
		})
	}
}

func TestCalcTierBoundaries(t *testing.T) {
	t.Parallel()
	// 8 chars lower+upper+digit = 20 + 37.5
	assert.Equal(t, "Fair", Calc("abcdEF12").Label)
	// 12 chars, lower+upper = 40 + 25
	assert.Equal(t, "Good", Calc("abcdefghijkL").Label)
	// 12 chars, three classes = 77.5, one short of Strong
	assert.Equal(t, "Good", Calc("abcdefghiJK1").Label)
	assert.Equal(t, "Strong", Calc("abcdefghiJ1!").Label)
}

func TestCalcCountsCodePoints(t *testing.T) {
	t.Parallel()
	// eight runes, sixteen bytes
	got := Calc(strings.Repeat("é", 8))
	assert.Equal(t, 32.5, got.Percent, "length bonus plus symbol class")
}

func TestCalcBoundedAndMonotonic(t *testing.T) {
	t.Parallel()
	prev := 0.0
	for n := 1; n <= 24; n++ {
		p := Calc("Aa1!" + strings.Repeat("x", n)).Percent
		require.GreaterOrEqual(t, p, prev)
		require.LessOrEqual(t, p, 100.0)
		prev = p
	}
	assert.Equal(t, 100.0, prev)
}

func TestRuleBonusesSumToHundred(t *testing.T) {
	t.Parallel()
	var total float64
	for _, r := range Rules {
		total += r.Bonus
	}
	assert.Equal(t, 100.0, total)
}

func TestPassed(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"length>=8", "lowercase", "digit"}, Passed("abcdefg1"))
	assert.Empty(t, Passed(""))
}

func TestBarPlain(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[##############------] Good (70%)", Calc("abcdefgH1!").Bar(false))
	assert.Equal(t, "[##------------------] Weak (12.5%)", Calc("abc").Bar(false))
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "62.5", FormatPercent(62.5))
	assert.Equal(t, "100", FormatPercent(100))
	assert.Equal(t, "0", FormatPercent(0))
}
