package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBool(t *testing.T) {
	assert.True(t, parseBool("true"))
	assert.True(t, parseBool(" true\n"))
	assert.False(t, parseBool("True"))
	assert.False(t, parseBool("TRUE"))
	assert.False(t, parseBool("1"))
	assert.False(t, parseBool(""))
}

func TestParseInt(t *testing.T) {
	cases := map[string]int{
		"2":      2,
		" 17 ":   17,
		"-3":     -3,
		"+4":     4,
		"12abc":  12,
		"abc":    0,
		"":       0,
		"1.9":    1,
		"999999999999999999999999": 0,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseInt(in), in)
	}
}

func TestParseFloat(t *testing.T) {
	cases := map[string]float64{
		"5.0":    5,
		"3":      3,
		" 0.25 ": 0.25,
		".5":     0.5,
		"-1.5":   -1.5,
		"1e2":    100,
		"2.5s":   2.5,
		"1,5":    1,
		"x":      0,
		"":       0,
	}
	for in, want := range cases {
		assert.InDelta(t, want, parseFloat(in), 1e-9, in)
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "5", formatFloat(5))
	assert.Equal(t, "0.25", formatFloat(0.25))
	assert.InDelta(t, 3.1, parseFloat(formatFloat(3.1)), 0)
}
