package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundDecimal(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int
		want     float64
	}{
		{66.666, 1, 66.7},
		{33.333, 1, 33.3},
		{100, 1, 100},
		{0.05, 1, 0.1},
		{-2.25, 1, -2.3},
		{3.14159, 2, 3.14},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundDecimal(tt.value, tt.decimals), 1e-9)
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a, ,b ,", ","))
	assert.Nil(t, SplitList("", ","))
	assert.Nil(t, SplitList(" , ", ","))
}
