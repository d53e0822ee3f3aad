package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendFrom(t *testing.T) {
	assert.Equal(t, TrendDown, TrendFrom(0.3, -0.1))
	assert.Equal(t, TrendUp, TrendFrom(0.3, 0))
	assert.Equal(t, TrendUp, TrendFrom())
}

func TestDomesticSuggestions_Down(t *testing.T) {
	got := DomesticSuggestions(TrendDown)
	require.Len(t, got, 3)
	assert.Equal(t, "场内美股ETF", got[0].Channel)
	assert.Contains(t, got[0].Advice[0], "513500")
	assert.Contains(t, got[1].Advice[0], "159919")
	assert.Contains(t, got[1].Advice[0], "159922")
	assert.Equal(t, "场外基金", got[2].Channel)
	assert.Contains(t, got[2].Advice[0], "QDII")
}

func TestDomesticSuggestions_Up(t *testing.T) {
	got := DomesticSuggestions(TrendUp)
	require.Len(t, got, 3)
	assert.Contains(t, got[0].Advice[0], "建议等回调")
	assert.Contains(t, got[1].Advice[0], "159919")
	assert.Contains(t, got[2].Advice[0], "继续定投")
}
