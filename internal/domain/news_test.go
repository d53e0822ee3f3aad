package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasMajorEvent_SubstringAnywhere(t *testing.T) {
	f := NewNewsFilter(DefaultEventKeywords())
	assert.True(t, f.HasMajorEvent([]string{"美联储宣布加息"}))
	assert.True(t, f.HasMajorEvent([]string{"今晚公布美国CPI数据"}))
	assert.True(t, f.HasMajorEvent([]string{"科技股走强", "苹果发布财报"}))
}

func TestHasMajorEvent_NoMatch(t *testing.T) {
	f := NewNewsFilter(DefaultEventKeywords())
	assert.False(t, f.HasMajorEvent([]string{"科技股普涨", "苹果发布新手机"}))
}

func TestHasMajorEvent_EmptyList(t *testing.T) {
	f := NewNewsFilter(DefaultEventKeywords())
	assert.False(t, f.HasMajorEvent(nil))
	assert.False(t, f.HasMajorEvent([]string{}))
}

func TestHasMajorEvent_CaseSensitive(t *testing.T) {
	f := NewNewsFilter([]string{"CPI"})
	assert.False(t, f.HasMajorEvent([]string{"cpi data tonight"}))
	assert.True(t, f.HasMajorEvent([]string{"US CPI beats"}))
}

func TestNewsFilter_EmptyKeywordIgnored(t *testing.T) {
	f := NewNewsFilter([]string{"", "GDP"})
	assert.Equal(t, []string{"GDP"}, f.Keywords())
	assert.False(t, f.HasMajorEvent([]string{"anything"}))
}

func TestFirstMatch_OrderIsHeadlineThenKeyword(t *testing.T) {
	f := NewNewsFilter([]string{"加息", "美联储"})
	m, ok := f.FirstMatch([]string{"无关新闻", "美联储宣布加息"})
	require.True(t, ok)
	assert.Equal(t, "加息", m.Keyword)
	assert.Equal(t, "美联储宣布加息", m.Headline)
}

func TestMatches_ListsEveryHit(t *testing.T) {
	f := NewNewsFilter(DefaultEventKeywords())
	got := f.Matches([]string{"美联储宣布加息", "天气晴朗"})
	require.Len(t, got, 2)
	assert.Equal(t, "美联储", got[0].Keyword)
	assert.Equal(t, "加息", got[1].Keyword)
}

func TestKeywords_ReturnsCopy(t *testing.T) {
	f := NewNewsFilter([]string{"GDP"})
	kw := f.Keywords()
	kw[0] = "changed"
	assert.Equal(t, []string{"GDP"}, f.Keywords())
}
