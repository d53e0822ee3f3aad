package advisor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alejandrodnm/etfadvisor/internal/advisor"
	"github.com/alejandrodnm/etfadvisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMarket implementa ports.MarketDataProvider con lecturas fijas.
type fakeMarket struct {
	index, premiums, futures          domain.Readings
	indexErr, premiumsErr, futuresErr error
	calls                             []string
}

func (f *fakeMarket) IndexChanges(context.Context, []string) (domain.Readings, error) {
	f.calls = append(f.calls, "index")
	return f.index, f.indexErr
}

func (f *fakeMarket) ETFPremiums(context.Context, []domain.Pair) (domain.Readings, error) {
	f.calls = append(f.calls, "premiums")
	return f.premiums, f.premiumsErr
}

func (f *fakeMarket) FuturesChanges(context.Context, []string) (domain.Readings, error) {
	f.calls = append(f.calls, "futures")
	return f.futures, f.futuresErr
}

func qualifyingMarket() *fakeMarket {
	return &fakeMarket{
		index:    domain.Readings{"^GSPC": -0.5, "^IXIC": -0.5},
		premiums: domain.Readings{"513500": 1.0, "159834": 1.0},
		futures:  domain.Readings{"ES=F": -1.0, "NQ=F": -1.0},
	}
}

func TestEvaluate_ExecuteBothPairs(t *testing.T) {
	m := qualifyingMarket()
	a := advisor.New(advisor.DefaultConfig(), m)

	report, err := a.Evaluate(context.Background(), nil)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, []string{"index", "premiums", "futures"}, m.calls)
	for i, d := range report.Decisions {
		assert.Equal(t, domain.Pairs()[i].ID, d.Pair.ID)
		assert.Equal(t, domain.OutcomeExecute, d.Outcome)
	}
}

func TestEvaluate_DeferOnRateHikeHeadline(t *testing.T) {
	a := advisor.New(advisor.DefaultConfig(), qualifyingMarket())

	report, err := a.Evaluate(context.Background(), []string{"美联储宣布加息"})
	require.NoError(t, err)

	for _, d := range report.Decisions {
		assert.Equal(t, domain.OutcomeDefer, d.Outcome)
		require.NotNil(t, d.Event)
		assert.Equal(t, "美联储", d.Event.Keyword)
	}
	assert.Len(t, report.Events, 2)
}

func TestEvaluate_AnyBatchFailureReturnsNoDecisions(t *testing.T) {
	boom := errors.New("connection reset")
	cases := map[string]func(*fakeMarket){
		"index":    func(m *fakeMarket) { m.indexErr = boom },
		"premiums": func(m *fakeMarket) { m.premiumsErr = boom },
		"futures":  func(m *fakeMarket) { m.futuresErr = boom },
	}
	for name, breakIt := range cases {
		t.Run(name, func(t *testing.T) {
			m := qualifyingMarket()
			breakIt(m)
			a := advisor.New(advisor.DefaultConfig(), m)

			report, err := a.Evaluate(context.Background(), nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrDataUnavailable)
			assert.ErrorIs(t, err, boom)
			assert.Equal(t, domain.Report{}, report)
		})
	}
}

func TestEvaluate_FailureStopsFurtherFetches(t *testing.T) {
	m := qualifyingMarket()
	m.indexErr = errors.New("timeout")
	a := advisor.New(advisor.DefaultConfig(), m)

	_, err := a.Evaluate(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, []string{"index"}, m.calls)
}

func TestEvaluate_MissingIndexReadingIsDataUnavailable(t *testing.T) {
	m := qualifyingMarket()
	delete(m.index, "^IXIC")
	a := advisor.New(advisor.DefaultConfig(), m)

	report, err := a.Evaluate(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.Equal(t, domain.Report{}, report)
}

func TestEvaluate_MissingPremiumDefaultsToZero(t *testing.T) {
	m := qualifyingMarket()
	m.premiums = domain.Readings{}
	a := advisor.New(advisor.DefaultConfig(), m)

	report, err := a.Evaluate(context.Background(), nil)
	require.NoError(t, err)
	for _, d := range report.Decisions {
		assert.Equal(t, 0.0, d.ETFPremiumPct)
		assert.Equal(t, domain.OutcomeExecute, d.Outcome)
	}
}

func TestEvaluate_MissingFuturesAbstains(t *testing.T) {
	m := qualifyingMarket()
	delete(m.futures, "NQ=F")
	a := advisor.New(advisor.DefaultConfig(), m)

	report, err := a.Evaluate(context.Background(), nil)
	require.NoError(t, err)

	spx, ok := report.Decision(domain.PairSPX)
	require.True(t, ok)
	assert.Equal(t, domain.OutcomeExecute, spx.Outcome)

	ixic, ok := report.Decision(domain.PairIXIC)
	require.True(t, ok)
	assert.Equal(t, domain.OutcomeAbstain, ixic.Outcome)
	assert.Equal(t, domain.ReasonFuturesShallow, ixic.Reason)
	assert.False(t, ixic.HasFutures)
}

func TestEvaluate_PairsUseTheirOwnFutures(t *testing.T) {
	m := qualifyingMarket()
	m.futures = domain.Readings{"ES=F": 0.3, "NQ=F": -1.0}
	a := advisor.New(advisor.DefaultConfig(), m)

	report, err := a.Evaluate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonFuturesRising, report.Decisions[0].Reason)
	assert.Equal(t, domain.OutcomeExecute, report.Decisions[1].Outcome)
}

func TestEvaluate_SameInputsSameDecisions(t *testing.T) {
	a := advisor.New(advisor.DefaultConfig(), qualifyingMarket())
	headlines := []string{"科技股走强"}

	r1, err := a.Evaluate(context.Background(), headlines)
	require.NoError(t, err)
	r2, err := a.Evaluate(context.Background(), headlines)
	require.NoError(t, err)

	assert.Equal(t, r1.Decisions, r2.Decisions)
	assert.NotEqual(t, r1.RunID, r2.RunID)
}

func TestEvaluate_ThemesAttached(t *testing.T) {
	a := advisor.New(advisor.DefaultConfig(), qualifyingMarket())

	report, err := a.Evaluate(context.Background(), []string{"AI芯片需求爆发", "半导体大涨"})
	require.NoError(t, err)
	require.NotEmpty(t, report.Themes)
	assert.Equal(t, "科技", report.Themes[0].Theme.Name)
}

func TestEvaluate_NoThemeMatchFallsBack(t *testing.T) {
	a := advisor.New(advisor.DefaultConfig(), qualifyingMarket())

	report, err := a.Evaluate(context.Background(), []string{"天气晴朗"})
	require.NoError(t, err)
	require.Len(t, report.Themes, 1)
	assert.True(t, report.Themes[0].Fallback)

	report, err = a.Evaluate(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, report.Themes)
}

func TestEvaluate_DomesticSuggestionsFollowTrend(t *testing.T) {
	m := qualifyingMarket()
	a := advisor.New(advisor.DefaultConfig(), m)

	report, err := a.Evaluate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.TrendDown, report.Trend)
	assert.Equal(t, domain.DomesticSuggestions(domain.TrendDown), report.Domestic)

	m.index = domain.Readings{"^GSPC": 0.4, "^IXIC": 0.2}
	report, err = a.Evaluate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.TrendUp, report.Trend)
	assert.Equal(t, domain.DomesticSuggestions(domain.TrendUp), report.Domestic)
}
