package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alejandrodnm/etfadvisor/internal/domain"
	"github.com/olekukonko/tablewriter"
)

const (
	maxEventsShown         = 5
	maxThemeHeadlinesShown = 3
)

// Console implementa ports.Notifier.
type Console struct {
	out   io.Writer
	table bool
}

// NewConsole crea un notificador que escribe a stdout.
func NewConsole(table bool) *Console {
	return &Console{out: os.Stdout, table: table}
}

// NewConsoleWriter crea un notificador sobre el writer dado (tests).
func NewConsoleWriter(w io.Writer, table bool) *Console {
	return &Console{out: w, table: table}
}

// Notify imprime las decisiones, los eventos detectados y los temas sectoriales.
func (c *Console) Notify(_ context.Context, report domain.Report) error {
	fmt.Fprintf(c.out, "\n=== ETF加仓策略分析 [%s] ===\n",
		report.GeneratedAt.Local().Format("2006-01-02 15:04:05"))

	if c.table {
		c.printTable(report)
	} else {
		c.printCompact(report)
	}

	c.printEvents(report.Events)
	c.printDomestic(report.Trend, report.Domestic)
	c.printThemes(report.Themes)
	return nil
}

// NotifyFailure imprime un único mensaje de datos no disponibles.
func (c *Console) NotifyFailure(_ context.Context, err error) error {
	fmt.Fprintf(c.out, "❌ 数据获取失败: 行情数据不可用，本次不给出建议\n💡 %v\n", err)
	return nil
}

// printCompact imprime headline + detail por par.
func (c *Console) printCompact(report domain.Report) {
	for _, d := range report.Decisions {
		fmt.Fprintf(c.out, "\n%s\n  %s\n", d.Headline(), d.Detail())
	}
}

// printTable imprime una fila por par con las tres lecturas.
func (c *Console) printTable(report domain.Report) {
	table := tablewriter.NewWriter(c.out)
	table.Header("指数", "建议", "原因", "美股", "ETF溢价", "期货")
	for _, d := range report.Decisions {
		futures := "--"
		if d.HasFutures {
			futures = fmt.Sprintf("%+.2f%%", d.FuturesChangePct)
		}
		table.Append(
			d.Pair.DisplayName,
			d.Outcome.Icon()+" "+d.Outcome.Label(),
			d.Reason.Text(),
			fmt.Sprintf("%+.2f%%", d.IndexChangePct),
			fmt.Sprintf("%.1f%%", d.ETFPremiumPct),
			futures,
		)
	}
	table.Render()
}

func (c *Console) printEvents(events []domain.EventMatch) {
	if len(events) == 0 {
		fmt.Fprintln(c.out, "\n✅ 未发现重大事件")
		return
	}
	fmt.Fprintf(c.out, "\n⚠️ 发现%d个重大事件关键词\n", len(events))
	for i, ev := range events {
		if i >= maxEventsShown {
			fmt.Fprintf(c.out, "  ... 另有%d条\n", len(events)-maxEventsShown)
			break
		}
		fmt.Fprintf(c.out, "  • '%s' in '%s'\n", ev.Keyword, ev.Headline)
	}
}

func (c *Console) printDomestic(trend domain.Trend, suggestions []domain.DomesticSuggestion) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintf(c.out, "\n🇨🇳 国内ETF建议 (美股%s)\n", trend.Label())
	for _, s := range suggestions {
		fmt.Fprintf(c.out, "  [%s]\n", s.Channel)
		for _, line := range s.Advice {
			fmt.Fprintf(c.out, "     %s\n", line)
		}
	}
}

func (c *Console) printThemes(themes []domain.ThemeSignal) {
	if len(themes) == 0 {
		return
	}
	fmt.Fprintln(c.out, "\n🎯 主题投资机会")
	for i, th := range themes {
		etfs := make([]string, len(th.Theme.ETFs))
		for j, e := range th.Theme.ETFs {
			etfs[j] = fmt.Sprintf("%s(%s)", e.Code, e.Name)
		}
		if th.Fallback {
			fmt.Fprintf(c.out, "  📊 %s\n", th.Theme.Performance)
			fmt.Fprintf(c.out, "     推荐ETF: %s | 操作策略: %s\n", strings.Join(etfs, ", "), th.Strategy())
			continue
		}
		fmt.Fprintf(c.out, "  %d. %s主题 (热度: %d) %s - %s\n",
			i+1, th.Theme.Name, th.Score, th.Heat.Label(), th.Theme.Performance)
		fmt.Fprintf(c.out, "     推荐ETF: %s | 操作策略: %s\n", strings.Join(etfs, ", "), th.Strategy())
		for j, h := range th.Headlines {
			if j >= maxThemeHeadlinesShown {
				break
			}
			fmt.Fprintf(c.out, "     • %s\n", h)
		}
	}
}
