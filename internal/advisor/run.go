package advisor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/etfadvisor/internal/ports"
)

// Run recoge titulares, evalúa y notifica el resultado.
// Un fallo de datos se notifica como un único mensaje y se devuelve el error.
func (a *Advisor) Run(ctx context.Context, source ports.HeadlineSource, notifier ports.Notifier) error {
	var headlines []string
	if source != nil {
		h, err := source.FetchHeadlines(ctx)
		if err != nil {
			// Los titulares obtenidos antes del fallo se conservan.
			slog.Warn("headline source failed", "err", err, "headlines", len(h))
		}
		headlines = h
	}

	report, err := a.Evaluate(ctx, headlines)
	if err != nil {
		if nerr := notifier.NotifyFailure(ctx, err); nerr != nil {
			slog.Warn("notifier error", "err", nerr)
		}
		return err
	}

	if err := notifier.Notify(ctx, report); err != nil {
		return fmt.Errorf("advisor.Run: notify: %w", err)
	}
	return nil
}
