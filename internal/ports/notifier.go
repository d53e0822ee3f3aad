package ports

import (
	"context"

	"github.com/alejandrodnm/etfadvisor/internal/domain"
)

// Notifier presenta el resultado de una evaluación al usuario.
type Notifier interface {
	// Notify muestra las decisiones de cada par, eventos y temas detectados.
	Notify(ctx context.Context, report domain.Report) error

	// NotifyFailure muestra un único mensaje de "datos no disponibles".
	NotifyFailure(ctx context.Context, err error) error
}
