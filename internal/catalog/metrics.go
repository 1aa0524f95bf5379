package catalog

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"TTGear/internal/equipment"
)

const (
	kindRubbers = "rubbers"
	kindBlades  = "blades"
	kindRubber  = "rubber"
	kindBlade   = "blade"
	kindStats   = "stats"

	outcomeOK          = "ok"
	outcomeNotFound    = "not_found"
	outcomeUnavailable = "unavailable"
	outcomeCanceled    = "canceled"
	outcomeError       = "error"
)

// LookupMetrics counts repository outcomes per query kind. A nil
// *LookupMetrics records nothing.
type LookupMetrics struct {
	lookups *prometheus.CounterVec
}

func NewLookupMetrics(reg prometheus.Registerer) *LookupMetrics {
	return &LookupMetrics{
		lookups: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_lookups_total",
				Help: "Equipment repository calls by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
	}
}

func (m *LookupMetrics) observe(kind string, err error) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(kind, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, equipment.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, equipment.ErrDataUnavailable):
		return outcomeUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeCanceled
	default:
		return outcomeError
	}
}
