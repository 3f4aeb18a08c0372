package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for a processing run.
type Metrics struct {
	RecordsProcessed *prometheus.CounterVec
	RecordsDiscarded *prometheus.CounterVec
	AccountsCreated  prometheus.Counter
	AccountsFrozen   prometheus.Counter
}

// New creates and registers all metrics on reg. Each run builds its own
// registry so repeated runs inside one process never collide.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RecordsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payengine_records_processed_total",
				Help: "Total number of records applied to the ledger",
			},
			[]string{"kind"},
		),
		RecordsDiscarded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payengine_records_discarded_total",
				Help: "Total number of records discarded, by rejection reason",
			},
			[]string{"kind", "reason"},
		),
		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "payengine_accounts_created_total",
			Help: "Total number of client accounts created",
		}),
		AccountsFrozen: factory.NewCounter(prometheus.CounterOpts{
			Name: "payengine_accounts_frozen_total",
			Help: "Total number of accounts frozen by a chargeback",
		}),
	}
}
