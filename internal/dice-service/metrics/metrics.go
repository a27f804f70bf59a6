package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RoundsSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dice_rounds_settled_total",
		Help: "Rodadas liquidadas (com ou sem prêmio).",
	})

	RoundsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dice_rounds_rejected_total",
		Help: "Rodadas rejeitadas pelo validador, por motivo.",
	}, []string{"reason"})

	PayoutFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dice_payout_failures_total",
		Help: "Rodadas abortadas por falha na transferência do prêmio.",
	})
)
