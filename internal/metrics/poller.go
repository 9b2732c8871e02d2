package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stakepulse",
		Subsystem: "poller",
		Name:      "fetch_total",
		Help:      "Count of chain state fetch attempts.",
	}, []string{"network", "wallet", "status"})

	pollFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stakepulse",
		Subsystem: "poller",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of chain state fetches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "wallet", "status"})

	pollCycleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stakepulse",
		Subsystem: "poller",
		Name:      "cycle_total",
		Help:      "Count of completed poll cycles, including degraded ones.",
	}, []string{"network", "wallet", "degraded"})

	rewardSessionTotal = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "stakepulse",
		Subsystem: "rewards",
		Name:      "session_total",
		Help:      "Session-cumulative rewards in display units.",
	}, []string{"network", "wallet"})

	rewardRatePerMinute = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "stakepulse",
		Subsystem: "rewards",
		Name:      "rate_per_minute",
		Help:      "Trailing-window reward rate in display units per minute.",
	}, []string{"network", "wallet"})
)

// Poller tracks metrics for the dashboard poll loop.
type Poller struct {
	network string
	wallet  string
}

// NewPoller constructs a Poller metrics recorder with defaults.
func NewPoller(network, wallet string) *Poller {
	if network == "" {
		network = "unknown"
	}
	if wallet == "" {
		wallet = "unknown"
	}
	return &Poller{network: network, wallet: wallet}
}

// ObserveFetch records a chain fetch outcome and duration.
func (m Poller) ObserveFetch(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	pollFetchTotal.WithLabelValues(m.network, m.wallet, status).Inc()
	pollFetchDuration.WithLabelValues(m.network, m.wallet, status).
		Observe(time.Since(started).Seconds())
}

// ObserveCycle records a completed poll cycle.
func (m Poller) ObserveCycle(degraded bool) {
	flag := "false"
	if degraded {
		flag = "true"
	}
	pollCycleTotal.WithLabelValues(m.network, m.wallet, flag).Inc()
}

// SetRewardGauges publishes the latest accumulator view.
func (m Poller) SetRewardGauges(sessionTotal, perMinute float64) {
	rewardSessionTotal.WithLabelValues(m.network, m.wallet).Set(sessionTotal)
	rewardRatePerMinute.WithLabelValues(m.network, m.wallet).Set(perMinute)
}
