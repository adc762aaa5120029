package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PoolSnapshot is the subset of connection pool counters exported as gauges
type PoolSnapshot struct {
	AcquiredConns int32
	IdleConns     int32
	TotalConns    int32
	MaxConns      int32
	AcquireCount  int64
}

// PoolStatsFunc reads the current pool counters. ok=false skips the scrape.
type PoolStatsFunc func() (snapshot PoolSnapshot, ok bool)

// PoolCollector exposes connection pool statistics at scrape time
type PoolCollector struct {
	stats PoolStatsFunc

	acquired *prometheus.Desc
	idle     *prometheus.Desc
	total    *prometheus.Desc
	max      *prometheus.Desc
	acquires *prometheus.Desc
}

func NewPoolCollector(stats PoolStatsFunc) *PoolCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "db_pool", name), help, nil, nil)
	}

	return &PoolCollector{
		stats:    stats,
		acquired: desc("acquired_connections", "Connections currently checked out of the pool."),
		idle:     desc("idle_connections", "Idle connections held by the pool."),
		total:    desc("total_connections", "Connections currently open."),
		max:      desc("max_connections", "Configured maximum pool size."),
		acquires: desc("acquires_total", "Cumulative successful connection acquires."),
	}
}

func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.acquired
	ch <- c.idle
	ch <- c.total
	ch <- c.max
	ch <- c.acquires
}

func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	s, ok := c.stats()
	if !ok {
		return
	}

	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(s.AcquiredConns))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(s.IdleConns))
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(s.TotalConns))
	ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(s.MaxConns))
	ch <- prometheus.MustNewConstMetric(c.acquires, prometheus.CounterValue, float64(s.AcquireCount))
}

// RegisterPool adds a pool collector to Registry.
// Registering twice returns prometheus.AlreadyRegisteredError.
func RegisterPool(stats PoolStatsFunc) error {
	return Registry.Register(NewPoolCollector(stats))
}
