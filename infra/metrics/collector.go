package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"redblack/rbtree"
)

// Source is the read side of a tree. *rbtree.Tree[T] satisfies it for
// every T.
type Source interface {
	Len() int
	Height() int
	Stats() rbtree.Stats
}

// Collector reads a Source on every scrape. Trees are single-writer,
// so when the tree is mutated from another goroutine pass the lock
// that guards it; mu may be nil otherwise.
type Collector struct {
	src Source
	mu  sync.Locker

	nodes     *prometheus.Desc
	height    *prometheus.Desc
	inserts   *prometheus.Desc
	rotations *prometheus.Desc
	cases     *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

func NewCollector(name string, src Source, mu sync.Locker) *Collector {
	labels := prometheus.Labels{"tree": name}
	return &Collector{
		src: src,
		mu:  mu,
		nodes: prometheus.NewDesc("rbtree_nodes",
			"Number of values stored in the tree.", nil, labels),
		height: prometheus.NewDesc("rbtree_height",
			"Nodes on the longest root-to-leaf path.", nil, labels),
		inserts: prometheus.NewDesc("rbtree_inserts_total",
			"Values inserted since the tree was built.", nil, labels),
		rotations: prometheus.NewDesc("rbtree_rotations_total",
			"Rotations performed while rebalancing.", []string{"direction"}, labels),
		cases: prometheus.NewDesc("rbtree_fixup_cases_total",
			"Insert fixup cases resolved, by case.", []string{"case"}, labels),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.nodes
	ch <- c.height
	ch <- c.inserts
	ch <- c.rotations
	ch <- c.cases
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.mu != nil {
		c.mu.Lock()
	}
	size, height, stats := c.src.Len(), c.src.Height(), c.src.Stats()
	if c.mu != nil {
		c.mu.Unlock()
	}

	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(size))
	ch <- prometheus.MustNewConstMetric(c.height, prometheus.GaugeValue, float64(height))
	ch <- prometheus.MustNewConstMetric(c.inserts, prometheus.CounterValue, float64(stats.Inserts))
	ch <- prometheus.MustNewConstMetric(c.rotations, prometheus.CounterValue, float64(stats.LeftRotations), "left")
	ch <- prometheus.MustNewConstMetric(c.rotations, prometheus.CounterValue, float64(stats.RightRotations), "right")
	for i, n := range stats.Cases {
		ch <- prometheus.MustNewConstMetric(c.cases, prometheus.CounterValue, float64(n), rbtree.Case(i).String())
	}
}
