// Package metric provides Prometheus metrics for tabsample.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/tabsample/pkg/shape"
	"github.com/yndnr/tabsample/pkg/table"
)

// ContainerCollector reports the size and shape of a live container at
// scrape time. Collect classifies the container, so it reads it; the
// container must be safe to read while the collector is registered.
type ContainerCollector struct {
	name       string
	container  table.Container
	classifier *shape.Classifier

	entries *prometheus.Desc
	length  *prometheus.Desc
	dense   *prometheus.Desc
}

// NewContainerCollector creates a collector for c, labelled with name.
// nil classifier means shape.Default().
func NewContainerCollector(name string, c table.Container, classifier *shape.Classifier) *ContainerCollector {
	if classifier == nil {
		classifier = shape.Default()
	}
	labels := prometheus.Labels{"container": name}
	return &ContainerCollector{
		name:       name,
		container:  c,
		classifier: classifier,
		entries: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "container", "entries"),
			"Number of present keys in the container.",
			nil, labels,
		),
		length: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "container", "length"),
			"Maximal run of present integer keys starting at 1.",
			nil, labels,
		),
		dense: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "container", "dense"),
			"1 if the container currently classifies as dense, 0 otherwise.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *ContainerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.length
	ch <- c.dense
}

// Collect implements prometheus.Collector.
func (c *ContainerCollector) Collect(ch chan<- prometheus.Metric) {
	dense := 0.0
	if c.classifier.Classify(c.container).IsDense() {
		dense = 1
	}

	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(table.Count(c.container)))
	ch <- prometheus.MustNewConstMetric(c.length, prometheus.GaugeValue, float64(c.container.Len()))
	ch <- prometheus.MustNewConstMetric(c.dense, prometheus.GaugeValue, dense)
}

var _ prometheus.Collector = (*ContainerCollector)(nil)
