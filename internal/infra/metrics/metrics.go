// Package metrics provides Prometheus metric collection for the login and
// wallet-linking flows.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"homestay/internal/domain/service"
)

// Collector implements service.MetricsRecorder backed by a Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	signIn        *prometheus.CounterVec
	signInFailure *prometheus.CounterVec
	walletLink    prometheus.Counter
	walletUnlink  prometheus.Counter
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		signIn: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "homestay_sign_in_total",
			Help: "Successful sign-ins by method.",
		}, []string{"method"}),
		signInFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "homestay_sign_in_failure_total",
			Help: "Failed sign-ins by reason.",
		}, []string{"reason"}),
		walletLink: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "homestay_wallet_link_total",
			Help: "Payment accounts linked.",
		}),
		walletUnlink: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "homestay_wallet_unlink_total",
			Help: "Payment accounts unlinked.",
		}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.signIn,
		c.signInFailure,
		c.walletLink,
		c.walletUnlink,
	)

	return c
}

// NewRecorder exposes the collector as the domain recorder interface.
func NewRecorder(c *Collector) service.MetricsRecorder {
	return c
}

// RecordSignIn counts a successful sign-in by method.
func (c *Collector) RecordSignIn(method string) {
	c.signIn.WithLabelValues(method).Inc()
}

// RecordSignInFailure counts a failed sign-in by reason.
func (c *Collector) RecordSignInFailure(reason string) {
	c.signInFailure.WithLabelValues(reason).Inc()
}

// RecordWalletLink counts a linked payment account.
func (c *Collector) RecordWalletLink() {
	c.walletLink.Inc()
}

// RecordWalletUnlink counts an unlinked payment account.
func (c *Collector) RecordWalletUnlink() {
	c.walletUnlink.Inc()
}

// Handler returns the scrape handler for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
