/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/status-list-svc/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create starts the metrics HTTP server, if one was provided.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	go func() {
		if err := pp.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics HTTP server closed", log.WithError(err))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the status list service.
type PromMetrics struct {
	signTime               prometheus.Histogram
	allocateEntryTime      prometheus.Histogram
	publishStatusListsTime prometheus.Histogram
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		signTime:               newSignTime(),
		allocateEntryTime:      newAllocateEntryTime(),
		publishStatusListsTime: newPublishStatusListsTime(),
	}

	registerMetrics(pm)

	return pm
}

// SignTime records the time for sign.
func (pm *PromMetrics) SignTime(value time.Duration) {
	pm.signTime.Observe(value.Seconds())

	logger.Debug("crypto sign time", log.WithDuration(value))
}

// AllocateEntryTime records the time for an entry allocation service call.
func (pm *PromMetrics) AllocateEntryTime(value time.Duration) {
	pm.allocateEntryTime.Observe(value.Seconds())

	logger.Debug("AllocateEntry service call time", log.WithDuration(value))
}

// PublishStatusListsTime records the time for a publication service call.
func (pm *PromMetrics) PublishStatusListsTime(value time.Duration) {
	pm.publishStatusListsTime.Observe(value.Seconds())

	logger.Debug("PublishStatusLists service call time", log.WithDuration(value))
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.signTime, pm.allocateEntryTime, pm.publishStatusListsTime,
	)
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newGauge(subsystem, name, help string, labels prometheus.Labels) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newSignTime() prometheus.Histogram {
	return newHistogram(
		metrics.Crypto, metrics.CryptoSignTimeMetric,
		"The time (in seconds) it takes to run crypto sign.",
		nil,
	)
}

func newAllocateEntryTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.AllocateEntryMetric,
		"The time (in seconds) it takes to execute an AllocateEntry service call.",
		nil,
	)
}

func newPublishStatusListsTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.PublishStatusListsMetric,
		"The time (in seconds) it takes to execute a PublishStatusLists service call.",
		nil,
	)
}
