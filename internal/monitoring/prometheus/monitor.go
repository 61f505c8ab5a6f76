// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/dns-tenant-bot/internal/logging"
	"github.com/canonical/dns-tenant-bot/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTimeMetric        *prometheus.HistogramVec
	dependencyAvailableMetric *prometheus.GaugeVec
	cacheRefreshMetric        *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, time float64) error {
	metric, err := m.responseTimeMetric.GetMetricWith(tags)
	if err != nil {
		return err
	}

	metric.Observe(time)
	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, available float64) error {
	metric, err := m.dependencyAvailableMetric.GetMetricWith(tags)
	if err != nil {
		return err
	}

	metric.Set(available)
	return nil
}

func (m *Monitor) IncCacheRefresh(tags map[string]string) error {
	metric, err := m.cacheRefreshMetric.GetMetricWith(tags)
	if err != nil {
		return err
	}

	metric.Inc()
	return nil
}

func (m *Monitor) registerMetrics() {
	m.responseTimeMetric = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "Duration of HTTP requests.",
		},
		[]string{"route", "status"},
	)

	m.dependencyAvailableMetric = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "Availability of upstream dependencies, 1 up 0 down.",
		},
		[]string{"component"},
	)

	m.cacheRefreshMetric = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tenant_cache_refresh_total",
			Help: "Tenant cache refresh operations by outcome.",
		},
		[]string{"outcome"},
	)

	prometheus.MustRegister(m.responseTimeMetric, m.dependencyAvailableMetric, m.cacheRefreshMetric)
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerMetrics()

	return m
}
