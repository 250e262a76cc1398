// Package metrics Prometheus метрики сервиса
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты загрузки календаря
const (
	LoadResultSuccess = "success"
	LoadResultFailure = "failure"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	calendarLoads  *prometheus.CounterVec
	calendarDates  prometheus.Gauge
	calendarRooms  prometheus.Gauge
	lastLoadTime   prometheus.Gauge
	loadDuration   prometheus.Histogram
	availableRooms prometheus.Histogram
}

// New создает и регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		calendarLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_loads_total",
			Help:        "Total number of calendar loads by result",
			ConstLabels: constLabels,
		}, []string{"mode", "result"}),
		calendarDates: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "calendar_dates",
			Help:        "Number of dates in the current calendar snapshot",
			ConstLabels: constLabels,
		}),
		calendarRooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "calendar_rooms",
			Help:        "Number of rooms in the current calendar snapshot",
			ConstLabels: constLabels,
		}),
		lastLoadTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "calendar_last_load_timestamp_seconds",
			Help:        "Unix time of the last successful calendar load",
			ConstLabels: constLabels,
		}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "calendar_load_duration_seconds",
			Help:        "Calendar load duration including grid retrieval",
			ConstLabels: constLabels,
			Buckets:     []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		availableRooms: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "calendar_available_rooms",
			Help:        "Number of rooms returned by availability queries",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.calendarLoads,
		m.calendarDates,
		m.calendarRooms,
		m.lastLoadTime,
		m.loadDuration,
		m.availableRooms,
	)

	return m
}

// ObserveHTTPRequest учитывает HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveLoad учитывает попытку загрузки календаря
func (m *Metrics) ObserveLoad(mode, result string, duration time.Duration) {
	m.calendarLoads.WithLabelValues(mode, result).Inc()
	m.loadDuration.Observe(duration.Seconds())
}

// SetSnapshot обновляет размеры текущего календаря
func (m *Metrics) SetSnapshot(dates, rooms int, loadedAt time.Time) {
	m.calendarDates.Set(float64(dates))
	m.calendarRooms.Set(float64(rooms))
	m.lastLoadTime.Set(float64(loadedAt.Unix()))
}

// ObserveAvailableRooms учитывает размер ответа на запрос свободных номеров
func (m *Metrics) ObserveAvailableRooms(count int) {
	m.availableRooms.Observe(float64(count))
}
