package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the application's Prometheus instruments.
// A nil *Collector is valid and records nothing.
type Collector struct {
	ticketsCreated  *prometheus.CounterVec
	ticketsResolved prometheus.Counter

	reportJobsStarted   prometheus.Counter
	reportJobsInFlight  prometheus.Gauge
	reportJobDuration   prometheus.Histogram
	reportTasksFinished *prometheus.CounterVec
	reportTasksFailed   *prometheus.CounterVec
	reportTaskLatency   *prometheus.HistogramVec
}

// NewCollector creates the instruments and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		ticketsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ops_tickets_created_total",
			Help: "Total number of tickets created, by ticket type",
		}, []string{"type"}),
		ticketsResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ops_tickets_bulk_resolved_total",
			Help: "Total number of tickets resolved as a side effect of a strike off",
		}),
		reportJobsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ops_report_jobs_started_total",
			Help: "Total number of report jobs started",
		}),
		reportJobsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ops_report_jobs_in_flight",
			Help: "Current number of report jobs with at least one non-terminal task",
		}),
		reportJobDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ops_report_job_duration_seconds",
			Help:    "Wall time from job creation until all tasks are terminal",
			Buckets: prometheus.DefBuckets,
		}),
		reportTasksFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ops_report_tasks_finished_total",
			Help: "Total number of report tasks finished successfully, by task",
		}, []string{"task"}),
		reportTasksFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ops_report_tasks_failed_total",
			Help: "Total number of report tasks that failed, by task",
		}, []string{"task"}),
		reportTaskLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ops_report_task_duration_seconds",
			Help:    "Report task processing time in seconds, by task",
			Buckets: prometheus.DefBuckets,
		}, []string{"task"}),
	}

	reg.MustRegister(
		c.ticketsCreated,
		c.ticketsResolved,
		c.reportJobsStarted,
		c.reportJobsInFlight,
		c.reportJobDuration,
		c.reportTasksFinished,
		c.reportTasksFailed,
		c.reportTaskLatency,
	)

	return c
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler exposes the registry in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

func (c *Collector) RecordTicketCreated(ticketType string) {
	if c == nil {
		return
	}
	c.ticketsCreated.WithLabelValues(ticketType).Inc()
}

func (c *Collector) RecordTicketsResolved(n int64) {
	if c == nil || n <= 0 {
		return
	}
	c.ticketsResolved.Add(float64(n))
}

func (c *Collector) RecordJobStarted() {
	if c == nil {
		return
	}
	c.reportJobsStarted.Inc()
	c.reportJobsInFlight.Inc()
}

func (c *Collector) RecordJobCompleted(seconds float64) {
	if c == nil {
		return
	}
	c.reportJobsInFlight.Dec()
	c.reportJobDuration.Observe(seconds)
}

func (c *Collector) RecordTaskFinished(task string, seconds float64) {
	if c == nil {
		return
	}
	c.reportTasksFinished.WithLabelValues(task).Inc()
	c.reportTaskLatency.WithLabelValues(task).Observe(seconds)
}

func (c *Collector) RecordTaskFailed(task string) {
	if c == nil {
		return
	}
	c.reportTasksFailed.WithLabelValues(task).Inc()
}
