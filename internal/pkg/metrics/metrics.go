package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ScheduleConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hospital_schedule_conflicts_total",
			Help: "Scheduling requests rejected because of an overlapping booking",
		},
	)

	EmergencyPreemptions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hospital_emergency_preemptions_total",
			Help: "Operation theatres switched into emergency mode",
		},
	)

	DiscardedEntries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hospital_schedule_entries_discarded_total",
			Help: "Schedule entries dropped by emergency preemption",
		},
	)

	TicketsIssued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hospital_tickets_issued_total",
			Help: "Queue tickets issued per department",
		},
		[]string{"department"},
	)

	OutboxPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hospital_outbox_published_total",
			Help: "Outbox events handed to the broker, by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ScheduleConflicts,
		EmergencyPreemptions,
		DiscardedEntries,
		TicketsIssued,
		OutboxPublished,
	)
}
