package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the audit dashboard backend.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// AuditRecordsCreated counts inserted records by source: "form" or "intake".
	AuditRecordsCreated *prometheus.CounterVec
	AuditRecordsUpdated prometheus.Counter
	AuditRecordsDeleted prometheus.Counter
	// EntitiesUpserted counts clients and users created implicitly, by kind.
	EntitiesUpserted *prometheus.CounterVec

	// ExtractionOutcomes counts extraction calls by outcome: "success" or "failure".
	ExtractionOutcomes *prometheus.CounterVec
	ExtractionDuration prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "audit_dashboard_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "audit_dashboard_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		AuditRecordsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "audit_dashboard_audit_records_created_total",
			Help: "Audit records inserted into the store by source",
		}, []string{"source"}),
		AuditRecordsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "audit_dashboard_audit_records_updated_total",
			Help: "Audit records updated in place through the edit form",
		}),
		AuditRecordsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "audit_dashboard_audit_records_deleted_total",
			Help: "Audit record delete requests",
		}),
		EntitiesUpserted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "audit_dashboard_entities_upserted_total",
			Help: "Clients and users created implicitly during record creation",
		}, []string{"kind"}),
		ExtractionOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "audit_dashboard_extraction_requests_total",
			Help: "Document extraction requests by outcome",
		}, []string{"outcome"}),
		ExtractionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "audit_dashboard_extraction_duration_seconds",
			Help:    "Duration of document extraction requests",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// IncAuditRecordsCreated adds n records created from source.
func (m *Metrics) IncAuditRecordsCreated(source string, n int) {
	if m != nil {
		m.AuditRecordsCreated.WithLabelValues(source).Add(float64(n))
	}
}

// IncAuditRecordsUpdated increments the in-place update counter.
func (m *Metrics) IncAuditRecordsUpdated() {
	if m != nil {
		m.AuditRecordsUpdated.Inc()
	}
}

// IncAuditRecordsDeleted increments the delete counter.
func (m *Metrics) IncAuditRecordsDeleted() {
	if m != nil {
		m.AuditRecordsDeleted.Inc()
	}
}

// IncEntityUpserted increments the implicit creation counter for kind ("client" or "user").
func (m *Metrics) IncEntityUpserted(kind string) {
	if m != nil {
		m.EntitiesUpserted.WithLabelValues(kind).Inc()
	}
}

// ObserveExtraction records the outcome and duration of one extraction call.
func (m *Metrics) ObserveExtraction(success bool, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.ExtractionOutcomes.WithLabelValues(outcome).Inc()
	m.ExtractionDuration.Observe(d.Seconds())
}
