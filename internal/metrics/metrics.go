// Package metrics holds Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus counters for the registration flow.
type Metrics struct {
	ApplicationsSubmitted prometheus.Counter
	TeamMembersAdded      prometheus.Counter
	DocumentsUploaded     prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ApplicationsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "registration_applications_submitted_total",
			Help: "Total number of team applications submitted",
		}),
		TeamMembersAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "registration_team_members_added_total",
			Help: "Total number of roster members added",
		}),
		DocumentsUploaded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "registration_documents_uploaded_total",
			Help: "Total number of supporting documents stored",
		}),
	}
}

// IncApplicationsSubmitted increments the submitted-applications counter.
// Safe on a nil receiver so tests can run without a registry.
func (m *Metrics) IncApplicationsSubmitted() {
	if m == nil {
		return
	}
	m.ApplicationsSubmitted.Inc()
}

// IncTeamMembersAdded increments the roster-members counter.
func (m *Metrics) IncTeamMembersAdded() {
	if m == nil {
		return
	}
	m.TeamMembersAdded.Inc()
}

// IncDocumentsUploaded increments the stored-documents counter.
func (m *Metrics) IncDocumentsUploaded() {
	if m == nil {
		return
	}
	m.DocumentsUploaded.Inc()
}
