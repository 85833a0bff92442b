package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SubmissionsTotal counts contact-form submissions by outcome:
	// created, invalid or error.
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_submissions_total",
		Help: "Contact form submissions by outcome.",
	}, []string{"outcome"})

	// MailSendsTotal counts notification email attempts by message kind
	// (business, auto_reply) and status (sent, failed, skipped).
	MailSendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_mail_sends_total",
		Help: "Notification email attempts by message kind and status.",
	}, []string{"message", "status"})
)

// Handler exposes the default registry in Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
