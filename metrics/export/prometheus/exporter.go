// Package prometheus renders authcore metrics in Prometheus text exposition
// format.
package prometheus

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/anoylabs/authcore"
)

type metricsSource interface {
	MetricsSnapshot() authcore.MetricsSnapshot
	AuditDropped() uint64
}

type counterDef struct {
	id   authcore.MetricID
	name string
	help string
}

var counterDefs = []counterDef{
	{authcore.MetricLoginSuccess, "authcore_login_success_total", "Completed logins."},
	{authcore.MetricLoginExpired, "authcore_login_expired_total", "Logins rejected for an expired credential."},
	{authcore.MetricRestoreSuccess, "authcore_restore_success_total", "Sessions restored from storage."},
	{authcore.MetricRestoreExpired, "authcore_restore_expired_total", "Restorations that found an expired credential."},
	{authcore.MetricLogout, "authcore_logout_total", "Explicit logouts of an active session."},
	{authcore.MetricForcedLogout, "authcore_forced_logout_total", "Session teardowns forced by a 401 response."},
	{authcore.MetricStorageDegraded, "authcore_storage_degraded_total", "Operations that continued in-memory-only after a tier failure."},
	{authcore.MetricRequestAuthorized, "authcore_request_authorized_total", "Outgoing requests carrying a bearer header."},
	{authcore.MetricRequestAnonymous, "authcore_request_anonymous_total", "Outgoing requests without a bearer header."},
	{authcore.MetricAuthInvalid, "authcore_response_unauthorized_total", "Observed 401 responses."},
	{authcore.MetricAccessDenied, "authcore_response_forbidden_total", "Observed 403 responses, passed through."},
}

// Exporter reads a metrics source and renders the exposition text.
type Exporter struct {
	source metricsSource
}

// NewExporter reads from the given Manager.
func NewExporter(manager *authcore.Manager) *Exporter {
	return &Exporter{source: manager}
}

// NewExporterFromSource reads from a custom source, e.g. a test double.
func NewExporterFromSource(source metricsSource) *Exporter {
	return &Exporter{source: source}
}

// Handler serves the rendered metrics.
func (e *Exporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		_, _ = w.Write([]byte(e.Render()))
	})
}

// Render writes the current counters in Prometheus text exposition format.
func (e *Exporter) Render() string {
	if e == nil || e.source == nil {
		return ""
	}

	snapshot := e.source.MetricsSnapshot()

	var b strings.Builder
	b.Grow(2048)
	for _, def := range counterDefs {
		writeCounter(&b, def.name, def.help, snapshot.Counters[def.id])
	}
	writeCounter(&b, "authcore_audit_dropped_total",
		"Audit events dropped under dispatcher backpressure.", e.source.AuditDropped())

	return b.String()
}

func writeCounter(b *strings.Builder, name, help string, value uint64) {
	b.WriteString("# HELP ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(help)
	b.WriteByte('\n')
	b.WriteString("# TYPE ")
	b.WriteString(name)
	b.WriteString(" counter\n")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(value, 10))
	b.WriteByte('\n')
}
