package prometheus

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anoylabs/authcore"
)

type stubSource struct {
	snapshot authcore.MetricsSnapshot
	dropped  uint64
}

func (s stubSource) MetricsSnapshot() authcore.MetricsSnapshot { return s.snapshot }
func (s stubSource) AuditDropped() uint64                      { return s.dropped }

func TestRenderCounters(t *testing.T) {
	exporter := NewExporterFromSource(stubSource{
		snapshot: authcore.MetricsSnapshot{
			Counters: map[authcore.MetricID]uint64{
				authcore.MetricLoginSuccess: 3,
				authcore.MetricForcedLogout: 1,
			},
		},
		dropped: 2,
	})

	out := exporter.Render()

	for _, want := range []string{
		"# TYPE authcore_login_success_total counter",
		"authcore_login_success_total 3",
		"authcore_forced_logout_total 1",
		"authcore_request_authorized_total 0",
		"authcore_audit_dropped_total 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q\n%s", want, out)
		}
	}
}

func TestHandler(t *testing.T) {
	exporter := NewExporterFromSource(stubSource{
		snapshot: authcore.MetricsSnapshot{Counters: map[authcore.MetricID]uint64{}},
	})

	rec := httptest.NewRecorder()
	exporter.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Errorf("Content-Type = %q", got)
	}
	if !strings.Contains(rec.Body.String(), "authcore_logout_total 0") {
		t.Errorf("body missing zero counter:\n%s", rec.Body.String())
	}
}

func TestNilExporter(t *testing.T) {
	var e *Exporter
	if out := e.Render(); out != "" {
		t.Errorf("nil exporter rendered %q", out)
	}
}
