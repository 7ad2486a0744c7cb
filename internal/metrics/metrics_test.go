package metrics

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"

	"vincode/internal/workspace"
)

func TestObserveCountsCommands(t *testing.T) {
	var store *workspace.Store
	store = workspace.New(workspace.WithObserver(Observe(func() *workspace.Store { return store })))

	okBefore := promtest.ToFloat64(commandsTotal.WithLabelValues("createFolder", "ok"))
	errBefore := promtest.ToFloat64(commandsTotal.WithLabelValues("openFile", "error"))

	if _, err := store.CreateFolder("src", ""); err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	_ = store.OpenFile("missing")

	if got := promtest.ToFloat64(commandsTotal.WithLabelValues("createFolder", "ok")); got != okBefore+1 {
		t.Fatalf("ok counter = %v", got)
	}
	if got := promtest.ToFloat64(commandsTotal.WithLabelValues("openFile", "error")); got != errBefore+1 {
		t.Fatalf("error counter = %v", got)
	}
	if got := promtest.ToFloat64(treeNodes); got != 6 {
		t.Fatalf("tree nodes = %v", got)
	}
}

func TestRecordCommandNilStore(t *testing.T) {
	Observe(func() *workspace.Store { return nil })("resetFiles", errors.New("x"))
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordHTTPRequest("GET", "/api/state", 200, 0)
	RecordPreview(0)
	RecordExport(10)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	for _, name := range []string{"vincode_http_requests_total", "vincode_preview_assembly_duration_seconds", "vincode_export_bytes_total"} {
		if !strings.Contains(body, name) {
			t.Fatalf("metric %s missing", name)
		}
	}
}
