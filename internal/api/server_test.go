package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/docgraph/pkg/cache"
	"github.com/matzehuels/docgraph/pkg/graph"
	"github.com/matzehuels/docgraph/pkg/pipeline"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(fc, cache.NewDefaultKeyer(), logger)
	return New(runner, logger, cfg)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body
}

const pairRequest = `{"documents":["a.md","b.md"],"relationships":[{"from":"a.md","to":"b.md","type":"links"}]}`

func TestGraphCaching(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()

	first := do(t, h, http.MethodPost, "/v1/graph", pairRequest)
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", first.Code, first.Body)
	}
	if got := first.Header().Get("X-Cache"); got != "miss" {
		t.Errorf("first X-Cache = %q, want miss", got)
	}
	if got := first.Header().Get("X-Layout-Algorithm"); got != graph.AlgorithmHierarchical {
		t.Errorf("X-Layout-Algorithm = %q", got)
	}

	var g graph.Graph
	if err := json.Unmarshal(first.Body.Bytes(), &g); err != nil {
		t.Fatalf("decode graph: %v", err)
	}
	if len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Fatalf("got %d nodes %d edges", len(g.Nodes), len(g.Edges))
	}
	if g.Edges[0].ID != "e-a.md-b.md-0" {
		t.Errorf("edge id = %q", g.Edges[0].ID)
	}

	second := do(t, h, http.MethodPost, "/v1/graph", pairRequest)
	if got := second.Header().Get("X-Cache"); got != "hit" {
		t.Errorf("second X-Cache = %q, want hit", got)
	}
	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Error("cached response differs from the built one")
	}

	refreshed := do(t, h, http.MethodPost, "/v1/graph?refresh=true", pairRequest)
	if got := refreshed.Header().Get("X-Cache"); got != "miss" {
		t.Errorf("refresh X-Cache = %q, want miss", got)
	}
}

func TestGraphErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		status   int
		code     string
		contains string
	}{
		{
			name:     "invalid reference",
			body:     `{"documents":["a"],"relationships":[{"from":"a","to":"x"},{"from":"y","to":"a"}]}`,
			status:   http.StatusUnprocessableEntity,
			code:     "INVALID_REFERENCE",
			contains: "a -> x, y -> a",
		},
		{
			name:     "empty endpoint reported with undeclared",
			body:     `{"documents":["a"],"relationships":[{"from":"a","to":"x"},{"from":"a","to":""}]}`,
			status:   http.StatusUnprocessableEntity,
			code:     "INVALID_REFERENCE",
			contains: "a -> x, a -> ",
		},
		{
			name:   "malformed",
			body:   `not json at all`,
			status: http.StatusBadRequest,
			code:   "INVALID_FORMAT",
		},
		{
			name:     "no documents",
			body:     `{"documents":[],"relationships":[]}`,
			status:   http.StatusUnprocessableEntity,
			code:     "INVALID_INPUT",
			contains: "Documents",
		},
		{
			name:   "blank id",
			body:   `{"documents":["a","  "]}`,
			status: http.StatusUnprocessableEntity,
			code:   "INVALID_INPUT",
		},
	}

	h := newTestServer(t, Config{}).Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/graph", tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body)
			}
			body := decodeError(t, rec)
			if body.Code != tt.code {
				t.Errorf("code = %q, want %q", body.Code, tt.code)
			}
			if !strings.Contains(body.Error, tt.contains) {
				t.Errorf("error %q does not contain %q", body.Error, tt.contains)
			}
			if body.RequestID == "" {
				t.Error("missing request_id")
			}
		})
	}
}

func TestGraphInvalidReferenceListsPairs(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()
	rec := do(t, h, http.MethodPost, "/v1/graph",
		`{"documents":["a"],"relationships":[{"from":"a","to":"x"}]}`)
	body := decodeError(t, rec)
	if len(body.Invalid) != 1 || body.Invalid[0].To != "x" {
		t.Errorf("invalid = %+v", body.Invalid)
	}
}

func TestBodyLimit(t *testing.T) {
	h := newTestServer(t, Config{MaxBodyBytes: 16}).Handler()
	rec := do(t, h, http.MethodPost, "/v1/graph", pairRequest)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
}

func TestExportDOT(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()

	rec := do(t, h, http.MethodPost, "/v1/export?format=dot", pairRequest)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/vnd.graphviz") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"a.md" -> "b.md"`) {
		t.Errorf("DOT missing edge:\n%s", rec.Body)
	}

	again := do(t, h, http.MethodPost, "/v1/export?format=dot", pairRequest)
	if got := again.Header().Get("X-Cache"); got != "hit" {
		t.Errorf("X-Cache = %q, want hit", got)
	}
}

func TestExportRejectsFormat(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()
	rec := do(t, h, http.MethodPost, "/v1/export?format=png", pairRequest)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decodeError(t, rec); body.Code != "INVALID_FORMAT" {
		t.Errorf("code = %q", body.Code)
	}
}

func TestSchemaAndHealth(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()

	rec := do(t, h, http.MethodGet, "/v1/schema", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("schema status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"documents"`) {
		t.Errorf("schema does not describe documents:\n%s", rec.Body)
	}

	rec = do(t, h, http.MethodGet, "/healthz", "")
	var health map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health["status"] != "ok" || health["version"] == "" {
		t.Errorf("health = %v", health)
	}
}

func TestRouting(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()

	if rec := do(t, h, http.MethodGet, "/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown route status = %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/v1/graph", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /v1/graph status = %d", rec.Code)
	}
}

func TestRequestID(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()

	rec := do(t, h, http.MethodGet, "/healthz", "")
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Fatal("no request id assigned")
	}

	const id = "0b9f3c2e-8a51-4d6e-9f0a-3c1d2e4f5a6b"
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != id {
		t.Errorf("request id = %q, want %q", got, id)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got == "not-a-uuid" {
		t.Error("malformed request id was echoed")
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t, Config{ShutdownTimeout: time.Second})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
