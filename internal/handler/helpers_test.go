package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/olegiv/vitrine-go/internal/app"
	"github.com/olegiv/vitrine-go/internal/chat"
	"github.com/olegiv/vitrine-go/internal/docstore"
	"github.com/olegiv/vitrine-go/internal/session"
	"github.com/olegiv/vitrine-go/internal/testutil"
)

type staticProvider struct{ reply string }

func (p staticProvider) Name() string { return "static" }

func (p staticProvider) Generate(context.Context, chat.Request) (string, error) {
	return p.reply, nil
}

type testServer struct {
	t      *testing.T
	srv    *httptest.Server
	client *http.Client
	app    *app.App
	docs   *docstore.MemoryStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWith(t, nil)
}

// newTestServerWith lets a test adjust the router config before the server starts.
func newTestServerWith(t *testing.T, configure func(a *app.App, cfg *RouterConfig)) *testServer {
	t.Helper()

	docs := docstore.NewMemoryStore()
	logger := testutil.TestLoggerSilent()
	a := app.New(docs, app.Options{ChatProvider: staticProvider{reply: "Bonjour !"}}, logger)

	cfg := RouterConfig{
		App:            a,
		Sessions:       session.New(nil, true),
		Backend:        docstore.BackendMemory,
		SessionSecret:  "test-secret-0123456789abcdefghijklmnop",
		IsDevelopment:  true,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		Logger:         logger,
	}
	if configure != nil {
		configure(a, &cfg)
	}
	srv := httptest.NewServer(NewRouter(cfg))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &testServer{t: t, srv: srv, client: &http.Client{Jar: jar}, app: a, docs: docs}
}

// do sends a JSON request and decodes the JSON response into a map.
func (s *testServer) do(method, path string, body any) (int, map[string]any) {
	s.t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			s.t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.srv.URL+path, rd)
	if err != nil {
		s.t.Fatalf("new request: %v", err)
	}
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	out := map[string]any{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
		out["_raw"] = string(raw)
	}
	return resp.StatusCode, out
}

func (s *testServer) login(pin string) {
	s.t.Helper()
	code, body := s.do(http.MethodPost, "/api/admin/login", map[string]string{"pin": pin})
	if code != http.StatusOK {
		s.t.Fatalf("login %s: status %d: %v", pin, code, body)
	}
}

func (s *testServer) expect(method, path string, body any, want int) map[string]any {
	s.t.Helper()
	code, out := s.do(method, path, body)
	if code != want {
		s.t.Fatalf("%s %s: status = %d, want %d: %v", method, path, code, want, out["_raw"])
	}
	return out
}

// object returns body[key] as a JSON object.
func object(t *testing.T, body map[string]any, key string) map[string]any {
	t.Helper()
	v, ok := body[key].(map[string]any)
	if !ok {
		t.Fatalf("%s is %T, want an object", key, body[key])
	}
	return v
}

// raw returns the undecoded response body.
func raw(body map[string]any) string {
	s, _ := body["_raw"].(string)
	return s
}
