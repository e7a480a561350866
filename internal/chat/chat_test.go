package chat

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/olegiv/vitrine-go/internal/model"
	"github.com/olegiv/vitrine-go/internal/testutil"
)

type fakeProvider struct {
	reply string
	err   error
	delay time.Duration
	got   Request
	calls int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(ctx context.Context, req Request) (string, error) {
	f.calls++
	f.got = req
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

func TestRelay_Ask(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
		want     string
	}{
		{"reply passes through", &fakeProvider{reply: "Bonjour !"}, "Bonjour !"},
		{"empty reply", &fakeProvider{reply: ""}, ReplyEmpty},
		{"blank reply", &fakeProvider{reply: "  \n"}, ReplyEmpty},
		{"provider error", &fakeProvider{err: errors.New("quota exceeded")}, ReplyOverloaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRelay(tt.provider, time.Second, nil, testutil.TestLoggerSilent())
			if got := r.Ask(context.Background(), "Je veux un logo", nil); got != tt.want {
				t.Errorf("Ask() = %q, want %q", got, tt.want)
			}
			if tt.provider.calls != 1 {
				t.Errorf("provider calls = %d, want 1", tt.provider.calls)
			}
		})
	}
}

func TestRelay_NoProvider(t *testing.T) {
	r := NewRelay(nil, 0, nil, testutil.TestLoggerSilent())
	if r.Configured() {
		t.Error("relay without provider reports configured")
	}
	if got := r.Ask(context.Background(), "Salut", nil); got != ReplyUnavailable {
		t.Errorf("Ask() = %q, want %q", got, ReplyUnavailable)
	}
}

func TestRelay_SendsPersonaAndHistory(t *testing.T) {
	p := &fakeProvider{reply: "ok"}
	r := NewRelay(p, time.Second, nil, testutil.TestLoggerSilent())

	history := []model.ChatMessage{
		{Role: model.ChatRoleUser, Text: "Bonjour"},
		{Role: model.ChatRoleAssistant, Text: "Bonjour, que puis-je faire ?"},
		{Role: "model", Text: "rôle inconnu"},
	}
	r.Ask(context.Background(), "Un flyer ?", history)

	if p.got.System != Persona {
		t.Error("system instruction is not the persona")
	}
	if p.got.Prompt != "Un flyer ?" {
		t.Errorf("Prompt = %q", p.got.Prompt)
	}
	if len(p.got.History) != 3 {
		t.Fatalf("len(History) = %d, want 3", len(p.got.History))
	}
	if p.got.History[1].Role != model.ChatRoleAssistant {
		t.Errorf("History[1].Role = %q, want %q", p.got.History[1].Role, model.ChatRoleAssistant)
	}
	if p.got.History[2].Role != model.ChatRoleUser {
		t.Errorf("History[2].Role = %q, want %q", p.got.History[2].Role, model.ChatRoleUser)
	}
	if history[2].Role != "model" {
		t.Error("caller history was mutated")
	}
}

func TestRelay_Timeout(t *testing.T) {
	p := &fakeProvider{reply: "trop tard", delay: time.Second}
	r := NewRelay(p, 20*time.Millisecond, nil, testutil.TestLoggerSilent())

	if got := r.Ask(context.Background(), "Salut", nil); got != ReplyOverloaded {
		t.Errorf("Ask() = %q, want %q", got, ReplyOverloaded)
	}
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()
	logger := testutil.TestLoggerSilent()

	tests := []struct {
		name     string
		cfg      ProviderConfig
		wantName string
		wantErr  bool
	}{
		{"none", ProviderConfig{Provider: ProviderNone}, "", false},
		{"gemini without key", ProviderConfig{Provider: ProviderGemini}, "", false},
		{"openai", ProviderConfig{Provider: ProviderOpenAI, OpenAIAPIKey: "sk-test"}, ProviderOpenAI, false},
		{"unknown", ProviderConfig{Provider: "claude"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(ctx, tt.cfg, logger)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			name := ""
			if p != nil {
				name = p.Name()
			}
			if name != tt.wantName {
				t.Errorf("provider = %q, want %q", name, tt.wantName)
			}
		})
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	var body struct {
		Model       string  `json:"model"`
		Temperature float64 `json:"temperature"`
		TopP        float64 `json:"top_p"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4o-mini",` +
			`"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Contactez Basile !"}}]}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider("sk-test", "", srv.URL+"/v1/")
	got, err := p.Generate(context.Background(), Request{
		System:  Persona,
		History: []model.ChatMessage{{Role: model.ChatRoleAssistant, Text: "Bonjour"}},
		Prompt:  "Un logo ?",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Contactez Basile !" {
		t.Errorf("reply = %q", got)
	}

	if body.Model != DefaultOpenAIModel {
		t.Errorf("model = %q, want %q", body.Model, DefaultOpenAIModel)
	}
	if math.Abs(body.Temperature-Temperature) > 1e-9 || math.Abs(body.TopP-TopP) > 1e-9 {
		t.Errorf("temperature, top_p = %v, %v, want %v, %v", body.Temperature, body.TopP, Temperature, TopP)
	}
	if len(body.Messages) != 3 {
		t.Fatalf("len(messages) = %d, want 3", len(body.Messages))
	}
	if body.Messages[0].Role != "system" || body.Messages[1].Role != "assistant" {
		t.Errorf("roles = %q, %q, want system, assistant", body.Messages[0].Role, body.Messages[1].Role)
	}
	if body.Messages[2].Content != "Un logo ?" {
		t.Errorf("last message = %q", body.Messages[2].Content)
	}
}
