package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestRelayProvider(t *testing.T, handler http.HandlerFunc) *RelayProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewRelayProvider(RelayConfig{BaseURL: server.URL, APIKey: "sk-client"})
	if err != nil {
		t.Fatalf("new relay provider: %v", err)
	}
	return p
}

func TestRelayProvider_HappyPath(t *testing.T) {
	var gotBody relayRequest
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/messages" {
			t.Errorf("path = %q, want /api/messages", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": `{"title":"Black Holes","sections":[]}`},
			},
			"model":       "claude-3-5-sonnet-20241022",
			"stop_reason": "end_turn",
			"usage": map[string]any{
				"input_tokens":  80,
				"output_tokens": 40,
			},
		})
	}

	p := newTestRelayProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a friendly tutor.",
		Messages:  []Message{{Role: RoleUser, Content: "Teach me about black holes."}},
		MaxTokens: 4000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotBody.APIKey != "sk-client" {
		t.Errorf("forwarded apiKey = %q, want sk-client", gotBody.APIKey)
	}
	if gotBody.Model != defaultRelayModel {
		t.Errorf("model = %q, want %q", gotBody.Model, defaultRelayModel)
	}
	if gotBody.MaxTokens != 4000 {
		t.Errorf("max_tokens = %d, want 4000", gotBody.MaxTokens)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Role != "user" {
		t.Errorf("messages = %+v, want one user message", gotBody.Messages)
	}

	if resp.Usage.TotalTokens != 120 {
		t.Errorf("total tokens = %d, want 120", resp.Usage.TotalTokens)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestRelayProvider_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		errType string
		check   func(error) bool
	}{
		{"authentication", 400, "authentication_error", func(err error) bool {
			var e *ErrAuthentication
			return errors.As(err, &e)
		}},
		{"permission", 403, "permission_error", func(err error) bool {
			var e *ErrPermission
			return errors.As(err, &e)
		}},
		{"rate limit", 429, "rate_limit_error", func(err error) bool {
			var e *ErrRateLimit
			return errors.As(err, &e)
		}},
		{"quota", 429, "insufficient_quota", func(err error) bool {
			var e *ErrQuotaExceeded
			return errors.As(err, &e)
		}},
		{"server error", 500, "server_error", func(err error) bool {
			var e *ErrProviderUnavailable
			return errors.As(err, &e)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{
						"type":    tt.errType,
						"message": "upstream says no",
					},
				})
			}

			p := newTestRelayProvider(t, handler)
			_, err := p.Generate(context.Background(), Request{
				Messages: []Message{{Role: RoleUser, Content: "hi"}},
			})
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Fatalf("wrong error type: %T (%v)", err, err)
			}
		})
	}
}

func TestRelayProvider_TransportFailure(t *testing.T) {
	p, err := NewRelayProvider(RelayConfig{BaseURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatalf("new relay provider: %v", err)
	}

	_, err = p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestRelayProvider_RequiresBaseURL(t *testing.T) {
	if _, err := NewRelayProvider(RelayConfig{}); err == nil {
		t.Fatal("expected error without base URL")
	}
}

func TestRelayProvider_ModelOverride(t *testing.T) {
	p, err := NewRelayProvider(RelayConfig{BaseURL: "http://localhost:3000", Model: "claude-3-5-haiku-20241022"})
	if err != nil {
		t.Fatalf("new relay provider: %v", err)
	}
	if p.ModelID() != "claude-3-5-haiku-20241022" {
		t.Fatalf("model = %q", p.ModelID())
	}
}
