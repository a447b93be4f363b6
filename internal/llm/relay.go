package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const defaultRelayModel = "claude-3-5-sonnet-20241022"

// RelayProvider implements Provider against a learnhub relay server,
// which holds the upstream credential and forwards requests verbatim.
// The wire shape is the Anthropic Messages API.
type RelayProvider struct {
	client *resty.Client
	apiKey string
	model  string
}

type relayMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type relayRequest struct {
	APIKey    string         `json:"apiKey,omitempty"`
	Model     string         `json:"model"`
	System    string         `json:"system,omitempty"`
	MaxTokens int            `json:"max_tokens,omitempty"`
	Messages  []relayMessage `json:"messages"`
}

type relayResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model      string `json:"model"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewRelayProvider creates a provider that talks to a relay server.
func NewRelayProvider(cfg RelayConfig) (*RelayProvider, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("relay base URL is required")
	}

	model := cfg.Model
	if model == "" {
		model = defaultRelayModel
	}

	client := resty.New().SetBaseURL(cfg.BaseURL)

	return &RelayProvider{
		client: client,
		apiKey: cfg.APIKey,
		model:  model,
	}, nil
}

func (p *RelayProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	body := relayRequest{
		APIKey:    p.apiKey,
		Model:     p.model,
		System:    req.System,
		MaxTokens: req.MaxTokens,
		Messages:  buildRelayMessages(req.Messages),
	}

	var parsed relayResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&parsed).
		SetError(&parsed).
		Post("/api/messages")
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}

	if resp.IsError() {
		return nil, mapRelayError(resp.StatusCode(), parsed)
	}

	content, err := extractRelayContent(parsed)
	if err != nil {
		return nil, err
	}

	if req.Schema != nil {
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content: content,
		Usage: Usage{
			InputTokens:  parsed.Usage.InputTokens,
			OutputTokens: parsed.Usage.OutputTokens,
			TotalTokens:  parsed.Usage.InputTokens + parsed.Usage.OutputTokens,
		},
		Model:      parsed.Model,
		StopReason: mapRelayStopReason(parsed.StopReason),
	}, nil
}

func (p *RelayProvider) ModelID() string {
	return p.model
}

func buildRelayMessages(msgs []Message) []relayMessage {
	out := make([]relayMessage, len(msgs))
	for i, m := range msgs {
		out[i] = relayMessage{Role: string(m.Role), Content: m.Content}
	}
	return out
}

func extractRelayContent(parsed relayResponse) (json.RawMessage, error) {
	for _, block := range parsed.Content {
		if block.Type == "text" || block.Type == "" {
			return json.RawMessage(block.Text), nil
		}
	}
	return nil, &ErrInvalidResponse{
		Err: fmt.Errorf("no text content in relay response"),
	}
}

func mapRelayStopReason(reason string) string {
	switch reason {
	case "max_tokens":
		return "max_tokens"
	default:
		return "end"
	}
}

// mapRelayError converts the relay's structured error body into the
// typed error taxonomy. The relay mirrors the upstream error types.
func mapRelayError(status int, parsed relayResponse) error {
	kind := ""
	msg := fmt.Sprintf("relay returned status %d", status)
	if parsed.Error != nil {
		kind = parsed.Error.Type
		if parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
	}

	base := fmt.Errorf("%s", msg)
	switch kind {
	case "authentication_error":
		return &ErrAuthentication{Err: base}
	case "permission_error":
		return &ErrPermission{Err: base}
	case "rate_limit_error":
		return &ErrRateLimit{Err: base}
	case "insufficient_quota":
		return &ErrQuotaExceeded{Err: base}
	case "invalid_request", "invalid_request_error":
		return fmt.Errorf("relay rejected request: %s", msg)
	default:
		return &ErrProviderUnavailable{Err: base}
	}
}
