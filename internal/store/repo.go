package store

import (
	"context"
	"time"
)

// Setting keys recognized by the app.
const (
	SettingAPIKey   = "api_key"
	SettingDarkMode = "dark_mode"
)

// ProgressRepo manages the single persisted progress document.
type ProgressRepo interface {
	// Load returns the stored progress JSON, or nil when none exists.
	Load(ctx context.Context) ([]byte, error)

	// Save overwrites the progress document.
	Save(ctx context.Context, data []byte) error

	// Reset deletes the progress document.
	Reset(ctx context.Context) error
}

// SettingsRepo manages string key/value settings.
type SettingsRepo interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores or replaces the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	From   time.Time // created_at >= From
	To     time.Time // created_at <= To
}

// LLMRequestEvent is one recorded LLM API call.
type LLMRequestEvent struct {
	ID           int       `db:"id"`
	Sequence     int64     `db:"sequence"`
	Provider     string    `db:"provider"`
	Model        string    `db:"model"`
	Purpose      string    `db:"purpose"`
	InputTokens  int       `db:"input_tokens"`
	OutputTokens int       `db:"output_tokens"`
	LatencyMs    int64     `db:"latency_ms"`
	Success      bool      `db:"success"`
	ErrorMessage string    `db:"error_message"`
	CreatedAt    time.Time `db:"created_at"`
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events matching opts, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
}
