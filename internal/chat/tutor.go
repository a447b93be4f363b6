// Package chat implements the AI tutor conversation.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/learnhub/learnhub/internal/llm"
	"github.com/learnhub/learnhub/internal/progress"
)

// maxReplyTokens bounds a single tutor reply.
const maxReplyTokens = 1024

const tutorPersona = "You are a friendly, enthusiastic tutor helping someone learn. " +
	"Be conversational and informal (like explaining to a friend). " +
	"Keep responses concise but helpful. Use examples when possible."

// StudyContext tells the tutor what the learner is currently working
// on, so answers can reference it.
type StudyContext struct {
	LessonTitle  string
	SectionTitle string
}

// Tutor answers learner questions through an LLM provider. Every
// question counts toward the chat achievement before the network call,
// so even a failed request marks the learner as having asked.
type Tutor struct {
	provider llm.Provider
	progress *progress.Service
}

// NewTutor creates a tutor backed by the given provider. The progress
// service may be nil, in which case questions are not tracked.
func NewTutor(provider llm.Provider, svc *progress.Service) *Tutor {
	return &Tutor{provider: provider, progress: svc}
}

// Ask sends a learner question and returns the tutor's reply.
// study is optional; when set, the prompt mentions what the learner is
// currently reading.
func (t *Tutor) Ask(ctx context.Context, question string, study *StudyContext) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is required")
	}

	if t.progress != nil {
		if err := t.progress.IncrementChatMessages(ctx); err != nil {
			return "", fmt.Errorf("track chat message: %w", err)
		}
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeChat)
	resp, err := t.provider.Generate(ctx, llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildQuestionPrompt(question, study)}},
		MaxTokens: maxReplyTokens,
	})
	if err != nil {
		return "", err
	}

	return string(resp.Content), nil
}

func buildQuestionPrompt(question string, study *StudyContext) string {
	var b strings.Builder

	b.WriteString(tutorPersona)
	b.WriteString("\n\nStudent question: ")
	b.WriteString(question)

	if study != nil && study.SectionTitle != "" {
		b.WriteString(fmt.Sprintf("\n\nContext: They're currently learning about %q in the %q module.",
			study.SectionTitle, study.LessonTitle))
	}

	return b.String()
}

// UserMessage translates a chat error into the message shown to the
// learner.
func UserMessage(err error) string {
	var (
		auth  *llm.ErrAuthentication
		perm  *llm.ErrPermission
		rate  *llm.ErrRateLimit
		quota *llm.ErrQuotaExceeded
	)

	switch {
	case errors.As(err, &auth):
		return "Invalid API key"
	case errors.As(err, &perm):
		return "API key lacks required permissions"
	case errors.As(err, &rate):
		return "Rate limit exceeded. Please wait a moment."
	case errors.As(err, &quota):
		return "API quota exceeded. Please check your billing."
	default:
		return "Network error"
	}
}
