package lessongen

import (
	"errors"

	"github.com/learnhub/learnhub/internal/llm"
)

var (
	// ErrInvalidLessonFormat means the model response could not be
	// parsed into a lesson. Nothing is persisted when this happens.
	ErrInvalidLessonFormat = errors.New("invalid lesson format from AI")

	// ErrUnsupportedFile means the input file type cannot be read as
	// lesson source material. Checked before any network call.
	ErrUnsupportedFile = errors.New("unsupported file type")

	// ErrContentTooShort means the extracted text was under the
	// minimum usable length. Checked before any network call.
	ErrContentTooShort = errors.New("not enough usable content")
)

// UserMessage translates a generation error into the message shown to
// the learner.
func UserMessage(err error) string {
	var (
		auth  *llm.ErrAuthentication
		perm  *llm.ErrPermission
		rate  *llm.ErrRateLimit
		quota *llm.ErrQuotaExceeded
	)

	switch {
	case errors.As(err, &auth):
		return "Invalid API key. Please check your settings."
	case errors.As(err, &perm):
		return "API key lacks required permissions."
	case errors.As(err, &rate):
		return "Rate limit exceeded. Please wait a moment."
	case errors.As(err, &quota):
		return "API quota exceeded. Please check your billing."
	case errors.Is(err, ErrInvalidLessonFormat):
		return "Invalid lesson format from AI"
	case errors.Is(err, ErrUnsupportedFile):
		return "Unsupported file type. Please use a plain text file."
	case errors.Is(err, ErrContentTooShort):
		return "Could not extract enough content from file. Try a text-based file."
	default:
		return "Failed to create lesson. Please check your connection and try again."
	}
}
