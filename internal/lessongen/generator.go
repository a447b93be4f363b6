package lessongen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/learnhub/learnhub/internal/catalog"
	"github.com/learnhub/learnhub/internal/llm"
)

const (
	// minContentChars is the minimum usable text length for building a
	// lesson from a file.
	minContentChars = 50

	// maxLessonTokens bounds the model response for one lesson.
	maxLessonTokens = 4000

	// conceptPreviewChars is how much of a key point shows before the
	// learner expands it.
	conceptPreviewChars = 60
)

// textExtensions are the file types read as plain text. Everything
// else is rejected before any network call.
var textExtensions = map[string]bool{
	".txt":      true,
	".text":     true,
	".md":       true,
	".markdown": true,
	".doc":      true,
	".docx":     true,
}

// rawLesson mirrors the JSON shape the model returns. It gets
// normalized into a catalog.Lesson before anyone else sees it.
type rawLesson struct {
	Title       string       `json:"title"`
	Icon        string       `json:"icon"`
	Subtitle    string       `json:"subtitle"`
	Description string       `json:"description"`
	Sections    []rawSection `json:"sections"`
}

type rawSection struct {
	Title            string      `json:"title"`
	Icon             string      `json:"icon"`
	WhyCare          string      `json:"whyCare"`
	KeyPoints        []string    `json:"keyPoints"`
	RealWorldExample string      `json:"realWorldExample"`
	PracticeQuestion rawQuestion `json:"practiceQuestion"`
}

type rawQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// lessonMode carries the presentation defaults that differ between
// topic-based and file-based generation.
type lessonMode struct {
	idPrefix     string
	iconFallback string
	duration     string
	difficulty   string
	exampleTitle string
	sourceFile   string
}

// Generator turns topics and file content into dynamic lessons via an
// LLM provider.
type Generator struct {
	provider llm.Provider
	now      func() time.Time
}

// NewGenerator creates a lesson generator backed by the given provider.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider, now: time.Now}
}

// FromTopic generates a lesson about the given topic.
func (g *Generator) FromTopic(ctx context.Context, topic string) (catalog.Lesson, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return catalog.Lesson{}, fmt.Errorf("topic is required")
	}

	raw, err := g.generate(ctx, buildTopicPrompt(topic))
	if err != nil {
		return catalog.Lesson{}, err
	}

	return g.normalize(raw, lessonMode{
		idPrefix:     "topic",
		iconFallback: "📖",
		duration:     "Custom",
		difficulty:   "AI-Generated",
		exampleTitle: "Real-World Example",
	})
}

// FromContent generates a lesson from extracted text content.
// sourceName labels where the content came from, usually a file name.
func (g *Generator) FromContent(ctx context.Context, content, sourceName string) (catalog.Lesson, error) {
	if len(strings.TrimSpace(content)) < minContentChars {
		return catalog.Lesson{}, ErrContentTooShort
	}

	raw, err := g.generate(ctx, buildContentPrompt(content, sourceName))
	if err != nil {
		return catalog.Lesson{}, err
	}

	return g.normalize(raw, lessonMode{
		idPrefix:     "file",
		iconFallback: "📄",
		duration:     "From File",
		difficulty:   "Custom Content",
		exampleTitle: "From Your Content",
		sourceFile:   sourceName,
	})
}

// FromFile reads a text file and generates a lesson from its content.
// Unsupported file types are rejected without touching the network.
func (g *Generator) FromFile(ctx context.Context, path string) (catalog.Lesson, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !textExtensions[ext] {
		return catalog.Lesson{}, fmt.Errorf("%w: %s", ErrUnsupportedFile, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return catalog.Lesson{}, fmt.Errorf("read %s: %w", path, err)
	}

	return g.FromContent(ctx, string(data), filepath.Base(path))
}

func (g *Generator) generate(ctx context.Context, prompt string) (rawLesson, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeLessonGen)

	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens: maxLessonTokens,
	})
	if err != nil {
		return rawLesson{}, err
	}

	payload, ok := extractJSON(string(resp.Content))
	if !ok {
		return rawLesson{}, fmt.Errorf("%w: no JSON object in response", ErrInvalidLessonFormat)
	}

	if err := GeneratedLessonSchema.Validate(json.RawMessage(payload)); err != nil {
		return rawLesson{}, fmt.Errorf("%w: %v", ErrInvalidLessonFormat, err)
	}

	var raw rawLesson
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return rawLesson{}, fmt.Errorf("%w: %v", ErrInvalidLessonFormat, err)
	}

	return raw, nil
}

func (g *Generator) normalize(raw rawLesson, mode lessonMode) (catalog.Lesson, error) {
	lesson := catalog.Lesson{
		ID:          fmt.Sprintf("%s_%d", mode.idPrefix, g.now().UnixMilli()),
		Title:       raw.Title,
		Icon:        fallback(raw.Icon, mode.iconFallback),
		Subtitle:    raw.Subtitle,
		Description: raw.Description,
		Duration:    mode.duration,
		Difficulty:  mode.difficulty,
		Dynamic:     true,
		SourceFile:  mode.sourceFile,
	}

	for idx, section := range raw.Sections {
		quiz := section.PracticeQuestion
		if quiz.CorrectIndex < 0 || quiz.CorrectIndex >= len(quiz.Options) {
			return catalog.Lesson{}, fmt.Errorf("%w: correctIndex %d out of range", ErrInvalidLessonFormat, quiz.CorrectIndex)
		}

		concepts := make([]catalog.Concept, len(section.KeyPoints))
		for i, point := range section.KeyPoints {
			concepts[i] = catalog.Concept{
				Title:   fmt.Sprintf("Key Point %d", i+1),
				Preview: conceptPreview(point),
				Details: point,
			}
		}

		lesson.Sections = append(lesson.Sections, catalog.Section{
			ID:    fmt.Sprintf("section_%d", idx),
			Title: section.Title,
			Icon:  fallback(section.Icon, "📝"),
			Content: catalog.Content{
				WhyCare:  section.WhyCare,
				Concepts: concepts,
				Examples: []catalog.Example{{
					Title:       mode.exampleTitle,
					Code:        "",
					Explanation: section.RealWorldExample,
				}},
				Quiz: &catalog.Quiz{
					Question:     quiz.Question,
					Options:      quiz.Options,
					CorrectIndex: quiz.CorrectIndex,
					Explanation:  quiz.Explanation,
				},
			},
		})
	}

	return lesson, nil
}

func conceptPreview(point string) string {
	runes := []rune(point)
	if len(runes) > conceptPreviewChars {
		runes = runes[:conceptPreviewChars]
	}
	return string(runes) + "..."
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
