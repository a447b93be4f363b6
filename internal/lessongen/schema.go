package lessongen

import "github.com/learnhub/learnhub/internal/llm"

// GeneratedLessonSchema defines the JSON shape the model must return
// for a generated lesson. Icons are optional; normalization fills
// fallbacks for them.
var GeneratedLessonSchema = &llm.Schema{
	Name:        "generated-lesson",
	Description: "An interactive lesson with sections, key points, and practice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Topic title",
			},
			"icon": map[string]any{
				"type":        "string",
				"description": "Relevant emoji",
			},
			"subtitle": map[string]any{
				"type":        "string",
				"description": "Short engaging description",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "What the learner will know after",
			},
			"sections": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type": "string",
						},
						"icon": map[string]any{
							"type": "string",
						},
						"whyCare": map[string]any{
							"type":        "string",
							"description": "Why this matters in real life (2-3 sentences)",
						},
						"keyPoints": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items":    map[string]any{"type": "string"},
						},
						"realWorldExample": map[string]any{
							"type": "string",
						},
						"practiceQuestion": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"question": map[string]any{
									"type": "string",
								},
								"options": map[string]any{
									"type":     "array",
									"minItems": 2,
									"items":    map[string]any{"type": "string"},
								},
								"correctIndex": map[string]any{
									"type":    "integer",
									"minimum": 0,
								},
								"explanation": map[string]any{
									"type": "string",
								},
							},
							"required": []any{"question", "options", "correctIndex", "explanation"},
						},
					},
					"required": []any{"title", "whyCare", "keyPoints", "realWorldExample", "practiceQuestion"},
				},
			},
		},
		"required": []any{"title", "sections"},
	},
}
