package lessongen

import (
	"fmt"
	"strings"
)

// maxContentChars caps how much extracted file content is embedded in
// the prompt. Anything beyond it is dropped with a truncation marker.
const maxContentChars = 8000

const lessonFormat = `{
  "title": "%s",
  "icon": "relevant emoji",
  "subtitle": "short engaging description",
  "description": "what learner will know after",
  "sections": [
    {
      "title": "Section Name",
      "icon": "emoji",
      "whyCare": "Why this matters in real life (2-3 sentences)",
      "keyPoints": [
        %s
      ],
      "realWorldExample": "%s",
      "practiceQuestion": {
        "question": "%s",
        "options": ["Option A", "Option B", "Option C", "Option D"],
        "correctIndex": 0,
        "explanation": "Why this answer is correct"
      }
    }
  ]
}`

func topicFormat() string {
	return fmt.Sprintf(lessonFormat,
		"Topic Title",
		`"Point 1 explained conversationally",
        "Point 2 with real-world relevance",
        "Point 3 with practical examples"`,
		"Concrete example they can relate to",
		"Scenario-based question")
}

func contentFormat() string {
	return fmt.Sprintf(lessonFormat,
		"Topic Title based on content",
		`"Point 1 from the content explained conversationally",
        "Point 2 from the content with real-world relevance",
        "Point 3 from the content with practical examples"`,
		"Concrete example they can relate to based on the content",
		"Scenario-based question about the content")
}

func buildTopicPrompt(topic string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Create an interactive learning lesson about %q.\n\n", topic))
	b.WriteString("You are a friendly, enthusiastic tutor. Structure the lesson as JSON with this EXACT format:\n\n")
	b.WriteString(topicFormat())
	b.WriteString(`

Make it:
- Conversational like explaining to a friend
- Include 2-3 sections
- Use real-world examples people care about
- Make practice questions interesting scenarios
- Be engaging and fun!

Return ONLY valid JSON, no other text.`)

	return b.String()
}

func buildContentPrompt(content, sourceName string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("I have this learning content from a file called %q:\n\n", sourceName))
	b.WriteString("Content:\n")
	b.WriteString(truncateContent(content))
	b.WriteString("\n\n")
	b.WriteString("Create an interactive learning lesson based on this content. Structure it as JSON with this EXACT format:\n\n")
	b.WriteString(contentFormat())
	b.WriteString(`

Make it:
- Conversational like explaining to a friend
- Include 2-3 sections based on the content
- Extract the most important concepts from the material
- Make practice questions test understanding of the content
- Be engaging and fun!

Return ONLY valid JSON, no other text.`)

	return b.String()
}

func truncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= maxContentChars {
		return content
	}
	return string(runes[:maxContentChars]) + "\n\n[Content truncated...]"
}
