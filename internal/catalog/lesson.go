package catalog

// Lesson is a named unit of learning content composed of ordered sections.
// Static lessons are authored in this package and never change; dynamic
// lessons are generated at runtime and appended to the user's topic list.
type Lesson struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Icon        string    `json:"icon"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	Duration    string    `json:"duration,omitempty"`
	Difficulty  string    `json:"difficulty,omitempty"`
	Dynamic     bool      `json:"isDynamic,omitempty"`
	SourceFile  string    `json:"sourceFile,omitempty"`
	Sections    []Section `json:"sections"`
}

// Section is a single step of a lesson. Its ID is unique within the
// owning lesson only; cross-lesson addressing uses SectionKey.
type Section struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Icon    string  `json:"icon"`
	Content Content `json:"content"`
}

// Content is the free-form teaching payload of a section. Every field is
// optional; renderers skip absent blocks.
type Content struct {
	WhyCare   string     `json:"whyCare,omitempty"`
	Concepts  []Concept  `json:"concepts,omitempty"`
	Examples  []Example  `json:"examples,omitempty"`
	Quiz      *Quiz      `json:"quiz,omitempty"`
	Challenge *Challenge `json:"challenge,omitempty"`
}

// Concept is an expandable key point: a short preview and the full detail.
type Concept struct {
	Title   string `json:"title"`
	Preview string `json:"preview"`
	Details string `json:"details"`
}

// Example pairs an optional code sample with its explanation.
type Example struct {
	Title       string `json:"title"`
	Code        string `json:"code,omitempty"`
	Explanation string `json:"explanation"`
}

// Quiz is a single multiple-choice check embedded in a section.
type Quiz struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// Challenge is an optional hands-on exercise with a hidden solution.
type Challenge struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Hint        string `json:"hint,omitempty"`
	Solution    string `json:"solution,omitempty"`
}

// SectionKey builds the composite key used for per-section completion and
// quiz score tracking.
func SectionKey(lessonID, sectionID string) string {
	return lessonID + "_" + sectionID
}

// LastIndex returns the index of the lesson's final section, or -1 for a
// lesson with no sections.
func (l *Lesson) LastIndex() int {
	return len(l.Sections) - 1
}

// SectionAt returns the section at index i, or nil when out of range.
func (l *Lesson) SectionAt(i int) *Section {
	if i < 0 || i >= len(l.Sections) {
		return nil
	}
	return &l.Sections[i]
}
