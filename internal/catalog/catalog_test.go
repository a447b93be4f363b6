package catalog

import (
	"math/rand"
	"testing"
	"time"
)

func TestStaticLessons(t *testing.T) {
	lessons := StaticLessons()
	if len(lessons) != 3 {
		t.Fatalf("StaticLessons() returned %d lessons, want 3", len(lessons))
	}

	wantIDs := []string{"javascript_basics", "react_intro", "web_design"}
	for i, id := range wantIDs {
		if lessons[i].ID != id {
			t.Errorf("lesson[%d].ID = %q, want %q", i, lessons[i].ID, id)
		}
		if len(lessons[i].Sections) == 0 {
			t.Errorf("lesson %q has no sections", id)
		}
	}

	js := lessons[0]
	if len(js.Sections) != 3 {
		t.Errorf("javascript_basics has %d sections, want 3", len(js.Sections))
	}
	for _, s := range js.Sections {
		if s.Content.Quiz == nil {
			t.Errorf("section %q missing quiz", s.ID)
			continue
		}
		q := s.Content.Quiz
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			t.Errorf("section %q quiz CorrectIndex %d out of range (%d options)",
				s.ID, q.CorrectIndex, len(q.Options))
		}
	}
}

func TestSectionKey(t *testing.T) {
	got := SectionKey("javascript_basics", "variables")
	if got != "javascript_basics_variables" {
		t.Errorf("SectionKey = %q, want %q", got, "javascript_basics_variables")
	}
}

func TestLessonSectionAt(t *testing.T) {
	l := StaticLessons()[0]

	if s := l.SectionAt(0); s == nil || s.ID != "variables" {
		t.Errorf("SectionAt(0) = %v, want variables", s)
	}
	if s := l.SectionAt(-1); s != nil {
		t.Errorf("SectionAt(-1) = %v, want nil", s)
	}
	if s := l.SectionAt(len(l.Sections)); s != nil {
		t.Errorf("SectionAt(len) = %v, want nil", s)
	}
	if got := l.LastIndex(); got != 2 {
		t.Errorf("LastIndex() = %d, want 2", got)
	}

	empty := Lesson{}
	if got := empty.LastIndex(); got != -1 {
		t.Errorf("empty LastIndex() = %d, want -1", got)
	}
}

func TestCatalogFindByID(t *testing.T) {
	dyn := Lesson{ID: "topic_123", Title: "Black Holes", Dynamic: true}
	c := New([]Lesson{dyn})

	tests := []struct {
		id    string
		found bool
		title string
	}{
		{"javascript_basics", true, "JavaScript Fundamentals"},
		{"topic_123", true, "Black Holes"},
		{"nope", false, ""},
	}
	for _, tt := range tests {
		got, ok := c.FindByID(tt.id)
		if ok != tt.found {
			t.Errorf("FindByID(%q) found = %v, want %v", tt.id, ok, tt.found)
			continue
		}
		if ok && got.Title != tt.title {
			t.Errorf("FindByID(%q).Title = %q, want %q", tt.id, got.Title, tt.title)
		}
	}

	if got := len(c.All()); got != 4 {
		t.Errorf("All() returned %d lessons, want 4", got)
	}
}

func TestCatalogStaticWinsOverDynamic(t *testing.T) {
	shadow := Lesson{ID: "javascript_basics", Title: "Impostor", Dynamic: true}
	c := New([]Lesson{shadow})

	got, ok := c.FindByID("javascript_basics")
	if !ok {
		t.Fatal("FindByID(javascript_basics) not found")
	}
	if got.Title != "JavaScript Fundamentals" {
		t.Errorf("FindByID resolved dynamic shadow %q, want static lesson", got.Title)
	}
}

func TestCatalogAddDynamic(t *testing.T) {
	c := New(nil)
	c.AddDynamic(Lesson{ID: "topic_9", Title: "Silk Road", Dynamic: true})

	if got := len(c.Dynamic()); got != 1 {
		t.Fatalf("Dynamic() has %d lessons, want 1", got)
	}
	if _, ok := c.FindByID("topic_9"); !ok {
		t.Error("FindByID(topic_9) not found after AddDynamic")
	}
}

func TestFilterSuggestions(t *testing.T) {
	all := Suggestions()
	if len(all) != 25 {
		t.Fatalf("Suggestions() returned %d, want 25", len(all))
	}

	tests := []struct {
		name     string
		category string
		skipped  []string
		want     int
	}{
		{"all", "all", nil, 25},
		{"empty category means all", "", nil, 25},
		{"science only", "science", nil, 5},
		{"skip one science", "science", []string{"black_holes"}, 4},
		{"skip ignores other category", "history", []string{"black_holes"}, 5},
	}
	for _, tt := range tests {
		got := FilterSuggestions(tt.category, tt.skipped)
		if len(got) != tt.want {
			t.Errorf("%s: got %d suggestions, want %d", tt.name, len(got), tt.want)
		}
	}
}

func TestRandomSuggestionResetsWhenAllSkipped(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var skipped []string
	for _, s := range Suggestions() {
		skipped = append(skipped, s.ID)
	}
	got := RandomSuggestion(rng, skipped)
	if got.ID == "" {
		t.Error("RandomSuggestion returned empty suggestion with full skip list")
	}
}

func TestDailySuggestion(t *testing.T) {
	day := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	first := DailySuggestion(day)
	second := DailySuggestion(day.Add(5 * time.Hour))
	if first.ID != second.ID {
		t.Errorf("DailySuggestion changed within a day: %q vs %q", first.ID, second.ID)
	}

	next := DailySuggestion(day.AddDate(0, 0, 1))
	if next.ID == first.ID {
		t.Errorf("DailySuggestion did not rotate across days: %q", next.ID)
	}
}

func TestSuggestionByID(t *testing.T) {
	s, ok := SuggestionByID("silk_road")
	if !ok {
		t.Fatal("SuggestionByID(silk_road) not found")
	}
	if s.Category != "history" {
		t.Errorf("silk_road category = %q, want history", s.Category)
	}
	if _, ok := SuggestionByID("missing"); ok {
		t.Error("SuggestionByID(missing) found = true, want false")
	}
}

func TestRandomFact(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := RandomFact(rng)
	if f.Text == "" || f.Icon == "" {
		t.Errorf("RandomFact returned incomplete fact: %+v", f)
	}
}
