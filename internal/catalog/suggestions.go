package catalog

import (
	"math/rand"
	"time"
)

// Suggestion is a curated topic the user can turn into a generated lesson.
type Suggestion struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Fact is a rotating "did you know" snippet shown on the home screen.
type Fact struct {
	Text  string `json:"fact"`
	Topic string `json:"topic"`
	Icon  string `json:"icon"`
}

// Suggestions returns the curated topic deck, grouped by category.
func Suggestions() []Suggestion {
	return []Suggestion{
		{ID: "quantum_entanglement", Title: "Quantum Entanglement", Icon: "⚛️", Category: "science", Description: "Spooky action at a distance - Einstein's nightmare explained"},
		{ID: "crispr_gene_editing", Title: "CRISPR Gene Editing", Icon: "🧬", Category: "science", Description: "The revolutionary technology editing the code of life"},
		{ID: "black_holes", Title: "Black Holes", Icon: "🕳️", Category: "science", Description: "Where gravity becomes so strong, not even light can escape"},
		{ID: "neuroplasticity", Title: "Neuroplasticity", Icon: "🧠", Category: "science", Description: "How your brain rewires itself throughout your life"},
		{ID: "photosynthesis", Title: "Photosynthesis", Icon: "🌱", Category: "science", Description: "The process that powers nearly all life on Earth"},

		{ID: "ancient_rome", Title: "Ancient Rome", Icon: "🏛️", Category: "history", Description: "The empire that shaped Western civilization"},
		{ID: "silk_road", Title: "The Silk Road", Icon: "🐫", Category: "history", Description: "Ancient trade routes that connected East and West"},
		{ID: "renaissance", Title: "The Renaissance", Icon: "🎨", Category: "history", Description: "The rebirth of art, science, and human potential"},
		{ID: "industrial_revolution", Title: "Industrial Revolution", Icon: "⚙️", Category: "history", Description: "How machines transformed human society forever"},
		{ID: "space_race", Title: "The Space Race", Icon: "🚀", Category: "history", Description: "The epic competition that took humanity to the Moon"},

		{ID: "color_theory", Title: "Color Theory", Icon: "🎨", Category: "arts", Description: "The science and art of how colors interact"},
		{ID: "music_composition", Title: "Music Composition", Icon: "🎵", Category: "arts", Description: "The craft of creating beautiful melodies and harmonies"},
		{ID: "photography_basics", Title: "Photography Basics", Icon: "📸", Category: "arts", Description: "Capture the world through your lens"},
		{ID: "storytelling", Title: "Storytelling Techniques", Icon: "📖", Category: "arts", Description: "The ancient art of captivating an audience"},
		{ID: "animation_principles", Title: "Animation Principles", Icon: "🎬", Category: "arts", Description: "The 12 principles that bring drawings to life"},

		{ID: "blockchain", Title: "Blockchain Technology", Icon: "⛓️", Category: "tech", Description: "The technology behind Bitcoin and beyond"},
		{ID: "machine_learning", Title: "Machine Learning Basics", Icon: "🤖", Category: "tech", Description: "How computers learn from data without being programmed"},
		{ID: "cybersecurity", Title: "Cybersecurity Fundamentals", Icon: "🔒", Category: "tech", Description: "Protect yourself in the digital world"},
		{ID: "cloud_computing", Title: "Cloud Computing", Icon: "☁️", Category: "tech", Description: "Why the internet is becoming one giant computer"},
		{ID: "quantum_computing", Title: "Quantum Computing", Icon: "💻", Category: "tech", Description: "The future of computing is here - and it's weird"},

		{ID: "japanese_tea_ceremony", Title: "Japanese Tea Ceremony", Icon: "🍵", Category: "culture", Description: "The meditative art of preparing and serving tea"},
		{ID: "mythology", Title: "Greek Mythology", Icon: "⚡", Category: "culture", Description: "Gods, heroes, and monsters of ancient Greece"},
		{ID: "sustainable_living", Title: "Sustainable Living", Icon: "🌍", Category: "culture", Description: "How to reduce your environmental footprint"},
		{ID: "mindfulness", Title: "Mindfulness & Meditation", Icon: "🧘", Category: "culture", Description: "Ancient practices for modern mental health"},
		{ID: "linguistics", Title: "Language Origins", Icon: "🗣️", Category: "culture", Description: "How human language evolved and spread"},
	}
}

// Facts returns the "did you know" rotation.
func Facts() []Fact {
	return []Fact{
		{Text: "Octopuses have three hearts and blue blood!", Topic: "Marine Biology", Icon: "🐙"},
		{Text: "A day on Venus is longer than a year on Venus!", Topic: "Astronomy", Icon: "🪐"},
		{Text: "Honey never spoils - archaeologists found 3000-year-old honey that was still edible!", Topic: "Ancient Preservation", Icon: "🍯"},
		{Text: "The human brain uses 20% of your body's energy despite being only 2% of your body weight!", Topic: "Neuroscience", Icon: "🧠"},
		{Text: "Bananas are berries, but strawberries aren't!", Topic: "Botany", Icon: "🍓"},
		{Text: "There are more stars in the universe than grains of sand on all Earth's beaches!", Topic: "Cosmology", Icon: "⭐"},
		{Text: "The shortest war in history lasted 38-45 minutes!", Topic: "History", Icon: "⚔️"},
		{Text: "Your body completely replaces all its cells every 7-10 years!", Topic: "Biology", Icon: "🔬"},
	}
}

// SuggestionByID looks up a suggestion in the deck.
func SuggestionByID(id string) (Suggestion, bool) {
	for _, s := range Suggestions() {
		if s.ID == id {
			return s, true
		}
	}
	return Suggestion{}, false
}

// FilterSuggestions narrows the deck by category ("all" keeps everything)
// and drops any IDs the caller has skipped this session.
func FilterSuggestions(category string, skipped []string) []Suggestion {
	skip := make(map[string]bool, len(skipped))
	for _, id := range skipped {
		skip[id] = true
	}
	var out []Suggestion
	for _, s := range Suggestions() {
		if category != "all" && category != "" && s.Category != category {
			continue
		}
		if skip[s.ID] {
			continue
		}
		out = append(out, s)
	}
	return out
}

// RandomSuggestion picks a surprise topic from the non-skipped deck. When
// everything has been skipped the skip list is treated as cleared.
func RandomSuggestion(rng *rand.Rand, skipped []string) Suggestion {
	available := FilterSuggestions("all", skipped)
	if len(available) == 0 {
		available = Suggestions()
	}
	return available[rng.Intn(len(available))]
}

// DailySuggestion returns the same topic for every call on a given day,
// keyed by day of year.
func DailySuggestion(now time.Time) Suggestion {
	deck := Suggestions()
	return deck[now.YearDay()%len(deck)]
}

// RandomFact returns one entry from the fact rotation.
func RandomFact(rng *rand.Rand) Fact {
	facts := Facts()
	return facts[rng.Intn(len(facts))]
}
