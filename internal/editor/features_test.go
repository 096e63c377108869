package editor

import (
	"strings"
	"testing"

	"resumely/internal/model"
)

func TestSuggestedSkills(t *testing.T) {
	cases := []struct {
		title string
		first string
		count int
	}{
		{"Software Engineer", "JavaScript", 15},
		{"Senior Backend Developer", "JavaScript", 15},
		{"Product Designer", "Figma", 15},
		{"Data Scientist", "Python", 15},
		{"Engineering Manager", "JavaScript", 15}, // "engineer" wins over "manager"
		{"Accountant", "Communication", 8},
		{"", "Communication", 8},
	}
	for _, tc := range cases {
		got := SuggestedSkills(tc.title)
		if len(got) != tc.count {
			t.Errorf("SuggestedSkills(%q) returned %d skills, want %d", tc.title, len(got), tc.count)
		}
		if got[0] != tc.first {
			t.Errorf("SuggestedSkills(%q)[0] = %q, want %q", tc.title, got[0], tc.first)
		}
		seen := make(map[string]bool)
		for _, s := range got {
			if seen[s] {
				t.Errorf("SuggestedSkills(%q) repeats %q", tc.title, s)
			}
			seen[s] = true
		}
	}
}

func TestReadabilityOf(t *testing.T) {
	cases := []struct {
		text  string
		score int
		level string
	}{
		{"", 0, "N/A"},
		{"   ", 0, "N/A"},
		{"...", 0, "N/A"},
		{"The cat sat.", 100, "Very Easy"},
		{"Extraordinarily sophisticated methodologies.", 0, "Very Difficult"},
	}
	for _, tc := range cases {
		got := ReadabilityOf(tc.text)
		if got.Score != tc.score || got.Level != tc.level {
			t.Errorf("ReadabilityOf(%q) = {%d %q}, want {%d %q}",
				tc.text, got.Score, got.Level, tc.score, tc.level)
		}
	}
}

func TestCountSyllables(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"ed", 1},
		{"hello", 2},
		{"resume", 2},   // trailing silent e dropped
		{"yellow", 2},   // leading y is not a vowel
		{"rhythm", 1},   // the mid-word y is the only vowel
		{"Shipped!", 1}, // punctuation and the -ed ending stripped
	}
	for _, tc := range cases {
		if got := countSyllables(tc.word); got != tc.want {
			t.Errorf("countSyllables(%q) = %d, want %d", tc.word, got, tc.want)
		}
	}
}

func TestWordCount(t *testing.T) {
	doc := model.DefaultDocument()
	if got := WordCount(doc); got != 0 {
		t.Fatalf("empty document WordCount = %d, want 0", got)
	}

	doc.Personal.Summary = "one two three"
	doc.Experience = []model.Entry{{ID: "e1", Description: "four five"}}
	doc.Education = []model.Entry{{ID: "ed1", Achievements: "six seven"}}
	doc.Projects = []model.Entry{{ID: "p1", Description: "eight  nine\nten"}}

	if got := WordCount(doc); got != 10 {
		t.Errorf("WordCount = %d, want 10", got)
	}

	// Title and highlight fields are not prose and stay out of the count.
	doc.Experience[0].Position = strings.Repeat("word ", 5)
	if got := WordCount(doc); got != 10 {
		t.Errorf("WordCount after non-prose edits = %d, want 10", got)
	}
}
