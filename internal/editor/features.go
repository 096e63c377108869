package editor

import (
	"math"
	"regexp"
	"strings"

	"resumely/internal/model"
)

// skillSets are suggestion pools keyed by career track. The general pool is
// always appended so every title gets soft-skill suggestions.
var skillSets = map[string][]string{
	"software": {"JavaScript", "Python", "Java", "C++", "React", "Node.js",
		"SQL", "Git", "AWS", "Docker", "Kubernetes", "TypeScript",
		"REST APIs", "GraphQL", "MongoDB"},
	"design": {"Figma", "Adobe XD", "Photoshop", "Illustrator", "UI/UX Design",
		"Wireframing", "Prototyping", "Design Systems", "User Research", "Sketch"},
	"marketing": {"SEO", "Google Analytics", "Content Marketing",
		"Social Media Marketing", "Email Marketing", "PPC",
		"Marketing Automation", "Copywriting", "Brand Strategy"},
	"data": {"Python", "R", "SQL", "Tableau", "Power BI", "Machine Learning",
		"Data Analysis", "Statistical Modeling", "Excel", "TensorFlow", "Pandas"},
	"management": {"Project Management", "Agile", "Scrum", "Leadership",
		"Team Building", "Strategic Planning", "Budgeting", "Risk Management",
		"Stakeholder Management"},
	"general": {"Communication", "Problem Solving", "Critical Thinking",
		"Time Management", "Teamwork", "Adaptability", "Attention to Detail",
		"Organization"},
}

var trackKeywords = []struct {
	track    string
	keywords []string
}{
	{"software", []string{"software", "developer", "engineer"}},
	{"design", []string{"design", "ux", "ui"}},
	{"marketing", []string{"market", "seo", "growth"}},
	{"data", []string{"data", "analyst", "scientist"}},
	{"management", []string{"manager", "director", "lead"}},
}

// SuggestedSkills proposes up to 15 skills for a job title. Track skills come
// first, then the general pool, deduplicated in order. An unrecognized or
// empty title yields the general pool alone.
func SuggestedSkills(jobTitle string) []string {
	title := strings.ToLower(jobTitle)
	pool := skillSets["general"]
	for _, t := range trackKeywords {
		matched := false
		for _, kw := range t.keywords {
			if strings.Contains(title, kw) {
				matched = true
				break
			}
		}
		if matched {
			pool = append(append([]string{}, skillSets[t.track]...), pool...)
			break
		}
	}

	seen := make(map[string]bool, len(pool))
	out := make([]string, 0, 15)
	for _, s := range pool {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == 15 {
			break
		}
	}
	return out
}

// Readability is a Flesch reading-ease rating of free-form text.
type Readability struct {
	Score int    `json:"score"` // clamped to 0-100
	Level string `json:"level"`
}

// ReadabilityOf scores text with the Flesch reading-ease formula. Empty or
// unsplittable text comes back as {0, "N/A"}.
func ReadabilityOf(text string) Readability {
	words := strings.Fields(text)
	sentences := 0
	for _, s := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if len(words) == 0 || sentences == 0 {
		return Readability{Score: 0, Level: "N/A"}
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}
	avgWords := float64(len(words)) / float64(sentences)
	avgSyllables := float64(syllables) / float64(len(words))
	score := int(math.Round(206.835 - 1.015*avgWords - 84.6*avgSyllables))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	level := "Very Difficult"
	switch {
	case score >= 90:
		level = "Very Easy"
	case score >= 80:
		level = "Easy"
	case score >= 70:
		level = "Fairly Easy"
	case score >= 60:
		level = "Standard"
	case score >= 50:
		level = "Fairly Difficult"
	case score >= 30:
		level = "Difficult"
	}
	return Readability{Score: score, Level: level}
}

var (
	sentenceSplit  = regexp.MustCompile(`[.!?]+`)
	nonLetters     = regexp.MustCompile(`[^a-z]`)
	silentEndings  = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	vowelGroups    = regexp.MustCompile(`[aeiouy]{1,2}`)
	leadingYPrefix = regexp.MustCompile(`^y`)
)

// countSyllables is a heuristic vowel-group count, good enough for a
// readability hint.
func countSyllables(word string) int {
	w := nonLetters.ReplaceAllString(strings.ToLower(word), "")
	if len(w) <= 3 {
		return 1
	}
	w = silentEndings.ReplaceAllString(w, "")
	w = leadingYPrefix.ReplaceAllString(w, "")
	if n := len(vowelGroups.FindAllString(w, -1)); n > 0 {
		return n
	}
	return 1
}

// WordCount totals the words in the document's prose fields: summary,
// experience and project descriptions, and education achievements.
func WordCount(doc *model.Document) int {
	total := len(strings.Fields(doc.Personal.Summary))
	for _, e := range doc.Experience {
		total += len(strings.Fields(e.Description))
	}
	for _, e := range doc.Education {
		total += len(strings.Fields(e.Achievements))
	}
	for _, e := range doc.Projects {
		total += len(strings.Fields(e.Description))
	}
	return total
}
