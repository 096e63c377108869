package render

import (
	"strings"
	"testing"

	"resumely/internal/model"
)

func sampleDocument() *model.Document {
	doc := model.DefaultDocument()
	doc.Personal = model.Personal{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Title:     "Software Engineer",
		Email:     "ada@example.com",
		Phone:     "+1 555 0100",
		Location:  "London",
		Website:   "https://www.example.co.uk/ada",
		Summary:   "Wrote the first program.",
	}
	doc.Experience = []model.Entry{{
		ID: "e1", Company: "Analytical Engines Ltd", Position: "Programmer",
		StartDate: "1842", Current: true,
		Description: "Compiled notes on the Engine.",
		Highlights:  []string{"Published Note G", "Invented looping"},
	}}
	doc.Education = []model.Entry{{
		ID: "ed1", Institution: "Home Tutoring", Degree: "Mathematics",
		StartDate: "1829", EndDate: "1835",
	}}
	doc.Skills = []model.Entry{{ID: "s1", Name: "Mathematics", Level: 5}}
	return doc
}

func TestRenderPurity(t *testing.T) {
	for _, info := range Templates() {
		t.Run(info.ID, func(t *testing.T) {
			docA, docB := sampleDocument(), sampleDocument()
			s := docA.Settings.Clone()

			outA := Render(docA, s)
			outB := Render(docB, docB.Settings.Clone())
			if outA != outB {
				t.Error("structurally equal inputs rendered differently")
			}

			again := Render(docA, s)
			if again != outA {
				t.Error("second render of same input differs")
			}
		})
	}
}

func TestRenderDoesNotMutateInputs(t *testing.T) {
	doc := sampleDocument()
	doc.Settings.AccentColor = ""
	doc.Settings.FontSize = 0
	before := doc.Clone()
	s := doc.Settings.Clone()

	for _, info := range Templates() {
		s.Template = info.ID
		Render(doc, s)
	}

	if doc.Personal != before.Personal ||
		doc.Settings.AccentColor != "" || doc.Settings.FontSize != 0 {
		t.Error("render mutated the document or settings")
	}
}

func TestRenderEscapesUserText(t *testing.T) {
	doc := sampleDocument()
	doc.Personal.Summary = "<script>alert(1)</script>"
	doc.Personal.FirstName = `Ada "the first" & co`

	for _, info := range Templates() {
		t.Run(info.ID, func(t *testing.T) {
			s := doc.Settings.Clone()
			s.Template = info.ID
			out := Render(doc, s)

			if strings.Contains(out, "<script>") {
				t.Error("unescaped script tag in output")
			}
			if !strings.Contains(out, "&lt;script&gt;") {
				t.Error("escaped summary missing from output")
			}
			if !strings.Contains(out, "&quot;the first&quot; &amp; co") {
				t.Error("quotes and ampersand not escaped")
			}
		})
	}
}

func TestEmptyDocumentOmitsSectionHeaders(t *testing.T) {
	doc := model.DefaultDocument()

	for _, info := range Templates() {
		t.Run(info.ID, func(t *testing.T) {
			s := doc.Settings.Clone()
			s.Template = info.ID
			out := Render(doc, s)

			for _, header := range []string{
				"Experience", "Education", "Skills", "Projects",
				"Certifications", "Languages", "Awards", "References",
			} {
				if strings.Contains(out, header) {
					t.Errorf("empty document rendered %q header", header)
				}
			}
		})
	}
}

func TestUnknownTemplateFallsBack(t *testing.T) {
	doc := sampleDocument()
	unknown := doc.Settings.Clone()
	unknown.Template = "no-such-template"
	fallback := doc.Settings.Clone()
	fallback.Template = model.DefaultTemplate

	if Render(doc, unknown) != Render(doc, fallback) {
		t.Error("unknown template did not fall back to the default theme")
	}
	if got := Lookup("no-such-template").ID(); got != model.DefaultTemplate {
		t.Errorf("Lookup fallback = %q", got)
	}
}

func TestAccentColorDefault(t *testing.T) {
	doc := sampleDocument()
	s := doc.Settings.Clone()
	s.AccentColor = ""

	out := Render(doc, s)
	if !strings.Contains(out, model.DefaultAccentColor) {
		t.Error("default accent color missing when accentColor is empty")
	}
}

func TestCurrentEntryRendersPresent(t *testing.T) {
	doc := sampleDocument()
	out := Render(doc, doc.Settings)
	if !strings.Contains(out, "Present") {
		t.Error("ongoing entry did not render Present")
	}
}

func TestTemplatesSorted(t *testing.T) {
	infos := Templates()
	if len(infos) != 4 {
		t.Fatalf("registered %d themes, want 4", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i].ID <= infos[i-1].ID {
			t.Fatalf("templates not sorted: %v", infos)
		}
	}
}

func TestDateRange(t *testing.T) {
	cases := []struct {
		start, end string
		current    bool
		want       string
	}{
		{"2020", "2022", false, "2020 - 2022"},
		{"2020", "", false, "2020"},
		{"2020", "2022", true, "2020 - Present"},
		{"2020", "", true, "2020 - Present"},
		{"", "2022", false, ""},
		{"", "", true, ""},
	}
	for _, tc := range cases {
		if got := dateRange(tc.start, tc.end, tc.current); got != tc.want {
			t.Errorf("dateRange(%q,%q,%v) = %q, want %q", tc.start, tc.end, tc.current, got, tc.want)
		}
	}
}

func TestAdjustColor(t *testing.T) {
	cases := []struct {
		in     string
		amount int
		want   string
	}{
		{"#000000", 16, "#101010"},
		{"#ffffff", 16, "#ffffff"},
		{"#ffffff", -16, "#efefef"},
		{"#10B981", 0, "#10b981"},
		{"not-a-color", 10, "not-a-color"},
		{"#fff", 10, "#fff"},
	}
	for _, tc := range cases {
		if got := adjustColor(tc.in, tc.amount); got != tc.want {
			t.Errorf("adjustColor(%q,%d) = %q, want %q", tc.in, tc.amount, got, tc.want)
		}
	}
}

func TestDisplayHost(t *testing.T) {
	cases := []struct{ in, want string }{
		{"https://www.example.co.uk/ada", "example.co.uk"},
		{"http://github.com/ada", "github.com"},
		{"linkedin.com/in/ada", "linkedin.com"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := displayHost(tc.in); got != tc.want {
			t.Errorf("displayHost(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSkillLevelAffectsBarWidth(t *testing.T) {
	render := func(level int) string {
		doc := sampleDocument()
		doc.Skills = []model.Entry{{ID: "s1", Name: "Mathematics", Level: level}}
		s := doc.Settings.Clone()
		s.Template = "modern"
		return Render(doc, s)
	}

	for _, tc := range []struct {
		level int
		width string
	}{
		{1, "width: 20%"},
		{3, "width: 60%"},
		{5, "width: 100%"},
		{0, "width: 60%"}, // absent level defaults to 3
	} {
		if out := render(tc.level); !strings.Contains(out, tc.width) {
			t.Errorf("level %d: output missing %q", tc.level, tc.width)
		}
	}

	if render(1) == render(5) {
		t.Error("level 1 and level 5 rendered identically")
	}
}

func TestSkillLevelBounds(t *testing.T) {
	for _, tc := range []struct{ in, want int }{
		{0, model.DefaultSkillLevel}, {1, 1}, {5, 5}, {6, model.DefaultSkillLevel}, {-1, model.DefaultSkillLevel},
	} {
		if got := skillLevel(model.Entry{Level: tc.in}); got != tc.want {
			t.Errorf("skillLevel(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
