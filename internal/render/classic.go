package render

import (
	"fmt"
	"strings"

	"resumely/internal/model"
)

type classicTheme struct{}

func (classicTheme) ID() string   { return "classic" }
func (classicTheme) Name() string { return "Classic" }

func (classicTheme) Render(doc *model.Document, s model.Settings) string {
	s = effective(s)
	p := doc.Personal
	var b strings.Builder
	fmt.Fprintf(&b,
		`<div class="resume-content resume-classic" style="--accent: %s; font-family: Georgia, serif; font-size: %dpt;">`,
		s.AccentColor, s.FontSize)

	// centered double-ruled header
	b.WriteString(`<div class="resume-header resume-header-ruled">`)
	fmt.Fprintf(&b, `<h1 class="resume-name">%s %s</h1>`, esc(p.FirstName), esc(p.LastName))
	if p.Title != "" {
		fmt.Fprintf(&b, `<div class="resume-title resume-title-italic">%s</div>`, esc(p.Title))
	}
	contact := joinNonEmpty(" | ", p.Email, p.Phone, p.Location)
	if contact != "" {
		fmt.Fprintf(&b, `<div class="resume-contact">%s</div>`, contact)
	}
	b.WriteString(`</div>`)

	b.WriteString(renderSummary(p, "Objective"))
	b.WriteString(renderExperience(doc.Experience))
	b.WriteString(renderEducation(doc.Education))
	b.WriteString(renderSkills(doc.Skills, "list"))
	b.WriteString(renderProjects(doc.Projects))
	b.WriteString(renderCertifications(doc.Certifications))
	b.WriteString(renderLanguages(doc.Languages))
	b.WriteString(renderAwards(doc.Awards))
	b.WriteString(renderReferences(doc.References))
	b.WriteString(renderCustomSections(doc.CustomSections))
	b.WriteString(`</div>`)
	return b.String()
}
