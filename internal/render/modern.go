package render

import (
	"fmt"
	"strings"

	"resumely/internal/model"
)

// modernTheme is the default theme and the reference implementation of the
// rendering contract.
type modernTheme struct{}

func (modernTheme) ID() string   { return "modern" }
func (modernTheme) Name() string { return "Modern" }

func (modernTheme) Render(doc *model.Document, s model.Settings) string {
	s = effective(s)
	var b strings.Builder
	fmt.Fprintf(&b,
		`<div class="resume-content resume-modern" style="--accent: %s; font-family: %s; font-size: %dpt;">`,
		s.AccentColor, fontFamily(s.FontStyle), s.FontSize)
	b.WriteString(renderHeader(doc.Personal, s))
	b.WriteString(renderSummary(doc.Personal, "Professional Summary"))
	b.WriteString(renderExperience(doc.Experience))
	b.WriteString(renderEducation(doc.Education))
	b.WriteString(renderSkills(doc.Skills, "bars"))
	b.WriteString(renderProjects(doc.Projects))
	b.WriteString(renderCertifications(doc.Certifications))
	b.WriteString(renderLanguages(doc.Languages))
	b.WriteString(renderAwards(doc.Awards))
	b.WriteString(renderReferences(doc.References))
	b.WriteString(renderCustomSections(doc.CustomSections))
	b.WriteString(`</div>`)
	return b.String()
}
