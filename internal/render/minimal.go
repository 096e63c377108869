package render

import (
	"fmt"
	"strings"

	"resumely/internal/model"
)

type minimalTheme struct{}

func (minimalTheme) ID() string   { return "minimal" }
func (minimalTheme) Name() string { return "Minimal" }

func (minimalTheme) Render(doc *model.Document, s model.Settings) string {
	s = effective(s)
	p := doc.Personal
	var b strings.Builder
	fmt.Fprintf(&b,
		`<div class="resume-content resume-minimal" style="--accent: %s; font-family: %s; font-size: %dpt; border-left: 4px solid %s;">`,
		s.AccentColor, fontFamily(s.FontStyle), s.FontSize, s.AccentColor)

	fmt.Fprintf(&b, `<h1 class="resume-name">%s %s</h1>`, esc(p.FirstName), esc(p.LastName))
	if p.Title != "" {
		fmt.Fprintf(&b, `<div class="resume-title">%s</div>`, esc(p.Title))
	}
	contact := joinNonEmpty(" • ", p.Email, p.Phone, p.Location, displayHost(p.Website))
	if contact != "" {
		fmt.Fprintf(&b, `<div class="resume-contact">%s</div>`, contact)
	}
	if p.Summary != "" {
		fmt.Fprintf(&b, `<p class="resume-summary">%s</p>`, esc(p.Summary))
	}

	// experience entries carry the accent rule instead of section chrome
	if len(doc.Experience) > 0 {
		var body strings.Builder
		for _, e := range doc.Experience {
			fmt.Fprintf(&body, `<div class="resume-entry resume-entry-ruled">`)
			fmt.Fprintf(&body, `<div class="resume-entry-title">%s</div>`, esc(e.Position))
			meta := joinNonEmpty(" • ", e.Company, dateRange(e.StartDate, e.EndDate, e.Current))
			if meta != "" {
				fmt.Fprintf(&body, `<div class="resume-entry-subtext">%s</div>`, meta)
			}
			if e.Description != "" {
				fmt.Fprintf(&body, `<p class="resume-entry-description">%s</p>`, esc(e.Description))
			}
			body.WriteString(`</div>`)
		}
		b.WriteString(section("Experience", body.String()))
	}

	if len(doc.Education) > 0 {
		var body strings.Builder
		for _, e := range doc.Education {
			body.WriteString(`<div class="resume-entry">`)
			fmt.Fprintf(&body, `<strong>%s</strong>`, esc(e.Degree))
			if e.Field != "" {
				fmt.Fprintf(&body, ` in %s`, esc(e.Field))
			}
			meta := joinNonEmpty(" • ", e.Institution, dateRange(e.StartDate, e.EndDate, e.Current))
			if meta != "" {
				fmt.Fprintf(&body, `<br><span class="resume-entry-subtext">%s</span>`, meta)
			}
			body.WriteString(`</div>`)
		}
		b.WriteString(section("Education", body.String()))
	}

	if len(doc.Skills) > 0 {
		names := make([]string, 0, len(doc.Skills))
		for _, e := range doc.Skills {
			if e.Name != "" {
				names = append(names, esc(e.Name))
			}
		}
		b.WriteString(section("Skills", `<p>`+strings.Join(names, " • ")+`</p>`))
	}

	b.WriteString(renderProjects(doc.Projects))
	b.WriteString(renderCustomSections(doc.CustomSections))
	b.WriteString(`</div>`)
	return b.String()
}
