package render

import (
	"fmt"
	"strings"

	"resumely/internal/model"
)

// Shared section builders. Every builder returns "" for an empty section so
// themes omit the block entirely instead of emitting empty containers.

func section(title, body string) string {
	if body == "" {
		return ""
	}
	return fmt.Sprintf(
		`<div class="resume-section"><div class="resume-section-title">%s</div>%s</div>`,
		esc(title), body)
}

func renderHeader(p model.Personal, s model.Settings) string {
	var b strings.Builder
	b.WriteString(`<div class="resume-header">`)
	if p.Photo != "" && s.ShowPhoto {
		fmt.Fprintf(&b, `<img src="%s" class="resume-photo" alt="">`, esc(p.Photo))
	}
	fmt.Fprintf(&b, `<h1 class="resume-name">%s %s</h1>`, esc(p.FirstName), esc(p.LastName))
	if p.Title != "" {
		fmt.Fprintf(&b, `<div class="resume-title">%s</div>`, esc(p.Title))
	}
	contact := contactLine(p, " | ")
	if contact != "" {
		fmt.Fprintf(&b, `<div class="resume-contact">%s</div>`, contact)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func contactLine(p model.Personal, sep string) string {
	return joinNonEmpty(sep,
		p.Email, p.Phone, p.Location, displayHost(p.Website), p.LinkedIn)
}

func renderSummary(p model.Personal, title string) string {
	if p.Summary == "" {
		return ""
	}
	return section(title, fmt.Sprintf(`<p class="resume-summary">%s</p>`, esc(p.Summary)))
}

func renderExperience(entries []model.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(`<div class="resume-entry">`)
		fmt.Fprintf(&b,
			`<div class="resume-entry-header"><div><span class="resume-entry-title">%s</span>`,
			esc(e.Position))
		if e.Company != "" {
			fmt.Fprintf(&b, `<span class="resume-entry-subtitle"> at %s</span>`, esc(e.Company))
		}
		fmt.Fprintf(&b, `</div><span class="resume-entry-date">%s</span></div>`,
			dateRange(e.StartDate, e.EndDate, e.Current))
		if e.Location != "" {
			fmt.Fprintf(&b, `<div class="resume-entry-location">%s</div>`, esc(e.Location))
		}
		if e.Description != "" {
			fmt.Fprintf(&b, `<div class="resume-entry-description">%s</div>`,
				strings.ReplaceAll(esc(e.Description), "\n", "<br>"))
		}
		if len(e.Highlights) > 0 {
			b.WriteString(`<ul class="resume-entry-highlights">`)
			for _, h := range e.Highlights {
				fmt.Fprintf(&b, `<li>%s</li>`, esc(h))
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</div>`)
	}
	return section("Experience", b.String())
}

func renderEducation(entries []model.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(`<div class="resume-entry">`)
		fmt.Fprintf(&b,
			`<div class="resume-entry-header"><div><span class="resume-entry-title">%s</span>`,
			esc(e.Degree))
		if e.Field != "" {
			fmt.Fprintf(&b, `<span class="resume-entry-subtitle"> in %s</span>`, esc(e.Field))
		}
		fmt.Fprintf(&b, `</div><span class="resume-entry-date">%s</span></div>`,
			dateRange(e.StartDate, e.EndDate, e.Current))
		inst := esc(e.Institution)
		if e.Location != "" {
			inst += ", " + esc(e.Location)
		}
		if inst != "" {
			fmt.Fprintf(&b, `<div class="resume-entry-subtext">%s</div>`, inst)
		}
		if e.GPA != "" {
			fmt.Fprintf(&b, `<div class="resume-entry-subtext">GPA: %s</div>`, esc(e.GPA))
		}
		b.WriteString(`</div>`)
	}
	return section("Education", b.String())
}

// renderSkills supports the three shared presentations: "bars" proficiency
// meters, "tags" chips, and a plain list. Bar width maps level 1-5 onto
// 20%-100%.
func renderSkills(entries []model.Entry, style string) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	switch style {
	case "bars":
		for _, e := range entries {
			fmt.Fprintf(&b,
				`<div class="resume-skill-bar"><div class="resume-skill-bar-label">%s</div><div class="resume-skill-bar-track"><div class="resume-skill-bar-fill" style="width: %d%%;"></div></div></div>`,
				esc(e.Name), skillLevel(e)*20)
		}
	case "tags":
		b.WriteString(`<div class="resume-skills-grid">`)
		for _, e := range entries {
			fmt.Fprintf(&b, `<span class="resume-skill-tag">%s</span>`, esc(e.Name))
		}
		b.WriteString(`</div>`)
	default:
		b.WriteString(`<ul>`)
		for _, e := range entries {
			fmt.Fprintf(&b, `<li>%s</li>`, esc(e.Name))
		}
		b.WriteString(`</ul>`)
	}
	return section("Skills", b.String())
}

func renderProjects(entries []model.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(`<div class="resume-entry">`)
		fmt.Fprintf(&b,
			`<div class="resume-entry-header"><span class="resume-entry-title">%s</span><span class="resume-entry-date">%s</span></div>`,
			esc(e.Name), dateRange(e.StartDate, e.EndDate, e.Current))
		if e.Description != "" {
			fmt.Fprintf(&b, `<div class="resume-entry-description">%s</div>`, esc(e.Description))
		}
		if e.Technologies != "" {
			fmt.Fprintf(&b, `<div class="resume-entry-subtext">Technologies: %s</div>`, esc(e.Technologies))
		}
		if e.Link != "" {
			fmt.Fprintf(&b, `<div class="resume-entry-subtext">%s</div>`, esc(displayHost(e.Link)))
		}
		b.WriteString(`</div>`)
	}
	return section("Projects", b.String())
}

func renderCertifications(entries []model.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(`<div class="resume-entry">`)
		fmt.Fprintf(&b,
			`<div class="resume-entry-header"><span class="resume-entry-title">%s</span><span class="resume-entry-date">%s</span></div>`,
			esc(e.Name), esc(e.Date))
		if e.Issuer != "" {
			fmt.Fprintf(&b, `<div class="resume-entry-subtext">%s</div>`, esc(e.Issuer))
		}
		b.WriteString(`</div>`)
	}
	return section("Certifications", b.String())
}

func renderLanguages(entries []model.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		label := esc(e.Name)
		if e.Proficiency != "" {
			label += fmt.Sprintf(` <em class="resume-muted">(%s)</em>`, esc(e.Proficiency))
		}
		parts = append(parts, `<span>`+label+`</span>`)
	}
	return section("Languages",
		`<div class="resume-languages">`+strings.Join(parts, "")+`</div>`)
}

func renderAwards(entries []model.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(`<div class="resume-entry">`)
		fmt.Fprintf(&b,
			`<div class="resume-entry-header"><span class="resume-entry-title">%s</span><span class="resume-entry-date">%s</span></div>`,
			esc(firstNonEmpty(e.Title, e.Name)), esc(e.Date))
		if e.Issuer != "" {
			fmt.Fprintf(&b, `<div class="resume-entry-subtext">%s</div>`, esc(e.Issuer))
		}
		if e.Description != "" {
			fmt.Fprintf(&b, `<div class="resume-entry-description">%s</div>`, esc(e.Description))
		}
		b.WriteString(`</div>`)
	}
	return section("Awards & Achievements", b.String())
}

func renderReferences(entries []model.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="resume-references">`)
	for _, e := range entries {
		b.WriteString(`<div class="resume-reference">`)
		fmt.Fprintf(&b, `<div class="resume-entry-title">%s</div>`, esc(e.Name))
		role := esc(e.Position)
		if e.Company != "" {
			role += " at " + esc(e.Company)
		}
		if role != "" {
			fmt.Fprintf(&b, `<div class="resume-entry-subtext">%s</div>`, role)
		}
		contact := joinNonEmpty(" • ", e.Email, e.Phone)
		if contact != "" {
			fmt.Fprintf(&b, `<div class="resume-entry-subtext">%s</div>`, contact)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return section("References", b.String())
}

func renderCustomSections(entries []model.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		if e.Title == "" && e.Content == "" {
			continue
		}
		body := fmt.Sprintf(`<p>%s</p>`, strings.ReplaceAll(esc(e.Content), "\n", "<br>"))
		b.WriteString(section(firstNonEmpty(e.Title, "Additional"), body))
	}
	return b.String()
}
