package render

import (
	"fmt"
	"strings"

	"resumely/internal/model"
)

// atsTheme is the machine-readable layout: plain fonts, no accent color, no
// photo, uppercase ruled section headings.
type atsTheme struct{}

func (atsTheme) ID() string   { return "ats" }
func (atsTheme) Name() string { return "ATS-Friendly" }

func atsSection(title, body string) string {
	if body == "" {
		return ""
	}
	return fmt.Sprintf(
		`<div class="resume-section"><div class="resume-section-title resume-section-title-ats">%s</div>%s</div>`,
		esc(title), body)
}

func (atsTheme) Render(doc *model.Document, s model.Settings) string {
	s = effective(s)
	p := doc.Personal
	var b strings.Builder
	fmt.Fprintf(&b,
		`<div class="resume-content resume-ats" style="font-family: Arial, sans-serif; font-size: %dpt;">`,
		s.FontSize)

	b.WriteString(`<div class="resume-header resume-header-centered">`)
	fmt.Fprintf(&b, `<h1 class="resume-name">%s %s</h1>`, esc(p.FirstName), esc(p.LastName))
	contact := joinNonEmpty(" | ", p.Email, p.Phone, p.Location, p.LinkedIn)
	if contact != "" {
		fmt.Fprintf(&b, `<div class="resume-contact">%s</div>`, contact)
	}
	b.WriteString(`</div>`)

	if p.Summary != "" {
		b.WriteString(atsSection("SUMMARY", fmt.Sprintf(`<p>%s</p>`, esc(p.Summary))))
	}

	if len(doc.Experience) > 0 {
		var body strings.Builder
		for _, e := range doc.Experience {
			body.WriteString(`<div class="resume-entry">`)
			fmt.Fprintf(&body,
				`<div class="resume-entry-header"><strong>%s</strong><span>%s</span></div>`,
				esc(e.Position), dateRange(e.StartDate, e.EndDate, e.Current))
			company := esc(e.Company)
			if e.Location != "" {
				company += ", " + esc(e.Location)
			}
			if company != "" {
				fmt.Fprintf(&body, `<div>%s</div>`, company)
			}
			if e.Description != "" {
				fmt.Fprintf(&body, `<p>%s</p>`, esc(e.Description))
			}
			body.WriteString(`</div>`)
		}
		b.WriteString(atsSection("EXPERIENCE", body.String()))
	}

	if len(doc.Education) > 0 {
		var body strings.Builder
		for _, e := range doc.Education {
			body.WriteString(`<div class="resume-entry">`)
			degree := esc(e.Degree)
			if e.Field != "" {
				degree += " in " + esc(e.Field)
			}
			fmt.Fprintf(&body,
				`<div class="resume-entry-header"><strong>%s</strong><span>%s</span></div>`,
				degree, dateRange(e.StartDate, e.EndDate, e.Current))
			if e.Institution != "" {
				fmt.Fprintf(&body, `<div>%s</div>`, esc(e.Institution))
			}
			body.WriteString(`</div>`)
		}
		b.WriteString(atsSection("EDUCATION", body.String()))
	}

	if len(doc.Skills) > 0 {
		names := make([]string, 0, len(doc.Skills))
		for _, e := range doc.Skills {
			if e.Name != "" {
				names = append(names, esc(e.Name))
			}
		}
		b.WriteString(atsSection("SKILLS", `<p>`+strings.Join(names, ", ")+`</p>`))
	}

	if len(doc.Certifications) > 0 {
		var body strings.Builder
		for _, e := range doc.Certifications {
			line := esc(e.Name)
			if e.Issuer != "" {
				line += " - " + esc(e.Issuer)
			}
			if e.Date != "" {
				line += " (" + esc(e.Date) + ")"
			}
			fmt.Fprintf(&body, `<div>%s</div>`, line)
		}
		b.WriteString(atsSection("CERTIFICATIONS", body.String()))
	}

	b.WriteString(`</div>`)
	return b.String()
}
