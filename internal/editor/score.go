package editor

import "resumely/internal/model"

// ATSScore rates a document 0-100 for applicant-tracking-system
// friendliness: contact completeness, dated experience with substantive
// descriptions, education, and section coverage. Absent fields simply score
// zero; nothing here errors.
func ATSScore(doc *model.Document) int {
	score := 0
	p := doc.Personal
	if p.FirstName != "" && p.LastName != "" {
		score += 4
	}
	if p.Email != "" {
		score += 4
	}
	if p.Phone != "" {
		score += 4
	}
	if p.Location != "" {
		score += 4
	}
	if len(p.Summary) > 50 {
		score += 4
	}

	if len(doc.Experience) > 0 {
		score += 10
		described, dated := true, true
		for _, e := range doc.Experience {
			if len(e.Description) <= 20 {
				described = false
			}
			if e.StartDate == "" {
				dated = false
			}
		}
		if described {
			score += 10
		}
		if dated {
			score += 10
		}
	}

	if len(doc.Education) > 0 {
		score += 10
		complete := true
		for _, e := range doc.Education {
			if e.Degree == "" || e.Institution == "" {
				complete = false
			}
		}
		if complete {
			score += 10
		}
	}

	switch n := len(doc.Skills); {
	case n >= 5:
		score += 15
	case n >= 3:
		score += 10
	case n > 0:
		score += 5
	}

	if len(doc.Projects) > 0 {
		score += 5
	}
	if len(doc.Certifications) > 0 {
		score += 5
	}
	if len(doc.Languages) > 0 {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}

// Tip is one improvement suggestion for the editor's sidebar.
type Tip struct {
	Type    string        `json:"type"` // warning, info, success
	Section model.Section `json:"section"`
	Message string        `json:"message"`
}

// Tips lists suggestions for strengthening the document.
func Tips(doc *model.Document) []Tip {
	var tips []Tip
	p := doc.Personal

	if len(p.Summary) < 50 {
		tips = append(tips, Tip{"warning", model.SectionPersonal,
			"Add a professional summary (50+ chars) to make a strong first impression."})
	}
	if len(p.Summary) > 300 {
		tips = append(tips, Tip{"warning", model.SectionPersonal,
			"Consider keeping your summary under 300 characters."})
	}
	if p.LinkedIn == "" {
		tips = append(tips, Tip{"info", model.SectionPersonal,
			"Add your LinkedIn profile to increase credibility."})
	}
	if len(doc.Experience) == 0 {
		tips = append(tips, Tip{"warning", model.SectionExperience,
			"Add work experience to strengthen your resume."})
	}
	if len(doc.Skills) < 5 {
		tips = append(tips, Tip{"info", model.SectionSkills,
			"Add more skills (aim for 5-10) to highlight your capabilities."})
	}
	if len(doc.Education) == 0 {
		tips = append(tips, Tip{"info", model.SectionEducation,
			"Add your educational background."})
	}
	if len(doc.Projects) == 0 {
		tips = append(tips, Tip{"success", model.SectionProjects,
			"Add projects to showcase practical skills."})
	}
	return tips
}
