package model

// Go models for the resume document. The same shapes are described by
// schema/resume.schema.json, which is used to validate imported files.

// Personal is the singleton header section of a document.
type Personal struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Website   string `json:"website"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Photo     string `json:"photo,omitempty"`
	Summary   string `json:"summary"`
}

// Entry is one element of a repeatable section. Sections use overlapping
// subsets of these fields; the schema pins down which subset belongs to which
// section, so a single record type carries all of them with omitempty.
type Entry struct {
	ID string `json:"id"`

	// experience / education
	Company      string   `json:"company,omitempty"`
	Position     string   `json:"position,omitempty"`
	Institution  string   `json:"institution,omitempty"`
	Degree       string   `json:"degree,omitempty"`
	Field        string   `json:"field,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current,omitempty"`
	GPA          string   `json:"gpa,omitempty"`
	Achievements string   `json:"achievements,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`

	// skills / languages
	Name        string `json:"name,omitempty"`
	Level       int    `json:"level,omitempty"`
	Category    string `json:"category,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`

	// projects
	Technologies string `json:"technologies,omitempty"`
	Link         string `json:"link,omitempty"`

	// certifications
	Issuer        string `json:"issuer,omitempty"`
	Date          string `json:"date,omitempty"`
	ExpiryDate    string `json:"expiryDate,omitempty"`
	CredentialID  string `json:"credentialId,omitempty"`
	CredentialURL string `json:"credentialUrl,omitempty"`

	// awards / custom sections
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`

	// references
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship,omitempty"`

	Description string `json:"description,omitempty"`
}

// Settings is the presentation configuration of a document. Settings changes
// are excluded from undo history (see document.Store).
type Settings struct {
	Template      string   `json:"template"`
	AccentColor   string   `json:"accentColor"`
	FontStyle     string   `json:"fontStyle"`
	FontSize      int      `json:"fontSize"`
	Spacing       int      `json:"spacing"`
	ShowPhoto     bool     `json:"showPhoto"`
	SectionsOrder []string `json:"sectionsOrder"`
}

// Document is the root aggregate. It is held exactly once by a document.Store
// and mutated only through the store's operation set.
type Document struct {
	Personal       Personal `json:"personal"`
	Experience     []Entry  `json:"experience"`
	Education      []Entry  `json:"education"`
	Skills         []Entry  `json:"skills"`
	Projects       []Entry  `json:"projects"`
	Certifications []Entry  `json:"certifications"`
	Languages      []Entry  `json:"languages"`
	Awards         []Entry  `json:"awards"`
	References     []Entry  `json:"references"`
	CustomSections []Entry  `json:"customSections"`
	Settings       Settings `json:"settings"`
}

// Section names address the repeatable sections (and "personal") by string
// key, mirroring how the persisted JSON is shaped.
type Section string

const (
	SectionPersonal       Section = "personal"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionLanguages      Section = "languages"
	SectionAwards         Section = "awards"
	SectionReferences     Section = "references"
	SectionCustomSections Section = "customSections"
)

// RepeatableSections lists every section holding an ordered entry sequence,
// in canonical display order.
func RepeatableSections() []Section {
	return []Section{
		SectionExperience, SectionEducation, SectionSkills, SectionProjects,
		SectionCertifications, SectionLanguages, SectionAwards,
		SectionReferences, SectionCustomSections,
	}
}

// Entries returns a pointer to the entry slice backing the named section, or
// nil when the name does not address a repeatable section.
func (d *Document) Entries(s Section) *[]Entry {
	switch s {
	case SectionExperience:
		return &d.Experience
	case SectionEducation:
		return &d.Education
	case SectionSkills:
		return &d.Skills
	case SectionProjects:
		return &d.Projects
	case SectionCertifications:
		return &d.Certifications
	case SectionLanguages:
		return &d.Languages
	case SectionAwards:
		return &d.Awards
	case SectionReferences:
		return &d.References
	case SectionCustomSections:
		return &d.CustomSections
	}
	return nil
}

const (
	DefaultTemplate    = "modern"
	DefaultAccentColor = "#10B981"
	DefaultFontStyle   = "professional"
	DefaultFontSize    = 12
	DefaultSpacing     = 2
	DefaultSkillLevel  = 3
)

// DefaultSettings returns the presentation defaults of a fresh document.
func DefaultSettings() Settings {
	return Settings{
		Template:    DefaultTemplate,
		AccentColor: DefaultAccentColor,
		FontStyle:   DefaultFontStyle,
		FontSize:    DefaultFontSize,
		Spacing:     DefaultSpacing,
		ShowPhoto:   true,
		SectionsOrder: []string{
			"personal", "summary", "experience", "education", "skills",
			"projects", "certifications", "languages", "awards", "references",
		},
	}
}

// DefaultDocument returns the schema default: all keys present, all
// repeatable sections empty. Loads from storage are merged against this.
func DefaultDocument() *Document {
	return &Document{
		Experience:     []Entry{},
		Education:      []Entry{},
		Skills:         []Entry{},
		Projects:       []Entry{},
		Certifications: []Entry{},
		Languages:      []Entry{},
		Awards:         []Entry{},
		References:     []Entry{},
		CustomSections: []Entry{},
		Settings:       DefaultSettings(),
	}
}

// DefaultEntry returns the blank entry shape for a section, used by editors
// to seed a new row. The zero Entry is returned for unknown sections.
func DefaultEntry(s Section) Entry {
	switch s {
	case SectionSkills:
		return Entry{Level: DefaultSkillLevel}
	case SectionLanguages:
		return Entry{Proficiency: "Intermediate"}
	case SectionExperience, SectionEducation:
		return Entry{Highlights: []string{}}
	}
	return Entry{}
}

// Clone returns a deep, independent copy of the entry.
func (e Entry) Clone() Entry {
	out := e
	if e.Highlights != nil {
		out.Highlights = append([]string(nil), e.Highlights...)
	}
	return out
}

// Clone returns a deep, independent copy of the settings.
func (s Settings) Clone() Settings {
	out := s
	if s.SectionsOrder != nil {
		out.SectionsOrder = append([]string(nil), s.SectionsOrder...)
	}
	return out
}

// Clone returns a deep, independent copy of the document. Held copies must be
// immune to later edits of the live document, so every slice is re-allocated.
func (d *Document) Clone() *Document {
	out := &Document{Personal: d.Personal, Settings: d.Settings.Clone()}
	for _, s := range RepeatableSections() {
		src := *d.Entries(s)
		dst := make([]Entry, len(src))
		for i, e := range src {
			dst[i] = e.Clone()
		}
		*out.Entries(s) = dst
	}
	return out
}
