// Package render turns a resume document and presentation settings into
// presentational markup. Rendering is pure: identical inputs produce
// identical output, inputs are never mutated and no I/O happens.
package render

import (
	"sort"

	"resumely/internal/model"
)

// Theme is one template implementation. Themes share no behavior beyond this
// contract; layout decisions are entirely theirs, but every theme escapes
// user text, omits empty sections and tolerates absent optional fields.
type Theme interface {
	ID() string
	Name() string
	Render(doc *model.Document, s model.Settings) string
}

var registry = map[string]Theme{}

func register(t Theme) { registry[t.ID()] = t }

func init() {
	register(modernTheme{})
	register(classicTheme{})
	register(minimalTheme{})
	register(atsTheme{})
}

// Lookup resolves a template id to a theme. Unknown ids fall back to the
// default theme rather than failing: a stale persisted template name must
// never break rendering.
func Lookup(id string) Theme {
	if t, ok := registry[id]; ok {
		return t
	}
	return registry[model.DefaultTemplate]
}

// Render dispatches to the theme selected by settings.Template.
func Render(doc *model.Document, s model.Settings) string {
	return Lookup(s.Template).Render(doc, s)
}

// TemplateInfo describes a registered theme for pickers.
type TemplateInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Templates lists the registered themes, sorted by id.
func Templates() []TemplateInfo {
	out := make([]TemplateInfo, 0, len(registry))
	for _, t := range registry {
		out = append(out, TemplateInfo{ID: t.ID(), Name: t.Name()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
