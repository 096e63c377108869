package editor

import (
	"strings"
	"testing"

	"resumely/internal/model"
	"resumely/internal/persist"
)

func newTestSession() (*Session, *persist.ManualScheduler) {
	sched := persist.NewManualScheduler()
	return NewSession(Options{Scheduler: sched}), sched
}

func TestSessionStartsFromDefault(t *testing.T) {
	s, _ := newTestSession()
	doc := s.Document()
	if doc.Settings.Template != model.DefaultTemplate {
		t.Errorf("template = %q", doc.Settings.Template)
	}
	if len(doc.Experience) != 0 {
		t.Errorf("fresh session has %d experience entries", len(doc.Experience))
	}
	if s.CanUndo() || s.CanRedo() {
		t.Error("fresh session has undo/redo available")
	}
}

func TestSessionResumesFromStorage(t *testing.T) {
	storage := persist.NewMemStorage()

	first := NewSession(Options{Storage: storage, Scheduler: persist.NewManualScheduler()})
	first.ReplacePersonal(model.Personal{FirstName: "Ada"})
	if !first.SaveNow() {
		t.Fatal("save failed")
	}

	second := NewSession(Options{Storage: storage, Scheduler: persist.NewManualScheduler()})
	if got := second.Personal().FirstName; got != "Ada" {
		t.Errorf("resumed firstName = %q", got)
	}
}

func TestRenderHookFiresOnMutations(t *testing.T) {
	s, _ := newTestSession()

	var renders []string
	s.OnRender(func(markup string) { renders = append(renders, markup) })

	id := s.AddEntry(model.SectionExperience, model.Entry{Company: "Acme", Position: "Engineer"})
	s.UpdateSettings(map[string]interface{}{"template": "ats"})
	s.UpdateEntry(model.SectionExperience, id, map[string]interface{}{"position": "Lead"})
	s.Undo()

	if len(renders) != 4 {
		t.Fatalf("render hook fired %d times, want 4", len(renders))
	}
	if !strings.Contains(renders[0], "Acme") {
		t.Error("first render missing new entry")
	}
	if !strings.Contains(renders[2], "Lead") {
		t.Error("render after update missing patched field")
	}
	if strings.Contains(renders[3], "Lead") {
		t.Error("render after undo still shows undone edit")
	}
}

func TestRenderUsesDocumentTemplate(t *testing.T) {
	s, _ := newTestSession()
	s.ReplacePersonal(model.Personal{FirstName: "Ada", Summary: "Summary text."})

	modern := s.Render()
	s.UpdateSettings(map[string]interface{}{"template": "ats"})
	ats := s.Render()

	if modern == ats {
		t.Error("template switch did not change rendered output")
	}
}

func TestResetClearsDocumentAndHistory(t *testing.T) {
	s, _ := newTestSession()
	s.AddEntry(model.SectionExperience, model.Entry{Company: "A"})
	s.ReplacePersonal(model.Personal{FirstName: "Ada"})

	s.Reset()

	if got := s.Personal().FirstName; got != "" {
		t.Errorf("personal survived reset: %q", got)
	}
	if len(s.Section(model.SectionExperience)) != 0 {
		t.Error("entries survived reset")
	}
	if s.CanUndo() || s.CanRedo() {
		t.Error("history survived reset")
	}
}

func TestSnapshotRoundTripThroughSession(t *testing.T) {
	s, _ := newTestSession()
	s.ReplacePersonal(model.Personal{FirstName: "Ada", LastName: "Lovelace"})
	id, ok := s.SaveSnapshot("")
	if !ok {
		t.Fatal("snapshot save failed")
	}

	s.ReplacePersonal(model.Personal{FirstName: "Someone", LastName: "Else"})

	if !s.LoadSnapshot(id) {
		t.Fatal("snapshot load failed")
	}
	if got := s.Personal().FirstName; got != "Ada" {
		t.Errorf("after snapshot load firstName = %q", got)
	}

	// loading a snapshot is an undoable content change
	if !s.Undo() {
		t.Fatal("undo after snapshot load failed")
	}
	if got := s.Personal().FirstName; got != "Someone" {
		t.Errorf("undo did not restore pre-load state: %q", got)
	}

	if s.LoadSnapshot("missing") {
		t.Error("unknown snapshot id loaded")
	}
}

func TestImportFailureLeavesSessionUntouched(t *testing.T) {
	s, _ := newTestSession()
	s.ReplacePersonal(model.Personal{FirstName: "Keep"})

	if err := s.Import([]byte("not json")); err == nil {
		t.Fatal("import accepted junk")
	}
	if got := s.Personal().FirstName; got != "Keep" {
		t.Errorf("document changed on failed import: %q", got)
	}
}

func TestAutoSaveThroughSession(t *testing.T) {
	storage := persist.NewMemStorage()
	sched := persist.NewManualScheduler()
	s := NewSession(Options{Storage: storage, Scheduler: sched})

	var outcomes []bool
	s.OnAutoSave(func(ok bool) { outcomes = append(outcomes, ok) })

	s.AddEntry(model.SectionExperience, model.Entry{Company: "Acme"})
	s.AddEntry(model.SectionExperience, model.Entry{Company: "Globex"})
	sched.Fire()

	if len(outcomes) != 1 || !outcomes[0] {
		t.Fatalf("autosave outcomes = %v, want one success", outcomes)
	}
	if doc := persist.LoadDocument(storage); doc == nil || len(doc.Experience) != 2 {
		t.Error("coalesced autosave did not persist both entries")
	}
}

func TestATSScore(t *testing.T) {
	empty := model.DefaultDocument()
	if got := ATSScore(empty); got != 0 {
		t.Errorf("empty document scores %d", got)
	}

	doc := model.DefaultDocument()
	doc.Personal = model.Personal{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Phone: "+1", Location: "London",
		Summary: strings.Repeat("Experienced engineer. ", 4),
	}
	doc.Experience = []model.Entry{{
		Company: "Acme", Position: "Engineer", StartDate: "2020",
		Description: "Led a team building large distributed systems.",
	}}
	doc.Education = []model.Entry{{Institution: "MIT", Degree: "BSc"}}
	doc.Skills = []model.Entry{
		{Name: "Go"}, {Name: "SQL"}, {Name: "K8s"}, {Name: "Rust"}, {Name: "TypeScript"},
	}
	doc.Projects = []model.Entry{{Name: "Engine"}}
	doc.Certifications = []model.Entry{{Name: "Cert"}}
	doc.Languages = []model.Entry{{Name: "English"}}

	// 5*4 contact + 30 experience + 20 education + 15 skills + 15 extras
	if got := ATSScore(doc); got != 100 {
		t.Errorf("complete document scores %d, want 100", got)
	}

	doc.Experience[0].Description = "short"
	if got := ATSScore(doc); got != 90 {
		t.Errorf("thin description scores %d, want 90", got)
	}
}

func TestTips(t *testing.T) {
	empty := model.DefaultDocument()
	tips := Tips(empty)

	bySection := map[model.Section][]Tip{}
	for _, tip := range tips {
		bySection[tip.Section] = append(bySection[tip.Section], tip)
	}
	if len(bySection[model.SectionExperience]) == 0 {
		t.Error("no experience tip for empty document")
	}
	if len(bySection[model.SectionSkills]) == 0 {
		t.Error("no skills tip for empty document")
	}

	full := model.DefaultDocument()
	full.Personal.Summary = strings.Repeat("Seasoned engineer. ", 4)
	full.Personal.LinkedIn = "linkedin.com/in/ada"
	full.Experience = []model.Entry{{Company: "Acme"}}
	full.Education = []model.Entry{{Institution: "MIT"}}
	full.Projects = []model.Entry{{Name: "Engine"}}
	full.Skills = []model.Entry{
		{Name: "Go"}, {Name: "SQL"}, {Name: "K8s"}, {Name: "Rust"}, {Name: "TS"},
	}
	if got := Tips(full); len(got) != 0 {
		t.Errorf("complete document still has tips: %+v", got)
	}
}
