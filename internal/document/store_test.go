package document

import (
	"reflect"
	"testing"

	"resumely/internal/model"
)

func seedExperience(t *testing.T, s *Store, companies ...string) []string {
	t.Helper()
	ids := make([]string, len(companies))
	for i, c := range companies {
		ids[i] = s.AddEntry(model.SectionExperience, model.Entry{Company: c})
		if ids[i] == "" {
			t.Fatalf("AddEntry(%q) returned empty id", c)
		}
	}
	return ids
}

func experienceCompanies(s *Store) []string {
	entries := s.SectionEntries(model.SectionExperience)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Company
	}
	return out
}

func TestAddEntryAssignsUniqueIDs(t *testing.T) {
	s := NewStore(nil)
	ids := seedExperience(t, s, "A", "B", "C")

	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestReorderEntries(t *testing.T) {
	cases := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"first to last", 0, 2, []string{"B", "C", "A"}},
		{"last to first", 2, 0, []string{"C", "A", "B"}},
		{"middle down", 1, 2, []string{"A", "C", "B"}},
		{"same position", 1, 1, []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore(nil)
			seedExperience(t, s, "A", "B", "C")
			s.ReorderEntries(model.SectionExperience, tc.from, tc.to)
			if got := experienceCompanies(s); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("order = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestReorderOutOfRangeIsNoOp(t *testing.T) {
	s := NewStore(nil)
	seedExperience(t, s, "A", "B", "C")

	var fired int
	s.Subscribe(func(ChangeKind) { fired++ })

	for _, idx := range [][2]int{{-1, 0}, {0, 3}, {3, 0}, {0, -1}} {
		s.ReorderEntries(model.SectionExperience, idx[0], idx[1])
	}

	if fired != 0 {
		t.Errorf("out-of-range reorder notified %d times", fired)
	}
	if got := experienceCompanies(s); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("order changed: %v", got)
	}
}

func TestEntryIdentityStability(t *testing.T) {
	s := NewStore(nil)
	ids := seedExperience(t, s, "A", "B", "C")

	s.ReorderEntries(model.SectionExperience, 0, 2)
	s.UpdateEntry(model.SectionExperience, ids[0], map[string]interface{}{
		"company": "A2",
		"id":      "attempted-override",
	})

	entries := s.SectionEntries(model.SectionExperience)
	var found *model.Entry
	for i := range entries {
		if entries[i].ID == ids[0] {
			found = &entries[i]
		}
	}
	if found == nil {
		t.Fatalf("entry %q lost after reorder+update", ids[0])
	}
	if found.Company != "A2" {
		t.Errorf("patch not applied: company = %q", found.Company)
	}
}

func TestUpdateEntryMissingIDIsNoOp(t *testing.T) {
	s := NewStore(nil)
	seedExperience(t, s, "A")

	var fired int
	s.Subscribe(func(ChangeKind) { fired++ })
	s.UpdateEntry(model.SectionExperience, "no-such-id", map[string]interface{}{"company": "X"})

	if fired != 0 {
		t.Errorf("miss notified %d times", fired)
	}
	if got := experienceCompanies(s); got[0] != "A" {
		t.Errorf("document changed on miss: %v", got)
	}
}

func TestUpdateEntryPatchKeepsUnpatchedFields(t *testing.T) {
	s := NewStore(nil)
	id := s.AddEntry(model.SectionExperience, model.Entry{
		Company:  "Acme",
		Position: "Engineer",
	})

	s.UpdateEntry(model.SectionExperience, id, map[string]interface{}{"position": "Senior Engineer"})

	e := s.SectionEntries(model.SectionExperience)[0]
	if e.Company != "Acme" || e.Position != "Senior Engineer" {
		t.Errorf("got company=%q position=%q", e.Company, e.Position)
	}
}

func TestRemoveEntry(t *testing.T) {
	s := NewStore(nil)
	ids := seedExperience(t, s, "A", "B")

	s.RemoveEntry(model.SectionExperience, ids[0])
	if got := experienceCompanies(s); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("after remove: %v", got)
	}

	// removing an unknown id still notifies but changes nothing
	var fired int
	s.Subscribe(func(ChangeKind) { fired++ })
	s.RemoveEntry(model.SectionExperience, "gone")
	if fired != 1 {
		t.Errorf("remove notified %d times, want 1", fired)
	}
	if got := experienceCompanies(s); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("after miss remove: %v", got)
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := NewStore(nil)
	seedExperience(t, s, "A")

	doc := s.Document()
	doc.Personal.FirstName = "Mutated"
	doc.Experience[0].Company = "Mutated"

	entries := s.SectionEntries(model.SectionExperience)
	entries[0].Company = "AlsoMutated"

	if got := s.Personal().FirstName; got != "" {
		t.Errorf("document copy aliased personal: %q", got)
	}
	if got := experienceCompanies(s)[0]; got != "A" {
		t.Errorf("copies aliased live entries: %q", got)
	}
}

func TestChangeKinds(t *testing.T) {
	s := NewStore(nil)
	var kinds []ChangeKind
	s.Subscribe(func(k ChangeKind) { kinds = append(kinds, k) })

	s.AddEntry(model.SectionExperience, model.Entry{Company: "A"})
	s.UpdateSettings(map[string]interface{}{"accentColor": "#123456"})
	s.Replace(model.DefaultDocument())

	want := []ChangeKind{ChangeContent, ChangeSettings, ChangeContent}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("kinds = %v, want %v", kinds, want)
	}
}

func TestUpdateSettingsPatch(t *testing.T) {
	s := NewStore(nil)
	s.UpdateSettings(map[string]interface{}{"template": "ats", "fontSize": 14})

	got := s.Settings()
	if got.Template != "ats" || got.FontSize != 14 {
		t.Errorf("settings = %+v", got)
	}
	if got.AccentColor != model.DefaultAccentColor {
		t.Errorf("unpatched accentColor changed: %q", got.AccentColor)
	}
}

func TestUpdateFieldPersonal(t *testing.T) {
	s := NewStore(nil)
	s.UpdateField(model.SectionPersonal, "firstName", "Ada")
	s.UpdateField(model.SectionPersonal, "summary", "Pioneer.")

	p := s.Personal()
	if p.FirstName != "Ada" || p.Summary != "Pioneer." {
		t.Errorf("personal = %+v", p)
	}
}
