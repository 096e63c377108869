package model

import (
	"reflect"
	"testing"
)

func TestEntriesAddressesEverySection(t *testing.T) {
	doc := DefaultDocument()
	for _, sec := range RepeatableSections() {
		if doc.Entries(sec) == nil {
			t.Errorf("Entries(%q) = nil", sec)
		}
	}
	if doc.Entries(SectionPersonal) != nil {
		t.Error("personal addressed as a repeatable section")
	}
	if doc.Entries("bogus") != nil {
		t.Error("unknown section addressed")
	}
}

func TestDocumentCloneIsDeep(t *testing.T) {
	doc := DefaultDocument()
	doc.Experience = []Entry{{ID: "e1", Company: "Acme", Highlights: []string{"one"}}}

	clone := doc.Clone()
	clone.Experience[0].Company = "Mutated"
	clone.Experience[0].Highlights[0] = "mutated"
	clone.Settings.SectionsOrder[0] = "mutated"

	if doc.Experience[0].Company != "Acme" {
		t.Error("entry aliased between clone and original")
	}
	if doc.Experience[0].Highlights[0] != "one" {
		t.Error("highlights aliased between clone and original")
	}
	if doc.Settings.SectionsOrder[0] == "mutated" {
		t.Error("sectionsOrder aliased between clone and original")
	}
}

func TestDefaultEntryShapes(t *testing.T) {
	if got := DefaultEntry(SectionSkills).Level; got != DefaultSkillLevel {
		t.Errorf("skills default level = %d", got)
	}
	if got := DefaultEntry(SectionLanguages).Proficiency; got != "Intermediate" {
		t.Errorf("languages default proficiency = %q", got)
	}
	if DefaultEntry(SectionExperience).Highlights == nil {
		t.Error("experience default has nil highlights")
	}
	if !reflect.DeepEqual(DefaultEntry("bogus"), Entry{}) {
		t.Error("unknown section default not zero")
	}
}
