package content

import (
	"encoding/json"
	"testing"
)

func TestEntryUnmarshalString(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`"Go"`), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if e.Name != "Go" || e.IconURL != "" {
		t.Errorf("unexpected entry: %+v", e)
	}
}

func TestEntryUnmarshalObject(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"name":"Go","iconUrl":"https://x/go.png"}`), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if e.Name != "Go" || e.IconURL != "https://x/go.png" {
		t.Errorf("unexpected entry: %+v", e)
	}
}

func TestEntryStringAndObjectAreEquivalent(t *testing.T) {
	var bare, obj Entry
	json.Unmarshal([]byte(`"Python"`), &bare)
	json.Unmarshal([]byte(`{"name":"Python"}`), &obj)
	if bare != obj {
		t.Errorf("bare string and icon-less object must normalize identically: %+v vs %+v", bare, obj)
	}
}

func TestEntryMarshal(t *testing.T) {
	plain, err := json.Marshal(Entry{Name: "Go"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(plain) != `"Go"` {
		t.Errorf("icon-less entry should marshal to a bare string, got %s", plain)
	}

	withIcon, err := json.Marshal(Entry{Name: "Go", IconURL: "https://x/go.png"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(withIcon) != `{"name":"Go","iconUrl":"https://x/go.png"}` {
		t.Errorf("unexpected object form: %s", withIcon)
	}
}

func TestSkillGroupsPreserveOrder(t *testing.T) {
	raw := []byte(`{"zeta":["A"],"alpha":["B","C"],"mid":[{"name":"D","iconUrl":"u"}]}`)

	var groups SkillGroups
	if err := json.Unmarshal(raw, &groups); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := []string{"zeta", "alpha", "mid"}
	if len(groups) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(groups))
	}
	for i, cat := range want {
		if groups[i].Category != cat {
			t.Errorf("group %d: expected %q, got %q", i, cat, groups[i].Category)
		}
	}
	if len(groups[1].Entries) != 2 || groups[1].Entries[0].Name != "B" {
		t.Errorf("unexpected alpha entries: %+v", groups[1].Entries)
	}
	if groups[2].Entries[0].IconURL != "u" {
		t.Errorf("expected icon to survive, got %+v", groups[2].Entries[0])
	}
}

func TestSkillGroupsRoundTrip(t *testing.T) {
	raw := []byte(`{"languages":["Go","Rust"],"tools":[{"name":"Docker","iconUrl":"d.png"}]}`)

	var groups SkillGroups
	if err := json.Unmarshal(raw, &groups); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	out, err := json.Marshal(groups)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var again SkillGroups
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("re-Unmarshal: %v", err)
	}
	if len(again) != 2 || again[0].Category != "languages" || again[1].Category != "tools" {
		t.Fatalf("round trip lost structure: %+v", again)
	}
	if again[0].Entries[1].Name != "Rust" || again[1].Entries[0].IconURL != "d.png" {
		t.Errorf("round trip lost entries: %+v", again)
	}
}

func TestSkillGroupsCategoryWithDot(t *testing.T) {
	groups := SkillGroups{{Category: "ml.ops", Entries: []Entry{{Name: "Kubeflow"}}}}

	out, err := json.Marshal(groups)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var again SkillGroups
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(again) != 1 || again[0].Category != "ml.ops" {
		t.Errorf("dotted category name mangled: %+v", again)
	}
}

func TestAddDeleteCategory(t *testing.T) {
	var groups SkillGroups

	if !groups.AddCategory("backend") {
		t.Fatal("AddCategory should succeed")
	}
	if groups.AddCategory("backend") {
		t.Error("duplicate category should be rejected")
	}
	if groups.AddCategory("  ") {
		t.Error("blank category should be rejected")
	}

	groups.AddCategory("frontend")
	if !groups.DeleteCategory("backend") {
		t.Fatal("DeleteCategory should succeed")
	}
	if groups.DeleteCategory("backend") {
		t.Error("deleting twice should fail")
	}
	if len(groups) != 1 || groups[0].Category != "frontend" {
		t.Errorf("unexpected groups: %+v", groups)
	}
}
