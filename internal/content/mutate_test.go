package content

import "testing"

func TestMoveBounds(t *testing.T) {
	list := []int{1, 2, 3}

	if Move(list, 0, -1) {
		t.Error("moving first element up should be a no-op")
	}
	if Move(list, 2, 1) {
		t.Error("moving last element down should be a no-op")
	}
	if Move(list, 5, 1) {
		t.Error("out-of-range index should be a no-op")
	}
	if Move(list, 1, 2) {
		t.Error("non-adjacent direction should be rejected")
	}
	if list[0] != 1 || list[1] != 2 || list[2] != 3 {
		t.Errorf("no-op moves must not mutate: %v", list)
	}
}

func TestMoveSwapsAdjacent(t *testing.T) {
	list := []string{"a", "b", "c", "d"}

	if !Move(list, 1, 1) {
		t.Fatal("expected move to succeed")
	}
	want := []string{"a", "c", "b", "d"}
	for i := range want {
		if list[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, list)
		}
	}
	if len(list) != 4 {
		t.Errorf("length must be preserved, got %d", len(list))
	}

	// Moving back restores the original order.
	Move(list, 2, -1)
	if list[1] != "b" || list[2] != "c" {
		t.Errorf("expected original order restored, got %v", list)
	}
}

func TestRemove(t *testing.T) {
	list := []string{"a", "b", "c"}

	got, ok := Remove(list, 1)
	if !ok {
		t.Fatal("expected removal to succeed")
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("unexpected result: %v", got)
	}

	if _, ok := Remove(got, 5); ok {
		t.Error("out-of-range removal should fail")
	}
	if _, ok := Remove(got, -1); ok {
		t.Error("negative index removal should fail")
	}
}

func TestDocumentMoveIn(t *testing.T) {
	doc := Document{
		Experience: []Experience{{Role: "first"}, {Role: "second"}},
	}

	if !doc.MoveIn(ListExperience, 0, 1) {
		t.Fatal("expected move to succeed")
	}
	if doc.Experience[0].Role != "second" {
		t.Errorf("expected swap, got %+v", doc.Experience)
	}

	if doc.MoveIn("bogus", 0, 1) {
		t.Error("unknown list should be rejected")
	}
}

func TestDocumentRemoveAndAppend(t *testing.T) {
	doc := Document{Projects: []Project{{Title: "keep"}, {Title: "drop"}}}

	if !doc.RemoveFrom(ListProjects, 1) {
		t.Fatal("expected removal to succeed")
	}
	if len(doc.Projects) != 1 || doc.Projects[0].Title != "keep" {
		t.Errorf("unexpected projects: %+v", doc.Projects)
	}

	doc.AppendBlank(ListProjects)
	if len(doc.Projects) != 2 {
		t.Fatalf("expected blank append, got %d", len(doc.Projects))
	}
	if doc.Projects[1].TechStack == nil {
		t.Error("blank project should carry an empty tech stack")
	}

	doc.AppendBlank(ListSections)
	if len(doc.UserSections) != 1 || doc.UserSections[0].Title != "New Section" {
		t.Errorf("unexpected section default: %+v", doc.UserSections)
	}

	if doc.AppendBlank("bogus") {
		t.Error("unknown list should be rejected")
	}
}

func TestSkillMutations(t *testing.T) {
	doc := Document{Skills: SkillGroups{
		{Category: "langs", Entries: []Entry{{Name: "Go"}, {Name: "Rust"}}},
	}}

	if !doc.MoveSkill("langs", 0, 1) {
		t.Fatal("expected skill move to succeed")
	}
	if doc.Skills[0].Entries[0].Name != "Rust" {
		t.Errorf("expected swap, got %+v", doc.Skills[0].Entries)
	}

	if doc.MoveSkill("nope", 0, 1) {
		t.Error("unknown category should be rejected")
	}

	if !doc.AppendSkill("langs", Entry{Name: "Zig"}) {
		t.Fatal("expected append to succeed")
	}
	if !doc.RemoveSkill("langs", 2) {
		t.Fatal("expected removal to succeed")
	}
	if len(doc.Skills[0].Entries) != 2 {
		t.Errorf("unexpected entries: %+v", doc.Skills[0].Entries)
	}
}

func TestSectionItemMutations(t *testing.T) {
	doc := Document{UserSections: []UserSection{
		{Title: "Awards", Items: []SectionItem{{Title: "one"}, {Title: "two"}}},
	}}

	if !doc.MoveSectionItem(0, 1, -1) {
		t.Fatal("expected item move to succeed")
	}
	if doc.UserSections[0].Items[0].Title != "two" {
		t.Errorf("expected swap, got %+v", doc.UserSections[0].Items)
	}

	if doc.MoveSectionItem(3, 0, 1) {
		t.Error("out-of-range section should be rejected")
	}

	if !doc.RemoveSectionItem(0, 0) {
		t.Fatal("expected item removal to succeed")
	}
	if !doc.AppendSectionItem(0, SectionItem{Title: "three"}) {
		t.Fatal("expected item append to succeed")
	}
	if len(doc.UserSections[0].Items) != 2 {
		t.Errorf("unexpected items: %+v", doc.UserSections[0].Items)
	}
}
