package content

// The admin editor exposes the same three operations on every list in the
// document: move (swap with the adjacent neighbor), delete, and append a
// blank record. The generic functions below are that shared contract; the
// Document methods dispatch them to a list addressed by name.

// Move swaps list[idx] with its neighbor in the given direction (-1 up,
// +1 down). Any out-of-range index or boundary move is a no-op.
func Move[T any](list []T, idx, dir int) bool {
	if dir != -1 && dir != 1 {
		return false
	}
	j := idx + dir
	if idx < 0 || idx >= len(list) || j < 0 || j >= len(list) {
		return false
	}
	list[idx], list[j] = list[j], list[idx]
	return true
}

// Remove deletes list[idx], preserving the order of the remaining elements.
func Remove[T any](list []T, idx int) ([]T, bool) {
	if idx < 0 || idx >= len(list) {
		return list, false
	}
	return append(list[:idx], list[idx+1:]...), true
}

// List names addressable by the editor.
const (
	ListExperience = "experience"
	ListEducation  = "education"
	ListProjects   = "projects"
	ListResearch   = "research"
	ListDocuments  = "documents"
	ListSections   = "userSections"
)

// MoveIn applies Move to the named top-level list.
func (d *Document) MoveIn(list string, idx, dir int) bool {
	switch list {
	case ListExperience:
		return Move(d.Experience, idx, dir)
	case ListEducation:
		return Move(d.Education, idx, dir)
	case ListProjects:
		return Move(d.Projects, idx, dir)
	case ListResearch:
		return Move(d.Research, idx, dir)
	case ListDocuments:
		return Move(d.Documents, idx, dir)
	case ListSections:
		return Move(d.UserSections, idx, dir)
	}
	return false
}

// RemoveFrom deletes the element at idx from the named top-level list.
func (d *Document) RemoveFrom(list string, idx int) bool {
	var ok bool
	switch list {
	case ListExperience:
		d.Experience, ok = Remove(d.Experience, idx)
	case ListEducation:
		d.Education, ok = Remove(d.Education, idx)
	case ListProjects:
		d.Projects, ok = Remove(d.Projects, idx)
	case ListResearch:
		d.Research, ok = Remove(d.Research, idx)
	case ListDocuments:
		d.Documents, ok = Remove(d.Documents, idx)
	case ListSections:
		d.UserSections, ok = Remove(d.UserSections, idx)
	}
	return ok
}

// AppendBlank appends a default record to the named top-level list. An
// unknown list name is rejected.
func (d *Document) AppendBlank(list string) bool {
	switch list {
	case ListExperience:
		d.Experience = append(d.Experience, Experience{})
	case ListEducation:
		d.Education = append(d.Education, Education{})
	case ListProjects:
		d.Projects = append(d.Projects, Project{TechStack: []Entry{}})
	case ListResearch:
		d.Research = append(d.Research, Paper{})
	case ListDocuments:
		d.Documents = append(d.Documents, FileLink{})
	case ListSections:
		d.UserSections = append(d.UserSections, UserSection{
			Title: "New Section",
			Icon:  "star",
			Items: []SectionItem{},
		})
	default:
		return false
	}
	return true
}

// Len reports the length of the named top-level list, or -1 if unknown.
func (d *Document) Len(list string) int {
	switch list {
	case ListExperience:
		return len(d.Experience)
	case ListEducation:
		return len(d.Education)
	case ListProjects:
		return len(d.Projects)
	case ListResearch:
		return len(d.Research)
	case ListDocuments:
		return len(d.Documents)
	case ListSections:
		return len(d.UserSections)
	}
	return -1
}

// Skill mutations operate on one category's entries.

func (d *Document) MoveSkill(category string, idx, dir int) bool {
	return Move(d.Skills.Group(category), idx, dir)
}

func (d *Document) RemoveSkill(category string, idx int) bool {
	i := d.Skills.index(category)
	if i < 0 {
		return false
	}
	entries, ok := Remove(d.Skills[i].Entries, idx)
	if ok {
		d.Skills[i].Entries = entries
	}
	return ok
}

func (d *Document) AppendSkill(category string, e Entry) bool {
	i := d.Skills.index(category)
	if i < 0 {
		return false
	}
	d.Skills[i].Entries = append(d.Skills[i].Entries, e)
	return true
}

// Custom-section item mutations.

func (d *Document) MoveSectionItem(section, idx, dir int) bool {
	if section < 0 || section >= len(d.UserSections) {
		return false
	}
	return Move(d.UserSections[section].Items, idx, dir)
}

func (d *Document) RemoveSectionItem(section, idx int) bool {
	if section < 0 || section >= len(d.UserSections) {
		return false
	}
	items, ok := Remove(d.UserSections[section].Items, idx)
	if ok {
		d.UserSections[section].Items = items
	}
	return ok
}

func (d *Document) AppendSectionItem(section int, item SectionItem) bool {
	if section < 0 || section >= len(d.UserSections) {
		return false
	}
	d.UserSections[section].Items = append(d.UserSections[section].Items, item)
	return true
}
