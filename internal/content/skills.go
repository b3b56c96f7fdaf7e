package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Entry is one skill or tech-stack element. On the wire it is either a bare
// name string or an object {name, iconUrl}; both decode into this one shape
// so every consumer renders them identically.
type Entry struct {
	Name    string
	IconURL string
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		e.IconURL = ""
		return json.Unmarshal(data, &e.Name)
	}
	var obj struct {
		Name    string `json:"name"`
		IconURL string `json:"iconUrl"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("skill entry: %w", err)
	}
	e.Name, e.IconURL = obj.Name, obj.IconURL
	return nil
}

func (e Entry) MarshalJSON() ([]byte, error) {
	if e.IconURL == "" {
		return json.Marshal(e.Name)
	}
	return json.Marshal(struct {
		Name    string `json:"name"`
		IconURL string `json:"iconUrl"`
	}{e.Name, e.IconURL})
}

// SkillGroup is one named category of skills.
type SkillGroup struct {
	Category string
	Entries  []Entry
}

// SkillGroups preserves the category order of the stored JSON object, which
// is the display order. A plain Go map would lose it.
type SkillGroups []SkillGroup

func (g *SkillGroups) UnmarshalJSON(data []byte) error {
	v := gjson.ParseBytes(data)
	if v.Type == gjson.Null {
		*g = nil
		return nil
	}
	if !v.IsObject() {
		return fmt.Errorf("skills: expected a JSON object")
	}

	var groups SkillGroups
	var entriesErr error
	v.ForEach(func(key, val gjson.Result) bool {
		var entries []Entry
		if err := json.Unmarshal([]byte(val.Raw), &entries); err != nil {
			entriesErr = fmt.Errorf("skills[%s]: %w", key.String(), err)
			return false
		}
		if entries == nil {
			entries = []Entry{}
		}
		groups = append(groups, SkillGroup{Category: key.String(), Entries: entries})
		return true
	})
	if entriesErr != nil {
		return entriesErr
	}

	*g = groups
	return nil
}

func (g SkillGroups) MarshalJSON() ([]byte, error) {
	out := []byte(`{}`)
	for _, grp := range g {
		entries := grp.Entries
		if entries == nil {
			entries = []Entry{}
		}
		raw, err := json.Marshal(entries)
		if err != nil {
			return nil, fmt.Errorf("skills[%s]: %w", grp.Category, err)
		}
		out, err = sjson.SetRawBytes(out, escapePath(grp.Category), raw)
		if err != nil {
			return nil, fmt.Errorf("skills[%s]: %w", grp.Category, err)
		}
	}
	return out, nil
}

// escapePath guards category names containing sjson path metacharacters.
func escapePath(key string) string {
	r := strings.NewReplacer(`\`, `\\`, `.`, `\.`, `*`, `\*`, `?`, `\?`, `|`, `\|`)
	return r.Replace(key)
}

func (g SkillGroups) index(category string) int {
	for i, grp := range g {
		if grp.Category == category {
			return i
		}
	}
	return -1
}

// Group returns the entries slice for a category, or nil if unknown.
func (g SkillGroups) Group(category string) []Entry {
	if i := g.index(category); i >= 0 {
		return g[i].Entries
	}
	return nil
}

// AddCategory appends an empty category. Adding an existing name is a no-op.
func (g *SkillGroups) AddCategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || g.index(name) >= 0 {
		return false
	}
	*g = append(*g, SkillGroup{Category: name, Entries: []Entry{}})
	return true
}

// DeleteCategory removes a category and all its entries.
func (g *SkillGroups) DeleteCategory(name string) bool {
	i := g.index(name)
	if i < 0 {
		return false
	}
	*g = append((*g)[:i], (*g)[i+1:]...)
	return true
}
