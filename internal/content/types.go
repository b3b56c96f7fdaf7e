// Package content models the portfolio content document: the single JSON
// object holding all text and media content, loaded and saved atomically.
package content

// Document is the root content object. Every slice is display-ordered by
// position.
type Document struct {
	Profile      Profile       `json:"profile"`
	Skills       SkillGroups   `json:"skills"`
	Experience   []Experience  `json:"experience"`
	Education    []Education   `json:"education"`
	Projects     []Project     `json:"projects"`
	Research     []Paper       `json:"research"`
	Documents    []FileLink    `json:"documents"`
	UserSections []UserSection `json:"userSections"`
}

// Profile holds the flat scalar fields shown in the hero, about and contact
// sections.
type Profile struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Bio       string `json:"bio"`
	AboutDesc string `json:"aboutDesc"`
	Location  string `json:"location"`
	Email     string `json:"email"`
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	PhotoURL  string `json:"photoUrl,omitempty"`
}

type Experience struct {
	Role     string `json:"role"`
	Company  string `json:"company"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Desc     string `json:"desc"`
	DocURL   string `json:"docUrl,omitempty"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartYear   string `json:"startYear"`
	EndYear     string `json:"endYear"`
	Location    string `json:"location"`
	Details     string `json:"details"`
	DocURL      string `json:"docUrl,omitempty"`
}

type Project struct {
	Title     string  `json:"title"`
	Desc      string  `json:"desc"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	TechStack []Entry `json:"techStack"`
	GitHubURL string  `json:"githubUrl,omitempty"`
	LiveURL   string  `json:"liveUrl,omitempty"`
	DocURL    string  `json:"docUrl,omitempty"`
}

type Paper struct {
	Title    string `json:"title"`
	Authors  string `json:"authors"`
	Venue    string `json:"venue"`
	Year     string `json:"year"`
	Status   string `json:"status"`
	PaperURL string `json:"paperUrl,omitempty"`
	CertURL  string `json:"certUrl,omitempty"`
}

// FileLink is one entry in the downloadable documents section.
type FileLink struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
	URL   string `json:"url"`
}

// UserSection is an admin-defined content block appended after the built-in
// sections.
type UserSection struct {
	Title string        `json:"title"`
	Icon  string        `json:"icon,omitempty"`
	Items []SectionItem `json:"items"`
}

type SectionItem struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	DocURL      string `json:"docUrl,omitempty"`
	BadgeURL    string `json:"badgeUrl,omitempty"`
}

// Normalize backfills the optional top-level lists so renderers and editors
// never see nil where the schema allows absence. It runs on every document
// before first render.
func (d *Document) Normalize() {
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.UserSections == nil {
		d.UserSections = []UserSection{}
	}
	for i := range d.UserSections {
		if d.UserSections[i].Items == nil {
			d.UserSections[i].Items = []SectionItem{}
		}
	}
	for i := range d.Projects {
		if d.Projects[i].TechStack == nil {
			d.Projects[i].TechStack = []Entry{}
		}
	}
}
