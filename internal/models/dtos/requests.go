package dtos

// ImportRecord is one parsed row of a qualification import, as produced from
// a Callsign/Skill/Status CSV or the JSON equivalent.
type ImportRecord struct {
	Callsign  string `json:"callsign"`
	SkillName string `json:"skill_name"`
	Status    string `json:"status"`
}

type ImportRequest struct {
	Records []ImportRecord `json:"records"`
}

type CreateWingRequest struct {
	Name string `json:"name"`
}

type RenameWingRequest struct {
	Name string `json:"name"`
}

type CreateSkillRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
}

type UpdateSkillRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
}

type CreatePilotRequest struct {
	Callsign string `json:"callsign"`
	Role     string `json:"role"`
	// Username, when set, also creates a linked login record in the same
	// transaction as the pilot row.
	Username string `json:"username,omitempty"`
}

type RenamePilotRequest struct {
	Callsign string `json:"callsign"`
}

type SetQualificationRequest struct {
	Status string `json:"status"`
}

type CategoryColorEntry struct {
	Category  string `json:"category"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`
}

type SetCategoryColorsRequest struct {
	Colors []CategoryColorEntry `json:"colors"`
}
