package model

type Spell struct {
	Name          string   `json:"name"`
	School        string   `json:"school"`
	SchoolDisplay string   `json:"school_display"`
	Level         int      `json:"level"`
	LevelDisplay  string   `json:"level_display"`
	CastingTime   string   `json:"casting_time"`
	Range         string   `json:"range"`
	Duration      string   `json:"duration"`
	Components    []string `json:"components"`
	MaterialText  string   `json:"material_text,omitempty"`
	Concentration bool     `json:"concentration"`
	Ritual        bool     `json:"ritual"`
	Description   string   `json:"description"`
	Page          string   `json:"page"`
	Classes       []string `json:"classes"`
}

type SpellsPageRequest struct{}

type SpellsPageResponse struct {
	Spells []Spell `json:"spells"`
}

func (r SpellsPageResponse) TemplateInfo() (string, any) {
	return "spells.html", r
}

type GetSpellRequest struct {
	Name string `uri:"name"`
}

type GetSpellResponse struct {
	Spell Spell `json:"spell"`
}

type GetClassSpellsRequest struct {
	Class string `uri:"caster_class"`
}

type GetClassSpellsResponse struct {
	Class  string  `json:"class"`
	Spells []Spell `json:"spells"`
}
