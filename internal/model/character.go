package model

import "net/http"

type Skill struct {
	Kind       string `json:"kind"`
	Display    string `json:"display"`
	Proficient bool   `json:"proficient"`
	Bonus      int    `json:"bonus"`
}

type AbilityScore struct {
	Kind        string  `json:"kind"`
	Display     string  `json:"display"`
	Value       int     `json:"value"`
	Proficient  bool    `json:"proficient"`
	Mod         int     `json:"mod"`
	SavingThrow int     `json:"saving_throw"`
	Skills      []Skill `json:"skills"`
}

type Character struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Alignment        string `json:"alignment"`
	AlignmentDisplay string `json:"alignment_display"`
}

type HomeRequest struct{}

type HomeResponse struct {
	Characters []Character `json:"characters"`
}

func (r HomeResponse) TemplateInfo() (string, any) {
	return "home.html", r
}

type LoginPageRequest struct {
	Next string `form:"next"`
}

type LoginPageResponse struct {
	RedirectURL string `json:"-"`
	Next        string `json:"next"`
}

func (r LoginPageResponse) RedirectInfo() (int, string) {
	return http.StatusSeeOther, r.RedirectURL
}

func (r LoginPageResponse) TemplateInfo() (string, any) {
	return "login.html", r
}

type NewCharacterPageRequest struct{}

type NewCharacterPageResponse struct {
	RedirectURL string            `json:"-"`
	Alignments  []AlignmentOption `json:"alignments"`
}

func (r NewCharacterPageResponse) RedirectInfo() (int, string) {
	return http.StatusSeeOther, r.RedirectURL
}

func (r NewCharacterPageResponse) TemplateInfo() (string, any) {
	return "new_character.html", r
}

type AlignmentOption struct {
	Value   string `json:"value"`
	Display string `json:"display"`
}

type CreateCharacterRequest struct {
	Name      string `form:"name"`
	Alignment string `form:"alignment"`
}

// CreateCharacterResponse either redirects to the new character's detail
// page or redisplays the form with an error message.
type CreateCharacterResponse struct {
	RedirectURL string            `json:"-"`
	Error       string            `json:"error,omitempty"`
	Name        string            `json:"name,omitempty"`
	Alignments  []AlignmentOption `json:"alignments,omitempty"`
}

func (r CreateCharacterResponse) RedirectInfo() (int, string) {
	return http.StatusSeeOther, r.RedirectURL
}

func (r CreateCharacterResponse) TemplateInfo() (string, any) {
	return "new_character.html", r
}

type GetCharacterRequest struct {
	ID string `uri:"id"`
}

type GetCharacterResponse struct {
	Character        Character      `json:"character"`
	AbilityScores    []AbilityScore `json:"ability_scores"`
	ProficiencyBonus int            `json:"proficiency_bonus"`
}

func (r GetCharacterResponse) TemplateInfo() (string, any) {
	return "character.html", r
}

type GetAbilityScoreRequest struct {
	CharacterID string `uri:"character_id"`
	Attribute   string `uri:"attribute"`
}

type UpdateAbilityScoreRequest struct {
	CharacterID string `uri:"character_id"`
	Attribute   string `uri:"attribute"`
	Value       string `form:"value"`
}

// AttributeResponse is keyed by the requested attribute name plus any
// derived statistics, so its shape depends on the request.
type AttributeResponse map[string]any
