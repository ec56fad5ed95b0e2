package model

import "net/http"

type RegisterRequest struct {
	Name     string `form:"name"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

type RegisterResponse struct {
	RedirectURL  string `json:"-"`
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
}

func (r RegisterResponse) RedirectInfo() (int, string) {
	return http.StatusSeeOther, r.RedirectURL
}

func (r RegisterResponse) AccessTokenInfo() (string, string) {
	return r.AccessToken, r.RefreshToken
}

type LoginRequest struct {
	Name     string `form:"name"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

type LoginResponse struct {
	RedirectURL  string `json:"-"`
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
}

func (r LoginResponse) RedirectInfo() (int, string) {
	return http.StatusSeeOther, r.RedirectURL
}

func (r LoginResponse) AccessTokenInfo() (string, string) {
	return r.AccessToken, r.RefreshToken
}

type LogoutRequest struct{}

type LogoutResponse struct{}

func (LogoutResponse) RedirectInfo() (int, string) {
	return http.StatusSeeOther, "/login"
}

// AccessTokenInfo with empty tokens instructs the cookie middleware to
// delete both token cookies.
func (LogoutResponse) AccessTokenInfo() (string, string) {
	return "", ""
}

type OAuth2LoginRequest struct {
	Type string `form:"type"`
}

type OAuth2LoginResponse struct {
	RedirectURL string `json:"-"`
	State       string `json:"-"`
}

func (r OAuth2LoginResponse) RedirectInfo() (int, string) {
	return http.StatusTemporaryRedirect, r.RedirectURL
}

func (r OAuth2LoginResponse) SessionInfo() map[string]any {
	return map[string]any{"state": r.State}
}

type OAuth2CallbackRequest struct {
	Type         string `form:"type"`
	State        string `form:"state"`
	SessionState string `session:"state,delete"`
	Code         string `form:"code"`
}

type OAuth2CallbackResponse struct {
	RedirectURL  string `json:"-"`
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
}

func (r OAuth2CallbackResponse) RedirectInfo() (int, string) {
	return http.StatusTemporaryRedirect, r.RedirectURL
}

func (r OAuth2CallbackResponse) AccessTokenInfo() (string, string) {
	return r.AccessToken, r.RefreshToken
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AccessToken is the object embedded in every signed access token.
type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RefreshToken carries the token family and its rotation counter. A counter
// mismatch on refresh means the token was stolen and replayed.
type RefreshToken struct {
	Family  string `json:"family"`
	Counter uint64 `json:"counter"`
}
