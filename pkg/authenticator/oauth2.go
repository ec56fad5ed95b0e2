package authenticator

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/wyrmsheet/backend/config"
	"golang.org/x/oauth2"
)

type oauth2Service struct {
	*oidc.Provider
	oauth2.Config

	name    string
	idField string
}

func NewOAuth2Service(
	ctx context.Context, cfg config.Configs, oauth2Cfg config.OAuth2Configs,
) (IOAuth2Service, error) {
	provider, err := oidc.NewProvider(ctx, oauth2Cfg.Issuer)
	if err != nil {
		return nil, err
	}

	oauth2Config := oauth2.Config{
		ClientID:     oauth2Cfg.ClientID,
		ClientSecret: oauth2Cfg.ClientSecret,
		Endpoint:     provider.Endpoint(),
		RedirectURL: fmt.Sprintf("http://%s/oauth2/callback?type=%s",
			cfg.ApiServer.Address(), oauth2Cfg.Name),
		Scopes: []string{oidc.ScopeOpenID, "profile", "email"},
	}

	return &oauth2Service{
		name:     oauth2Cfg.Name,
		idField:  oauth2Cfg.IDField,
		Provider: provider,
		Config:   oauth2Config,
	}, nil
}

func (a *oauth2Service) Service() string {
	return a.name
}

// VerifyIDToken verifies that an *oauth2.Token carries a valid *oidc.IDToken
// and extracts the configured identity field from its claims.
func (a *oauth2Service) VerifyIDToken(ctx context.Context, token *oauth2.Token) (OAuth2User, error) {
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return OAuth2User{}, errors.New("no id_token field in oauth2 token")
	}

	oidcConfig := &oidc.Config{ClientID: a.ClientID}
	idToken, err := a.Verifier(oidcConfig).Verify(ctx, rawIDToken)
	if err != nil {
		return OAuth2User{}, err
	}

	var profile map[string]any
	if err := idToken.Claims(&profile); err != nil {
		return OAuth2User{}, errors.New("invalid id token")
	}

	id, ok := profile[a.idField].(string)
	if !ok {
		return OAuth2User{}, fmt.Errorf("invalid id field %s", a.idField)
	}

	username, _ := profile["name"].(string)
	return OAuth2User{ID: id, Username: username}, nil
}
