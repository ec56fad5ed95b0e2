package main

import (
	"log"
	"net/http"

	"github.com/urfave/cli/v2"
	"github.com/wyrmsheet/backend/internal/middleware"
	"github.com/wyrmsheet/backend/pkg/router"
	"github.com/wyrmsheet/backend/web"
)

func (s *srv) startApi(ct *cli.Context) error {
	s.loadConfig(ct)
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    s.cfg.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	log.Printf("Starting server on %s\n", s.cfg.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	tmpl, err := web.Templates()
	if err != nil {
		panic(err)
	}

	s.router = router.New(s.db, s.cfg, s.logger)
	s.router.Before(middleware.Authenticate())
	s.router.AddCloser(middleware.Logger())

	// Server-rendered pages and browser auth flows.
	pageRouter := s.router.Branch()
	pageRouter.After(middleware.HandleSaveSession())
	pageRouter.After(middleware.HandleSetAccessToken())
	pageRouter.After(middleware.HandleRedirect())
	pageRouter.After(middleware.HandleRenderTemplate(tmpl))
	{
		router.GET(pageRouter, "/{$}", s.characterDomain.Home)
		router.GET(pageRouter, "/login", s.characterDomain.LoginPage)
		router.POST(pageRouter, "/login", s.authDomain.Login)
		router.POST(pageRouter, "/register", s.authDomain.Register)
		router.GET(pageRouter, "/logout", s.authDomain.Logout)
		router.GET(pageRouter, "/oauth2/login", s.authDomain.OAuth2Login)
		router.GET(pageRouter, "/oauth2/callback", s.authDomain.OAuth2Callback)
		router.GET(pageRouter, "/new_character", s.characterDomain.NewCharacterPage)
		router.POST(pageRouter, "/new_character", s.characterDomain.CreateCharacter)
		router.GET(pageRouter, "/character/{id}", s.characterDomain.GetCharacter)
		router.GET(pageRouter, "/spells", s.spellDomain.SpellsPage)
	}

	// Plain json api.
	apiRouter := s.router.Branch()
	{
		router.POST(apiRouter, "/api/auth/refresh", s.authDomain.Refresh)
		router.GET(apiRouter, "/api/{model}/{method}", s.dispatchDomain.Call)
		router.GET(apiRouter, "/api/{character_id}/AbilityScores/{attribute}", s.characterDomain.GetAbilityScore)
		router.POST(apiRouter, "/api/{character_id}/AbilityScores/{attribute}", s.characterDomain.UpdateAbilityScore)
		router.GET(apiRouter, "/spells/{name}", s.spellDomain.GetSpell)
		router.GET(apiRouter, "/class/{caster_class}", s.spellDomain.GetClassSpells)
	}
}
