package main

import (
	"context"
	"net/http"

	"github.com/urfave/cli/v2"
	"github.com/wyrmsheet/backend/config"
	"github.com/wyrmsheet/backend/internal/domain"
	"github.com/wyrmsheet/backend/internal/repository"
	"github.com/wyrmsheet/backend/pkg/authenticator"
	"github.com/wyrmsheet/backend/pkg/logger"
	"github.com/wyrmsheet/backend/pkg/router"
	"github.com/wyrmsheet/backend/pkg/xcontext"
	"github.com/wyrmsheet/backend/pkg/xredis"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	cfg    config.Configs
	logger logger.Logger
	db     *gorm.DB

	redisClient xredis.Client

	userRepo         repository.UserRepository
	oauth2Repo       repository.OAuth2Repository
	refreshTokenRepo repository.RefreshTokenRepository
	characterRepo    repository.CharacterRepository
	abilityScoreRepo repository.AbilityScoreRepository
	skillRepo        repository.SkillRepository
	spellRepo        repository.SpellRepository

	authDomain      domain.AuthDomain
	characterDomain domain.CharacterDomain
	spellDomain     domain.SpellDomain
	dispatchDomain  domain.DispatchDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(ct *cli.Context) {
	cfg, err := config.Load(ct.String("config"))
	if err != nil {
		panic(err)
	}

	s.cfg = cfg
}

func (s *srv) loadLogger() {
	if s.cfg.Env == "local" {
		s.logger = logger.NewLoggerWithLevel(logger.DEBUG)
	} else {
		s.logger = logger.NewLogger()
	}
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.cfg.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRedis() {
	ctx := xcontext.WithConfigs(context.Background(), s.cfg)

	var err error
	s.redisClient, err = xredis.NewClient(ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.oauth2Repo = repository.NewOAuth2Repository()
	s.refreshTokenRepo = repository.NewRefreshTokenRepository()
	s.characterRepo = repository.NewCharacterRepository()
	s.abilityScoreRepo = repository.NewAbilityScoreRepository()
	s.skillRepo = repository.NewSkillRepository()
	s.spellRepo = repository.NewSpellRepository(s.redisClient)
}

func (s *srv) loadDomains() {
	var oauth2Services []authenticator.IOAuth2Service
	if s.cfg.Auth.Google.ClientID != "" {
		service, err := authenticator.NewOAuth2Service(context.Background(), s.cfg, s.cfg.Auth.Google)
		if err != nil {
			panic(err)
		}
		oauth2Services = append(oauth2Services, service)
	}

	s.authDomain = domain.NewAuthDomain(s.userRepo, s.oauth2Repo, s.refreshTokenRepo, oauth2Services)
	s.characterDomain = domain.NewCharacterDomain(s.characterRepo, s.abilityScoreRepo, s.skillRepo)
	s.spellDomain = domain.NewSpellDomain(s.spellRepo)
	s.dispatchDomain = domain.NewDispatchDomain()
}
