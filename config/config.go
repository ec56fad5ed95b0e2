package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	Database  DatabaseConfigs `toml:"database"`
	ApiServer ServerConfigs   `toml:"api_server"`
	Auth      AuthConfigs     `toml:"auth"`
	Session   SessionConfigs  `toml:"session"`
	Redis     RedisConfigs    `toml:"redis"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

func (s *ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type AuthConfigs struct {
	TokenSecret  string       `toml:"token_secret"`
	AccessToken  TokenConfigs `toml:"access_token"`
	RefreshToken TokenConfigs `toml:"refresh_token"`

	Google OAuth2Configs `toml:"google"`
}

type TokenConfigs struct {
	Name       string        `toml:"name"`
	Expiration time.Duration `toml:"expiration"`
}

type OAuth2Configs struct {
	Name         string `toml:"name"`
	Issuer       string `toml:"issuer"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	IDField      string `toml:"id_field"`
}

type SessionConfigs struct {
	Secret string `toml:"secret"`
	Name   string `toml:"name"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

// Load reads configurations from the TOML file at path if given, then
// overrides connection settings with environment variables when they are set.
func Load(path string) (Configs, error) {
	cfg := Configs{
		Env: "local",
		ApiServer: ServerConfigs{
			Host: "localhost",
			Port: "8080",
		},
		Auth: AuthConfigs{
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: 24 * time.Hour,
			},
			RefreshToken: TokenConfigs{
				Name:       "refresh_token",
				Expiration: 30 * 24 * time.Hour,
			},
		},
		Session: SessionConfigs{
			Name: "session",
		},
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	overrideEnv(&cfg.Env, "ENV")
	overrideEnv(&cfg.ApiServer.Port, "PORT")
	overrideEnv(&cfg.Database.Host, "DB_HOST")
	overrideEnv(&cfg.Database.Port, "DB_PORT")
	overrideEnv(&cfg.Database.Database, "DB_DATABASE")
	overrideEnv(&cfg.Database.User, "DB_USER")
	overrideEnv(&cfg.Database.Password, "DB_PASSWORD")
	overrideEnv(&cfg.Auth.TokenSecret, "TOKEN_SECRET")
	overrideEnv(&cfg.Session.Secret, "SESSION_SECRET")
	overrideEnv(&cfg.Redis.Addr, "REDIS_ADDR")

	return cfg, nil
}

func overrideEnv(target *string, name string) {
	if value, ok := os.LookupEnv(name); ok {
		*target = value
	}
}
