package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "wyrmsheet"
	app.Usage = "character sheet backend"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to the toml configuration file",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start the api and page server",
			Category:    "Api",
			Description: `Serves the html pages and the json api.`,
		},
		{
			Action:      server.startMigrate,
			Name:        "migrate",
			Usage:       "Run database migrations",
			Category:    "Database",
			Description: `Applies all pending sql migrations to the configured database.`,
		},
		{
			Action:      server.startSeed,
			Name:        "seed",
			Usage:       "Seed the spell reference data",
			Category:    "Database",
			Description: `Inserts the bundled spell listing into the configured database.`,
		},
	}

	s.app = app
}
