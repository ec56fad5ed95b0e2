package main

import (
	"log"

	"github.com/urfave/cli/v2"
	"github.com/wyrmsheet/backend/internal/repository"
)

func (s *srv) startMigrate(ct *cli.Context) error {
	s.loadConfig(ct)
	s.loadLogger()
	s.loadDatabase()

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	if err := repository.DoSQLMigration(sqlDB); err != nil {
		return err
	}

	log.Println("migrations applied")
	return nil
}
