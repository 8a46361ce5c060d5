package main

import (
	"fmt"

	"ecopontos/internal/db"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Apply pending schema migrations",
	Action: func(cCtx *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logrus.Info("Applying migrations...")
		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			return err
		}
		logrus.Info("Migrations applied")

		return nil
	},
}
