package main

import (
	"context"
	"flag"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	"cafedeslettres/internal/platform/postgres"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	loadEnvFiles()
	dir := migrationsDir()

	if *command == "create" {
		if *name == "" {
			logrus.Fatal("name is required for the create command")
		}
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			logrus.WithError(err).Fatal("cannot create migration")
		}
		logrus.WithField("name", *name).Info("migration created")
		return
	}

	pool, err := postgres.Open(context.Background(), databaseDSN())
	if err != nil {
		logrus.WithError(err).Fatal("cannot open database")
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		logrus.WithError(err).Fatal("cannot set goose dialect")
	}

	log := logrus.WithFields(logrus.Fields{"command": *command, "dir": dir})
	switch *command {
	case "up":
		err = goose.Up(db, dir)
	case "down":
		err = goose.Down(db, dir)
	case "status":
		err = goose.Status(db, dir)
	default:
		log.Fatal("unknown command, use: up, down, status, create")
	}
	if err != nil {
		log.WithError(err).Fatal("migration failed")
	}
	log.Info("migration command completed")
}
