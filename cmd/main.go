package main

import (
	"github.com/joho/godotenv"

	"github.com/dayfleet/dayfleet/config"
	"github.com/dayfleet/dayfleet/internal/api/v1/handlers"
	"github.com/dayfleet/dayfleet/internal/app"
	"github.com/dayfleet/dayfleet/internal/compute"
	"github.com/dayfleet/dayfleet/internal/db"
	"github.com/dayfleet/dayfleet/internal/db/repos"
	"github.com/dayfleet/dayfleet/internal/logger"
	"github.com/dayfleet/dayfleet/internal/services"
)

func main() {
	// Missing .env is fine; the environment may be set by the runtime.
	if err := godotenv.Load(); err != nil {
		logger.Debugf("no .env file loaded: %v", err)
	}
	logger.InitializeAndConfigure()

	database, err := db.New(db.Options{
		Host:         config.GetEnv("MYSQL_HOSTNAME", db.DefaultHost),
		User:         config.GetEnv("MYSQL_USER", db.DefaultUser),
		Password:     config.GetEnv("MYSQL_PASSWORD", ""),
		DBName:       config.GetEnv("MYSQL_DATABASE", db.DefaultDBName),
		Port:         config.GetEnvInt("MYSQL_PORT", db.DefaultPort),
		MaxOpenConns: config.GetEnvInt("MYSQL_POOL_SIZE", db.DefaultMaxOpenConns),
	})
	if err != nil {
		logger.Fatalf("failed to connect to gateway database: %v", err)
	}

	ec2Client := compute.NewClient()

	connectionRepo := repos.NewConnectionRepository(database)
	attemptRepo := repos.NewAttemptRepository(database)

	catalogService := services.NewCatalogService(ec2Client)
	fleetService := services.NewFleetService(ec2Client, catalogService, connectionRepo)
	provisioner := services.NewProvisioner(
		ec2Client,
		catalogService,
		connectionRepo,
		attemptRepo,
		config.GetEnv("KEY_PAIR_NAME", "days-keypair"),
		compute.DefaultPollPolicy,
	)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	fleetHandler := handlers.NewFleetHandler(fleetService, provisioner)

	server := app.New(catalogHandler, fleetHandler)
	logger.Fatal(server.Listen(":" + config.GetEnv("PORT", "8080")))
}
