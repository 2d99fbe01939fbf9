package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/diegoclair/workout-reminder-bot/internal/catalog"
	"github.com/diegoclair/workout-reminder-bot/internal/cli"
	"github.com/diegoclair/workout-reminder-bot/internal/cli/formatter"
	"github.com/diegoclair/workout-reminder-bot/internal/config"
	"github.com/diegoclair/workout-reminder-bot/internal/database"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/service"
	"github.com/diegoclair/workout-reminder-bot/internal/handlers"
	"github.com/diegoclair/workout-reminder-bot/internal/logger"
	"github.com/diegoclair/workout-reminder-bot/internal/plan"
	"github.com/diegoclair/workout-reminder-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		zlog.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	if err := sqlite.Migrate(db.DB()); err != nil {
		zlog.Fatal("Failed to run migrations", zap.Error(err))
	}

	workoutCatalog, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		zlog.Fatal("Failed to load catalog", zap.Error(err))
	}

	slackClient := slack.New(cfg.SlackBotToken)

	services := service.NewInstance(
		database.NewInstance(db),
		slackClient,
		plan.NewExcelLoader(cfg.PlanSheet),
		workoutCatalog,
		service.Credentials{
			Token:      cfg.SlackBotToken,
			TeamID:     cfg.SlackTeamID,
			SenderName: cfg.SlackSenderName,
			Recipients: cfg.SlackRecipients,
		},
		service.Options{
			PlanPath:        cfg.PlanPath,
			MaxMessageChars: cfg.MaxMessageChars,
			Location:        cfg.Location,
		},
		service.Schedule{Hour: cfg.SendHour, Minute: cfg.SendMinute},
		zlog,
	)

	root := cli.NewRootCmd(&cli.App{
		Workout:   services.Workout,
		Delivery:  services.Delivery,
		Scheduler: services.Scheduler,
		Handler:   handlers.New(services.Workout, cfg.SlackSigningSecret, zlog),
		Port:      cfg.Port,
		Log:       zlog,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprint(os.Stderr, formatter.FormatError(err))
		stop()
		zlog.Sync()
		db.Close()
		os.Exit(1)
	}
}
