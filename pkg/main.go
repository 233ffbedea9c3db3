package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pkg "github.com/conclave-dev/conclave/pkg/internal"
	"github.com/conclave-dev/conclave/pkg/internal/bus"
	"github.com/conclave-dev/conclave/pkg/internal/cache"
	"github.com/conclave-dev/conclave/pkg/internal/database"
	"github.com/conclave-dev/conclave/pkg/internal/gateway"
	"github.com/conclave-dev/conclave/pkg/internal/http"
	"github.com/conclave-dev/conclave/pkg/internal/security"
	"github.com/conclave-dev/conclave/pkg/internal/services"
	"github.com/conclave-dev/conclave/pkg/internal/store"
	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString("  ____                _\n / ___|___  _ __  ___| | __ ___   _____\n| |   / _ \\| '_ \\/ __| |/ _` \\ \\ / / _ \\\n| |__| (_) | | | | (__| | (_| |\\ V /  __/\n \\____\\___/|_| |_|\\___|_|\\__,_| \\_/ \\___|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Conclave"), pkg.AppVersion)
	fmt.Printf("The community discussion and messaging service\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Initialize cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when initializing cache.")
	}

	// Wire up the delivery layer
	events := bus.New(viper.GetInt("gateway.queue_size"))
	verifier := security.NewJwtVerifier()
	facts := store.NewGorm(database.C)
	srv := services.NewService(facts, events)
	gw := gateway.New(events, verifier)

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", func() { services.DoAutoDatabaseCleanup(facts) })
	quartz.Start()

	// Server
	go http.NewServer(srv, gw, verifier).Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
