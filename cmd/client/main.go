package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-user-records/internal/adapter"
	"github.com/MKhiriev/go-user-records/internal/client"
	"github.com/MKhiriev/go-user-records/internal/config"
	"github.com/MKhiriev/go-user-records/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "-build-info" {
		printBuildInfo()
		return
	}

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := cfg.LogLevel
	if level == "" {
		level = "warn"
	}
	log := logger.NewLoggerWithLevel("user-records-client", level)

	users, err := adapter.NewHTTPUserClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating user client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(users, os.Stdout, log).Run(log.WithContext(ctx), args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
