package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/chatterbox-app/chatterbox/internal/client/api"
	"github.com/chatterbox-app/chatterbox/internal/client/cli"
	"github.com/chatterbox-app/chatterbox/internal/client/config"
	"github.com/chatterbox-app/chatterbox/internal/client/history"
	"github.com/chatterbox-app/chatterbox/internal/client/repository"
	"github.com/chatterbox-app/chatterbox/internal/client/session"
	"github.com/chatterbox-app/chatterbox/internal/client/storage"
	"github.com/chatterbox-app/chatterbox/internal/client/storage/boltdb"
	"github.com/chatterbox-app/chatterbox/internal/client/usecase"
	"github.com/chatterbox-app/chatterbox/internal/crypto"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", envOr("CHATTERBOX_SERVER", "https://api.chatterbox.app"), "Server URL")
	dbPath := flag.String("db", envOr("CHATTERBOX_DB", "chatterbox-client.db"), "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	installID, err := boltStorage.InstallID(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load install identity: %v\n", err)
		os.Exit(1)
	}

	installSecret, err := crypto.LoadOrCreateInstallSecret(*dbPath + ".secret")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load install secret: %v\n", err)
		os.Exit(1)
	}

	sealingKey, err := crypto.SealingKey(installSecret)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to derive sealing key: %v\n", err)
		os.Exit(1)
	}

	tokenStore, err := storage.NewSealedTokenStore(boltStorage, sealingKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open token store: %v\n", err)
		os.Exit(1)
	}

	sess := session.NewController(ctx, tokenStore, log)

	apiClient := api.NewClient(*serverURL, sess,
		api.WithInstallID(installID),
		api.WithLogger(log),
	)

	authRepo := repository.NewAuthRepository(apiClient)
	accountRepo := repository.NewAccountRepository(apiClient)
	cueRepo := repository.NewCueRepository(apiClient)
	recordingRepo := repository.NewRecordingRepository(apiClient)

	analytics := usecase.NewSlogAnalytics(log)
	requestLink := usecase.NewRequestMagicLink(authRepo, analytics)
	login := usecase.NewLoginWithMagicToken(authRepo, sess, analytics)
	logout := usecase.NewLogout(sess, analytics)

	configStore := config.NewStore(config.DefaultSnapshot())
	gate := config.NewGate(configStore)

	historyStore, err := history.Open(ctx, *dbPath+".history.sqlite")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open history cache: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := historyStore.Close(); err != nil {
			log.Error("failed to close history cache", "error", err)
		}
	}()

	app := cli.New(sess, requestLink, login, logout,
		accountRepo, cueRepo, recordingRepo, apiClient,
		configStore, gate, historyStore)

	app.Run(ctx, command, args[1:])
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func printVersion() {
	fmt.Printf("Chatterbox Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
