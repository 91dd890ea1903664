package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/danielhkuo/ballotcheck/cliparse"
	"github.com/danielhkuo/ballotcheck/conversation"
	"github.com/danielhkuo/ballotcheck/db"
	"github.com/danielhkuo/ballotcheck/router"
	"github.com/danielhkuo/ballotcheck/store"
	"github.com/danielhkuo/ballotcheck/telegram"
)

func main() {
	var err error

	if err := cliparse.LoadEnv(); err != nil {
		slog.Error("Error reading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	machine := conversation.NewMachine(store.NewRecords(dbConn, nil), cfg.MaxRecordsPerUser, nil)
	sessions := conversation.NewSessions(machine)

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		slog.Error("telegram login failed", "error", err)
		os.Exit(1)
	}
	api.Debug = cfg.Debug
	slog.Info("Authorized", "bot", api.Self.UserName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var server *http.Server
	if cfg.Port != 0 {
		server = &http.Server{
			Handler: router.NewRouter(sessions),
			Addr:    ":" + strconv.Itoa(cfg.Port),
		}
		go func() {
			slog.Info("Listening", "port", cfg.Port)
			err := server.ListenAndServe()
			if err != nil && err != http.ErrServerClosed {
				slog.Error("Server closed", "error", err)
			}
		}()
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		api.StopReceivingUpdates()
		if server != nil {
			server.Close()
		}
	}()

	bot := telegram.New(api, router.NewDispatcher(sessions, cfg))
	bot.Run(ctx, updates)
	slog.Info("Bot stopped")
}
