package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
	tbmiddleware "gopkg.in/telebot.v3/middleware"

	"shift-tracker/config"
	"shift-tracker/internal/app/service"
	"shift-tracker/internal/delivery/telegram"
	"shift-tracker/internal/delivery/telegram/router"
	"shift-tracker/internal/logging"
	"shift-tracker/internal/repository"
	"shift-tracker/internal/repository/sqlite"
	"shift-tracker/pkg/calendar"
	"shift-tracker/pkg/workerpool"
)

// app holds what every subcommand needs once config is loaded.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	db     *sql.DB
	shifts *service.ShiftServiceImpl
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func newRootCmd(a *app) *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "shift-tracker",
		Short:         "Track bartending shifts, tips and earnings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context(), cfgPath)
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")

	root.AddCommand(
		newBotCmd(a),
		newListCmd(a),
		newSummaryCmd(a),
		newAddCmd(a),
		newRmCmd(a),
	)
	return root
}

func (a *app) open(ctx context.Context, cfgPath string) error {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := sqlite.Open(cfg.DBPath, logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	repo, err := repository.Open(ctx, sqlite.NewRecordStore(db), logger)
	if err != nil {
		db.Close()
		return fmt.Errorf("load shifts: %w", err)
	}

	a.cfg, a.log, a.db = cfg, logger, db
	a.shifts = service.NewShiftService(repo, cfg.HourlyRate, loc)
	return nil
}

func newBotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.RequireToken(); err != nil {
				return err
			}
			return runBot(cmd.Context(), a)
		},
	}
}

func runBot(ctx context.Context, a *app) error {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  a.cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10},
		OnError: func(err error, c telebot.Context) {
			a.log.Error("update failed", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("start bot: %w", err)
	}
	if a.cfg.OwnerID != 0 {
		bot.Use(tbmiddleware.Whitelist(a.cfg.OwnerID))
	}

	// One worker: user actions are applied in the order they arrive.
	pool := workerpool.NewWorkerPool(1, 32)
	defer pool.Close()

	handler := &telegram.Handler{
		Ctx:      ctx,
		Bot:      bot,
		Shifts:   a.shifts,
		Async:    service.NewAsyncService(pool),
		Calendar: &calendar.CalendarController{Now: func() time.Time { return time.Now().In(a.shifts.Location) }},
		Router:   router.New(a.log),
		Log:      a.log,
	}
	handler.Register()

	go func() {
		<-ctx.Done()
		a.log.Info("stopping bot")
		bot.Stop()
	}()

	a.log.Info("bot started", zap.String("db", a.cfg.DBPath), zap.Int64("owner", a.cfg.OwnerID))
	bot.Start()
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
