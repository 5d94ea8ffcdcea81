// Package server initializes and runs the application server: it opens the
// database, runs migrations, wires services, and starts the HTTP endpoint
// with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avelis/daybook/internal/logging"
	"github.com/avelis/daybook/internal/server/auth"
	"github.com/avelis/daybook/internal/server/config"
	"github.com/avelis/daybook/internal/server/httpapi"
	"github.com/avelis/daybook/internal/server/repositories/repomanager"
	"github.com/avelis/daybook/internal/server/services"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	userService  *services.UserService
	entryService *services.EntryService
	codec        *auth.TokenCodec
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	hasher := auth.NewBcryptHasher(auth.BcryptCost)
	codec := auth.NewTokenCodec([]byte(cfg.SecretKey), cfg.TokenTTL)

	us := services.NewUserService(db, rm, hasher, codec)
	es := services.NewEntryService(db, rm)

	return &App{
		config:       cfg,
		logger:       logger,
		db:           db,
		userService:  us,
		entryService: es,
		codec:        codec,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(
		app.config.EndpointAddr,
		app.logger,
		app.userService,
		app.entryService,
		app.codec,
		app.config.SecureCookies,
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}
}
