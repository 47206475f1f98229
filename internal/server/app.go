// Package server initializes and runs the application: it opens the
// database, applies migrations, optionally seeds demo data, and serves the
// HTTP API until interrupted.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/irlquest/server/internal/logging"
	"github.com/irlquest/server/internal/server/config"
	"github.com/irlquest/server/internal/server/httpapi"
	"github.com/irlquest/server/internal/server/identities"
	"github.com/irlquest/server/internal/server/quests"
	"github.com/irlquest/server/internal/server/seed"
	"github.com/irlquest/server/internal/server/shared/db"
	"github.com/irlquest/server/internal/server/tasks"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	repos           db.RepositoryManager
	identityService *identities.Service
	taskService     *tasks.Service
	questService    *quests.Service
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	rm, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	is := identities.NewService(rm.Identities(), c)
	ts := tasks.NewService(rm.Tasks())
	qs := quests.NewService(rm.Quests())

	return &App{
		config:          c,
		logger:          logger,
		repos:           rm,
		identityService: is,
		taskService:     ts,
		questService:    qs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger,
		app.identityService, app.taskService, app.questService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if app.config.SeedDemoData {
		if err := seed.Run(ctx, app.repos.Conn(), app.logger); err != nil {
			app.logger.Error(ctx, err.Error())
			return
		}
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
