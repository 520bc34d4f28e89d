package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Keloce-2005/Back-office/cmd"
	httpin "github.com/Keloce-2005/Back-office/internal/adapters/in/http"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/migration"
	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

type startupFlags struct {
	migrate       bool
	createAdmin   bool
	adminUsername string
	adminEmail    string
}

func main() {
	flags := pflag.NewFlagSet("back-office", pflag.ExitOnError)
	var startup startupFlags
	flags.BoolVar(&startup.migrate, "migrate", false, "apply pending migrations before serving")
	flags.BoolVar(&startup.createAdmin, "create-admin", false, "create an admin account (password from ADMIN_PASSWORD) and exit")
	flags.StringVar(&startup.adminUsername, "admin-username", "admin", "username of the admin account")
	flags.StringVar(&startup.adminEmail, "admin-email", "", "email of the admin account")

	configs, err := cmd.LoadConfig(flags, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	zapLogger := logger.New(logger.Config{
		Level:  configs.LogLevel,
		Format: configs.LogFormat,
		Output: configs.LogOutput,
	})
	defer func() { _ = zapLogger.Sync() }()

	if err = run(configs, startup, zapLogger); err != nil {
		zapLogger.Fatal("back office stopped", zap.Error(err))
	}
}

func run(configs cmd.Config, startup startupFlags, zapLogger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if startup.migrate {
		if err := applyMigrations(configs, zapLogger); err != nil {
			return err
		}
	}

	gormDB, err := openDatabase(configs, zapLogger)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, zapLogger)
	if err != nil {
		return err
	}
	defer app.Close()

	if startup.createAdmin {
		return createAdmin(ctx, app, startup)
	}

	if configs.JobsEnabled {
		jobManager := app.CreateJobManager()
		if err = jobManager.StartAll(); err != nil {
			return err
		}
		defer jobManager.StopAll()
	}

	return startWebServer(ctx, app, configs.HTTPPort, zapLogger)
}

func applyMigrations(configs cmd.Config, zapLogger *zap.Logger) error {
	migrator, err := migration.New(configs.DSN(), zapLogger)
	if err != nil {
		return err
	}
	return errors.Join(migrator.Up(), migrator.Close())
}

func openDatabase(configs cmd.Config, zapLogger *zap.Logger) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.NewGormLogger(zapLogger, logger.GormLevel(configs.GormLogLevel), configs.GormSlowQueryLog),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return gormDB, nil
}

func createAdmin(ctx context.Context, app *cmd.CompositionRoot, startup startupFlags) error {
	command, err := commands.NewCreateAdminCommand(
		kernel.NewUUID(), startup.adminUsername, startup.adminEmail, os.Getenv("ADMIN_PASSWORD"),
	)
	if err != nil {
		return err
	}

	handler := app.CreateCreateAdminCommandHandler()
	return handler.Handle(ctx, command)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, zapLogger *zap.Logger) error {
	e := httpin.NewEcho(zapLogger)
	e.Logger.SetLevel(log.ERROR)
	server, err := app.CreateServer()
	if err != nil {
		return fmt.Errorf("load api document: %w", err)
	}
	server.Register(e)

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("http server listening", zap.String("port", port))
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	zapLogger.Info("shutting down http server")
	return e.Shutdown(shutdownCtx)
}
