package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Keloce-2005/Back-office/cmd"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/migration"
	"github.com/Keloce-2005/Back-office/internal/pkg/logger"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const usage = `usage: migrate [flags] <up|down|steps N|version|force V>`

func main() {
	flags := pflag.NewFlagSet("migrate", pflag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
		flags.PrintDefaults()
	}

	configs, err := cmd.LoadConfig(flags, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	zapLogger := logger.New(logger.Config{Level: configs.LogLevel, Format: configs.LogFormat, Output: configs.LogOutput})
	defer func() { _ = zapLogger.Sync() }()

	migrator, err := migration.New(configs.DSN(), zapLogger)
	if err != nil {
		zapLogger.Fatal("cannot open migrator", zap.Error(err))
	}

	err = runCommand(migrator, flags.Args(), zapLogger)
	if closeErr := migrator.Close(); closeErr != nil {
		zapLogger.Warn("closing migrator", zap.Error(closeErr))
	}
	if err != nil {
		zapLogger.Fatal("migration failed", zap.Error(err))
	}
}

func runCommand(migrator *migration.Migrator, args []string, zapLogger *zap.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command; %s", usage)
	}

	switch args[0] {
	case "up":
		return migrator.Up()
	case "down":
		return migrator.Down()
	case "steps":
		n, err := intArg(args)
		if err != nil {
			return err
		}
		return migrator.Steps(n)
	case "force":
		v, err := intArg(args)
		if err != nil {
			return err
		}
		return migrator.Force(v)
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		zapLogger.Info("current schema", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return nil
	default:
		return fmt.Errorf("unknown command %q; %s", args[0], usage)
	}
}

func intArg(args []string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%s needs a numeric argument", args[0])
	}
	return strconv.Atoi(args[1])
}
