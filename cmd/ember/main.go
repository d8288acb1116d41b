package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/ember/internal/cadence"
	"github.com/alexanderramin/ember/internal/cli"
	"github.com/alexanderramin/ember/internal/config"
	"github.com/alexanderramin/ember/internal/db"
	"github.com/alexanderramin/ember/internal/repository"
	"github.com/alexanderramin/ember/internal/service"
	"github.com/alexanderramin/ember/internal/survey"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config file: EMBER_CONFIG or ~/.ember/config.yaml, then .env and EMBER_* overrides.
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	prefs, err := cfg.Preferences()
	if err != nil {
		return fmt.Errorf("invalid config %s: %w", cfgPath, err)
	}
	cad, err := cadence.Parse(cfg.CheckInCron, prefs.Location)
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	recordRepo := repository.NewSQLiteRecordRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for the check-in write
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	// Wire services
	settingsSvc := service.NewSettingsService(settingsRepo, prefs)
	app := &cli.App{
		CheckIn:  service.NewCheckInService(survey.DefaultCatalog(), recordRepo, settingsRepo, uow, prefs, observer),
		Insights: service.NewInsightsService(recordRepo, settingsSvc, prefs, observer),
		Settings: settingsSvc,
		Prefs:    prefs,
		Cadence:  cad,
	}

	// The huh form and the dashboard need a terminal on both ends.
	app.IsInteractive = isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
