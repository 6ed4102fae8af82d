package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	accountinadapter "dtimer/internal/modules/account/adapter/in"
	accountoutadapter "dtimer/internal/modules/account/adapter/out"
	accountservice "dtimer/internal/modules/account/service"
	accountusecase "dtimer/internal/modules/account/usecase"
	"dtimer/internal/platform/clock"
	"dtimer/internal/platform/config"
	"dtimer/internal/platform/logging"
	"dtimer/internal/platform/sqlitedb"
	uiapp "dtimer/internal/ui/app"
)

type App struct {
	AccountCLI accountinadapter.CLIHandler
	AccountTUI accountinadapter.TUIHandler

	cfg     config.Config
	log     logging.Logger
	db      *sql.DB
	logFile io.Closer
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	log, logFile, err := logging.Open(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "starting", "db_path", cfg.DBPath, "night_mode", cfg.NightMode)

	db, err := sqlitedb.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Error(ctx, "open database failed", "db_path", cfg.DBPath, "err", err)
		_ = logFile.Close()
		return nil, fmt.Errorf("open account store: %w", err)
	}
	log.Info(ctx, "database ready", "db_path", cfg.DBPath)

	accountUC := accountusecase.NewInteractor(accountservice.NewAccountService(
		accountoutadapter.NewSQLiteAccountStore(db),
		log,
	))

	return &App{
		AccountCLI: accountinadapter.NewCLIHandler(accountUC),
		AccountTUI: accountinadapter.NewTUIHandler(accountUC),
		cfg:        cfg,
		log:        log,
		db:         db,
		logFile:    logFile,
	}, nil
}

func (a *App) Close() error {
	return errors.Join(a.db.Close(), a.logFile.Close())
}

// RunTUI blocks until the user quits. A storage failure inside the UI ends
// the program and is returned here.
func RunTUI(app *App) error {
	model := uiapp.NewModel(app.AccountTUI, uiapp.Options{
		Clock:     clock.SystemClock{},
		Logger:    app.log,
		NightMode: app.cfg.NightMode,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(uiapp.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
