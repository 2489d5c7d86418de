package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/cmdpattern/core"
	"github.com/jask/cmdpattern/internal/config"
	"github.com/jask/cmdpattern/internal/logging"
	"github.com/jask/cmdpattern/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.NewOrNop(cfg.Logging())
	sessionID := uuid.NewString()
	logger = logger.With(zap.String("session", sessionID))
	defer func() { _ = logger.Sync() }()

	session := core.NewSession(
		core.WithState(cfg.InitialState()),
		core.WithObserver(logging.DispatchObserver(logger)),
		core.WithDropHook(logging.DropLogger(logger)),
	)
	logger.Info("session started",
		zap.String("input_text", cfg.UI.InputText),
		zap.Float64("counter", cfg.UI.Counter),
	)

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(tui.New(tui.Options{
		Session:   session,
		Config:    cfg,
		Logger:    logger,
		SessionID: sessionID,
	}), opts...)
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("session ended", zap.Int("open_windows", len(session.State().OpenWindows)))
}
