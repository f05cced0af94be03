package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ionsofimagination/glox/internal"
	"github.com/ionsofimagination/glox/internal/config"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// runPrompt reads one line at a time and runs it. Errors are reported and
// the session carries on with the globals defined so far.
func runPrompt(cfg *config.Config, logger *logrus.Logger) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath(cfg.REPL.History)
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				logger.WithError(err).Warn("cannot save history")
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	runner := internal.NewRunner(stdPrinter{}, logger)

	for {
		line, err := ln.Prompt(cfg.REPL.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Println()
			return
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return
		}

		ln.AppendHistory(line)
		status := runner.Run(line)
		logger.WithField("status", status).Debug("line done")
	}
}

func historyPath(name string) string {
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, name)
}
