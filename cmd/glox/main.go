package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ionsofimagination/glox/internal"
	"github.com/ionsofimagination/glox/internal/config"
	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

const (
	exitUsage        = 64
	exitCompileError = 65
	exitRuntimeError = 70
)

func main() {
	configPath := flag.String("config", "", "path to "+config.FileName+" (searched upward from the working directory by default)")
	dumpTokens := flag.Bool("tokens", false, "print the scanned tokens as YAML and exit")
	dumpAst := flag.Bool("ast", false, "print the syntax tree and exit")
	logLevel := flag.String("log-level", "", "override the configured log level")
	noColor := flag.Bool("no-color", false, "disable colored diagnostics")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: glox [flags] [script]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(exitUsage)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("cannot load configuration")
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *noColor {
		cfg.REPL.Color = false
	}
	if !cfg.REPL.Color {
		color.Disable()
	}

	logger, err := cfg.Logger()
	if err != nil {
		logrus.WithError(err).Fatal("invalid log configuration")
	}

	if flag.NArg() == 0 {
		runPrompt(cfg, logger)
		return
	}

	source, err := readSource(flag.Arg(0))
	if err != nil {
		logger.WithError(err).Fatal("cannot read script")
	}

	switch {
	case *dumpTokens:
		if err := internal.DumpTokens(source, os.Stdout); err != nil {
			logger.WithError(err).Fatal("cannot dump tokens")
		}
	case *dumpAst:
		if !internal.PrintTree(source, stdPrinter{}) {
			os.Exit(exitCompileError)
		}
	default:
		os.Exit(runFile(source, logger))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, _, err := config.FindAndLoad(wd)
	return cfg, err
}

func readSource(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(absPath)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func runFile(source string, logger *logrus.Logger) int {
	switch internal.NewRunner(stdPrinter{}, logger).Run(source) {
	case internal.StatusCompileError:
		return exitCompileError
	case internal.StatusRuntimeError:
		return exitRuntimeError
	}
	return 0
}
