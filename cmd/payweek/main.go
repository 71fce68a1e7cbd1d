package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/payweek/internal/config"
	"github.com/javiermolinar/payweek/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("PAYWEEK_CONFIG")
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := ui.NewApp(nil, cfg, configPath)
	defer func() { _ = app.Close() }()
	return app.Execute()
}
