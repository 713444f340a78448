package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/mcwire/internal/config"
	"github.com/danmuck/mcwire/internal/observability"
	"github.com/danmuck/mcwire/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to wireservd TOML config")
	flag.Parse()

	cfg := config.DefaultInspector()
	if *configPath != "" {
		loaded, err := config.LoadInspector(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wireservd: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := observability.InitLogger(cfg.Name, cfg.Debug)
	observability.RegisterMetrics()

	svc := server.New(cfg, logger)
	if err := svc.Run(); err != nil {
		logger.Error().Err(err).Msg("inspector exited")
		os.Exit(1)
	}
}
