package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/adiboy-23/fun-pump/pkg/app"
	"github.com/adiboy-23/fun-pump/pkg/app/api"
	"github.com/adiboy-23/fun-pump/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file, empty for defaults and environment only")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Trade server exited: %v\n", err)
		os.Exit(1)
	}
}
