package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/soocke/rti-preview/app"
	"github.com/soocke/rti-preview/cli"
	"github.com/soocke/rti-preview/config"
)

func main() {
	cmd := cli.NewRootCmd(os.Stdout, func(cfg *config.Config, logger *slog.Logger) error {
		application, err := app.NewApp("RTI Preview", cfg, logger)
		if err != nil {
			return err
		}
		application.Start()
		return nil
	})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
