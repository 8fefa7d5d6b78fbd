// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package main implements the weatherdash service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wneessen/weatherdash/internal/config"
	"github.com/wneessen/weatherdash/internal/i18n"
	"github.com/wneessen/weatherdash/internal/logger"
	"github.com/wneessen/weatherdash/internal/service"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var confPath, listen string
	c := &cobra.Command{
		Use:           "weatherdash",
		Short:         "weather and region information dashboard",
		Version:       fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGABRT, os.Interrupt)
			defer cancel()
			return run(ctx, confPath, listen)
		},
	}
	c.Flags().StringVar(&confPath, "config", "", "path to the config file")
	c.Flags().StringVar(&listen, "listen", "", "address to serve the dashboard on (overrides server.listen)")
	return c
}

func run(ctx context.Context, confPath, listen string) error {
	// Initialize Logger
	log := logger.New(slog.LevelError)

	conf, err := loadConfig(confPath)
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		return err
	}
	if listen != "" {
		conf.Server.Listen = listen
	}

	log = logger.New(conf.LogLevel)
	translator, err := i18n.New(conf.Locale)
	if err != nil {
		log.Error("failed to initialize localizer", logger.Err(err))
		return err
	}
	t := translator.Default()

	// Initialize the service
	serv, err := service.New(conf, log, translator)
	if err != nil {
		log.Error("failed to initialize weatherdash service", logger.Err(err))
		return err
	}

	log.Info(t.Get("starting weatherdash service"), slog.String("version", version),
		slog.String("commit", commit), slog.String("date", date), slog.String("listen", conf.Server.Listen))
	if err = serv.Run(ctx); err != nil {
		log.Error(t.Get("failed to start weatherdash service"), logger.Err(err))
		return err
	}
	log.Info(t.Get("shutting down weatherdash service"))
	return nil
}

// loadConfig reads the config file given on the command line, or the one in the default location
// if there is any. Without a config file the defaults and environment are used.
func loadConfig(confPath string) (*config.Config, error) {
	if confPath != "" {
		return config.NewFromFile(filepath.Dir(confPath), filepath.Base(confPath))
	}
	if path, file := findConfigFile(); path != "" && file != "" {
		return config.NewFromFile(path, file)
	}
	return config.New()
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	exts := []string{"toml", "yaml", "yml", "json"}
	for _, ext := range exts {
		path := filepath.Join(homedir, ".config", "weatherdash", "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}
