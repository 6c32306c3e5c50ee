package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/getimpose/impose/pkg/admin"
	"github.com/getimpose/impose/pkg/config"
	"github.com/getimpose/impose/pkg/engine"
	"github.com/getimpose/impose/pkg/logging"
	"github.com/getimpose/impose/pkg/metrics"
)

var serveFlags struct {
	configPath  string
	adminPort   int
	bindHost    string
	logLevel    string
	logFormat   string
	collections []string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the imposter server and its configuration API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveFlags.configPath, "config", "c", "", "server configuration file (YAML)")
	serveCmd.Flags().IntVar(&serveFlags.adminPort, "admin-port", 0, "configuration API port (overrides config file)")
	serveCmd.Flags().StringVar(&serveFlags.bindHost, "bind", "", "interface imposter listeners bind to")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	serveCmd.Flags().StringVar(&serveFlags.logFormat, "log-format", "", "log format: text, json")
	serveCmd.Flags().StringArrayVar(&serveFlags.collections, "collection", nil, "imposter collection file to load at startup (repeatable)")
}

func runServe(cmd *cobra.Command) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
		Output: os.Stderr,
	})

	e := engine.New(
		engine.WithLogger(log),
		engine.WithMetrics(metrics.New()),
		engine.WithBindHost(cfg.BindHost),
	)

	for _, path := range cfg.Collections {
		collection, err := config.LoadCollection(path)
		if err != nil {
			return err
		}
		for _, imCfg := range collection.Imposters {
			if _, err := e.CreateImposter(imCfg); err != nil {
				return fmt.Errorf("collection %s: port %d: %w", path, imCfg.Port, err)
			}
		}
		log.Info("collection loaded", "path", path, "imposters", len(collection.Imposters))
	}

	api := admin.New(e, cfg.AdminPort, admin.WithLogger(log))

	errCh := make(chan error, 1)
	go func() {
		errCh <- api.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("configuration API failed", "error", err)
			return err
		}
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	case <-cmd.Context().Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := api.Shutdown(ctx); err != nil {
		log.Warn("configuration API shutdown", "error", err)
	}
	if err := e.Shutdown(ctx); err != nil {
		log.Warn("engine shutdown", "error", err)
	}
	return nil
}

// resolveConfig merges the config file (if any) with command-line
// overrides. Flags win.
func resolveConfig() (*config.ServerConfig, error) {
	cfg := config.DefaultServerConfig()
	if serveFlags.configPath != "" {
		loaded, err := config.LoadServerConfig(serveFlags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if serveFlags.adminPort != 0 {
		cfg.AdminPort = serveFlags.adminPort
	}
	if serveFlags.bindHost != "" {
		cfg.BindHost = serveFlags.bindHost
	}
	if serveFlags.logLevel != "" {
		cfg.LogLevel = serveFlags.logLevel
	}
	if serveFlags.logFormat != "" {
		cfg.LogFormat = serveFlags.logFormat
	}
	cfg.Collections = append(cfg.Collections, serveFlags.collections...)

	return cfg, cfg.Validate()
}
