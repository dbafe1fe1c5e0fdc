package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/amonks/focusstation/internal/config"
	"github.com/amonks/focusstation/internal/paths"
	"github.com/amonks/focusstation/remote"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a shared session log over HTTP",
	Long: `Serve a shared session log over HTTP.

Clients point [remote] url at http://ADDR/leaderboard.json. Records are kept
in a JSON file (the default) or a Redis hash. /healthz reports liveness and
/metrics exposes Prometheus metrics.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveAddr    string
	serveStorage string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, "+config.DefaultServerAddr+")")
	serveCmd.Flags().StringVar(&serveStorage, "storage", "", "Storage backend: file or redis")
}

func runServe(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	storage := cfg.Server.Storage
	if serveStorage != "" {
		storage = serveStorage
	}
	dataFile, err := paths.ResolveWithDefault(cfg.Server.DataFile, paths.DefaultSessionsPath)
	if err != nil {
		return err
	}

	backend, err := remote.OpenBackend(context.Background(), remote.BackendOptions{
		Storage:  storage,
		DataFile: dataFile,
		RedisURL: cfg.Server.RedisURL,
		RedisKey: cfg.Server.RedisKey,
	})
	if err != nil {
		return err
	}

	server, err := remote.NewServer(remote.ServerOptions{
		Backend: backend,
		Logger:  log.New(os.Stderr, "focus serve: ", log.LstdFlags),
	})
	if err != nil {
		return err
	}
	return server.Serve(addr)
}
