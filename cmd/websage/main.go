package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/websage-ai/websage/config"
	"github.com/websage-ai/websage/internal/server"
)

func main() {
	// missing .env is fine, real deployments use the environment directly
	_ = godotenv.Load()

	var root = &cobra.Command{Use: "websage"}

	var configPath string
	var serveAddr string
	var serve = &cobra.Command{
		Use:   "serve",
		Short: "Run HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if serveAddr != "" {
				cfg.Server.Address = serveAddr
			}
			if cfg.Server.Address == "" {
				cfg.Server.Address = getenv("WEBSAGE_HTTP_ADDR", ":8080")
			}
			return server.Run(cfg)
		},
	}
	serve.Flags().StringVar(&configPath, "config", "", "path to config file (optional)")
	serve.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")

	root.AddCommand(serve)
	if err := root.Execute(); err != nil {
		log.Fatalf("websage: %v", err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
