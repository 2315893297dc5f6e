package cmd

import (
	"fmt"

	"github.com/mj1618/a11ycheck/internal/platform"
	"github.com/mj1618/a11ycheck/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing a11ycheck tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the check, snapshot
and rules commands as tools. Parsed dumps are cached until their file changes.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  a11ycheck serve
  a11ycheck serve --transport streamable-http --port 8080
  a11ycheck serve --cache-size 0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-size", server.DefaultCacheSize, "Parsed dumps to keep in memory (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := serverConfig(cmd)
	if err != nil {
		return err
	}
	srv, err := server.New(cfg, platform.NewFileReader())
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	return srv.Serve()
}

func serverConfig(cmd *cobra.Command) (server.Config, error) {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheSize, _ := cmd.Flags().GetInt("cache-size")

	rulesCfg, err := rulesConfigFromViper()
	if err != nil {
		return server.Config{}, err
	}
	return server.Config{
		Transport:         transport,
		Port:              port,
		CacheSize:         cacheSize,
		Rules:             rulesCfg,
		DefaultRules:      ruleSpecsFromViper(),
		IgnoreIdentifiers: ignoreIdentifiersFromViper(),
		ReferenceDir:      viper.GetString(snapshotReferenceKey),
		OutputDir:         viper.GetString(snapshotOutputKey),
		Logger:            cmdLogger(),
	}, nil
}
