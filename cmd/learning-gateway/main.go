package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/saharshpoddar/learning-gateway/internal/config"
	"github.com/saharshpoddar/learning-gateway/internal/dispatch"
	"github.com/saharshpoddar/learning-gateway/internal/httpx"
	"github.com/saharshpoddar/learning-gateway/internal/stdio"
)

// Version information (set at build time with -ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const (
	exitOK          = 0
	exitConfigError = 2
	exitFatal       = 3
)

var (
	flagListTools bool
	flagDemo      bool
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:     "learning-gateway",
	Short:   "MCP gateway for Jira, Confluence, Bitbucket, and a learning-resource vault",
	Long:    `learning-gateway serves a unified MCP tool surface over stdio: Atlassian product operations, learning-resource discovery, URL scraping, and result export.`,
	Version: Version,
	Run: func(_ *cobra.Command, _ []string) {
		os.Exit(run())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("learning-gateway %s\n", Version)
		if BuildTime != "unknown" {
			fmt.Printf("Built: %s\n", BuildTime)
		}
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flagListTools, "list-tools", false, "print registered tool names and exit")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "run a self-contained demonstration and exit")
	rootCmd.Flags().StringVar(&flagConfigDir, "config-dir", "user-config", "configuration directory")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFatal)
	}
}

func run() int {
	// Stdout carries MCP frames; all diagnostics go to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(config.Options{
		Dir:           flagConfigDir,
		ListToolsOnly: flagListTools || flagDemo,
	})
	if err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			for _, problem := range verr.Problems {
				log.Error().Msg(problem)
			}
		}
		log.Error().Err(err).Msg("Configuration is invalid")
		return exitConfigError
	}
	applyLogLevel(cfg.Preferences.LogLevel)

	dispatcher, err := dispatch.New(cfg, httpx.NewEngine(cfg))
	if err != nil {
		log.Error().Err(err).Msg("Failed to build dispatcher")
		return exitFatal
	}

	if flagListTools {
		printToolTable(dispatcher.ListTools())
		return exitOK
	}
	if flagDemo {
		if err := runDemo(dispatcher); err != nil {
			log.Error().Err(err).Msg("Demo failed")
			return 1
		}
		return exitOK
	}

	log.Info().Str("instance", cfg.InstanceName).Strs("live", cfg.LiveProducts()).
		Msg("Starting stdio driver")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	driver := stdio.NewDriver(dispatcher)
	if err := driver.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("Stdio driver failed")
		return exitFatal
	}
	return exitOK
}

func applyLogLevel(level string) {
	if level == "" {
		return
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("Unknown log level, keeping default")
		return
	}
	zerolog.SetGlobalLevel(parsed)
}

func printToolTable(tools []dispatch.ToolInfo) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Options(tablewriter.WithHeader([]string{"Tool", "Product", "Required args", "Description"}))
	for _, tool := range tools {
		required := "-"
		if len(tool.Required) > 0 {
			required = joinComma(tool.Required)
		}
		if err := table.Append([]string{tool.Name, string(tool.Product), required, tool.Description}); err != nil {
			fmt.Fprintln(os.Stderr, "table error:", err)
			return
		}
	}
	if err := table.Render(); err != nil {
		fmt.Fprintln(os.Stderr, "table error:", err)
	}
}

func joinComma(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
