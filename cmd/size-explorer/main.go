package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"size-explorer/internal/config"
	"size-explorer/internal/logging"
	"size-explorer/internal/session"
)

var (
	configPath   string
	logLevel     string
	showProgress bool
	showAll      bool
	scriptPath   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "size-explorer",
	Short: "Explore the size breakdown of a Unity build report",
	Long: `size-explorer reads the size breakdown that the Unity editor writes to its
log after a build and turns it into a tree of assets. Nodes can be checked,
expanded, hidden and filtered to see how the build size would change.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if err := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
			return fmt.Errorf("failed to init logging: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree <report>",
	Short: "Print the size tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printTree(cmd.OutOrStdout(), ws.forest, showAll)
		return nil
	},
}

var chartCmd = &cobra.Command{
	Use:   "chart <report>",
	Short: "Print the pie chart slices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printChart(cmd.OutOrStdout(), ws.forest)
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary <report>",
	Short: "Print original, current and reduced size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), ws.forest)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <report> [output-json-filename]",
	Short: "Write the size tree to a JSON file",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		var outputPath string
		if len(args) == 2 {
			outputPath = args[1]
		}
		return export(cmd.OutOrStdout(), ws, outputPath)
	},
}

var exploreCmd = &cobra.Command{
	Use:   "explore <report>",
	Short: "Apply session commands from stdin or a script, then print the result",
	Long:  "Apply session commands from stdin or a script, then print the result.\n\nCommands:\n" + session.Help,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return explore(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), ws, scriptPath)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "size-explorer.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config")
	rootCmd.PersistentFlags().BoolVarP(&showProgress, "progress", "p", false, "Show a progress bar while reading the report")

	treeCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Also print the children of collapsed nodes")
	exploreCmd.Flags().StringVarP(&scriptPath, "script", "s", "", "Read commands from this file instead of stdin")
	exploreCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Also print the children of collapsed nodes")

	rootCmd.AddCommand(treeCmd, chartCmd, summaryCmd, exportCmd, exploreCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
