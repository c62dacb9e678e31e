// Command aetherbox hosts the AetherBox main window in a GLFW window.
//
// The window opens with F1 or by typing /atb on stdin.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aetherbox/aetherbox/gui"
)

var (
	configPath    string
	imagesDir     string
	multiViewport bool
	openOnStart   bool
	verbose       bool

	logger *zap.Logger
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

var rootCmd = &cobra.Command{
	Use:   "aetherbox",
	Short: "AetherBox main menu host",
	Long: `Runs the AetherBox main window inside a GLFW window.

Press F1 or type /atb on stdin to toggle the main menu. Escape or the
title bar X closes it and saves the configuration.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		gui.SetVerbose(verbose)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "Configuration file")
	rootCmd.Flags().StringVar(&imagesDir, "images", "Images", "Directory holding icon.png and close.png")
	rootCmd.Flags().BoolVar(&multiViewport, "viewports", false, "Allow the window outside the main viewport")
	rootCmd.Flags().BoolVar(&openOnStart, "open", false, "Open the main window immediately")
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "aetherbox", "config.yaml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
