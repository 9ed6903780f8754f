// Package main is the entry point for the hrms-lite-cli application.
// It builds the root command with the migrate, employees, attendance and
// dashboard command groups and executes it.
package main

import (
	"fmt"
	"os"

	commands "github.com/hrms-lite/hrms-backend/cmd/hrms-lite-cli/internal/commands"
	"github.com/hrms-lite/hrms-backend/internal/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string

	session := commands.NewSession(func() (*config.CLIConfig, error) {
		return config.InitializeCLIConfig(configPath)
	})
	defer func() {
		_ = session.Close()
	}()

	rootCmd, err := commands.NewRootCommand(session)
	if err != nil {
		return err
	}
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "Path to a YAML config file")

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
