// Package main is the entry point for autobind.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "autobind.yaml"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "autobind",
	Short: "Marker-driven service auto-registration",
	Long: `autobind scans catalog modules for types carrying a registration marker and
registers them into a dependency-injection container with their declared
lifetime and abstraction. This binary is a demo host: it runs registration
over the modules linked into it and reports the resulting bindings.`,
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file path (default: ./"+defaultConfigFile+" or ~/.config/autobind/"+defaultConfigFile+")")
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
