// Package cli defines the storesearch command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd runs the terminal UI when called without a subcommand.
var RootCmd = &cobra.Command{
	Use:   "storesearch",
	Short: "Search the iTunes Store from the terminal",
	Long: `StoreSearch searches the iTunes Store for music, software and e-books.

Results are shown as a list, or as a paged grid of artwork on wide
terminals. Past searches are kept and the last one is restored at startup.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.CompletionOptions.DisableDefaultCmd = true

	addPersistentFlags(RootCmd)

	RootCmd.AddCommand(newServeCmd())
	RootCmd.AddCommand(newSearchCmd())
}

// addPersistentFlags adds the flags shared by every command.
func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a TOML config file")
	cmd.PersistentFlags().String("category", "", "Category: all, music, software or ebooks")
	cmd.PersistentFlags().String("country", "", "Store country (ISO 3166 code, e.g. US)")
	cmd.PersistentFlags().BoolP("no-cache", "n", false, "Disable the response cache")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// options are the parsed persistent flags.
type options struct {
	ConfigPath string
	Category   string
	Country    string
	NoCache    bool
	Debug      bool
}

func getOptions(cmd *cobra.Command) options {
	configPath, _ := cmd.Flags().GetString("config")
	category, _ := cmd.Flags().GetString("category")
	country, _ := cmd.Flags().GetString("country")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	debug, _ := cmd.Flags().GetBool("debug")

	return options{
		ConfigPath: configPath,
		Category:   category,
		Country:    country,
		NoCache:    noCache,
		Debug:      debug,
	}
}
