package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/entitymeta/wikiparse/internal/config"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wikiparse",
	Short: "Wikiparse - wiki-markup entity extraction",
	Long: `Wikiparse converts wiki-markup dumps of game data entities into
structured JSON, synthesizing readable identifier names from each entity's
free-text meaning field.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .wikiparse/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig honors --config when set, otherwise searches the working
// directory for .wikiparse/config.yml.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadConfigFromFile(cfgFile)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return config.LoadConfigFromDir(wd)
}
