// cmd/root.go - Root command implementation
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mts-client/internal/config"
	"mts-client/internal/mts"
	"mts-client/internal/output"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mts",
	Short: "Client for a remote map-tiling service",
	Long: `mts is a command-line client for a remote map-tiling service. It uploads
GeoJSON sources, manages the tileset lifecycle (create, publish, update,
delete), inspects processing jobs and activity reports, and estimates the
area a tileset's sources will cover before it is billed.

Credentials are read from the MAPBOX_USER_NAME and MAPBOX_ACCESS_TOKEN
environment variables, a local .env file, or flags. Area estimation is a
purely local computation and needs no credentials at all.

Examples:
  # Estimate the billable area of two source files at 10m precision
  mts estimate-area --precision 10m roads.geojson parks.geojson

  # Upload a source and build a tileset from it
  mts source upload my-source roads.geojson
  mts tileset create my-tileset --name "Roads" --recipe recipe.json
  mts tileset publish my-tileset

  # Watch processing
  mts tileset status my-tileset
  mts tileset jobs my-tileset --stage processing`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mts.yaml)")

	rootCmd.PersistentFlags().String("username", "", "account username (env MAPBOX_USER_NAME)")
	rootCmd.PersistentFlags().String("token", "", "access token (env MAPBOX_ACCESS_TOKEN)")
	rootCmd.PersistentFlags().String("base-url", "https://api.mapbox.com", "API base URL")

	rootCmd.PersistentFlags().Int("indent", 4, "JSON output indent width")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")

	// Bind flags to viper
	viper.BindPFlag("username", rootCmd.PersistentFlags().Lookup("username"))
	viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("output.indent", rootCmd.PersistentFlags().Lookup("indent"))
	viper.BindPFlag("logging.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads the .env file, the config file and environment variables.
func initConfig() {
	// credentials may live in a local .env, like the service's other tooling
	_ = godotenv.Load(".env")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".mts" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mts")
	}

	// Environment variables
	viper.SetEnvPrefix("MTS")
	viper.AutomaticEnv() // read in environment variables that match

	setupLogging()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}

func setupLogging() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	level, err := zerolog.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	if viper.GetBool("logging.verbose") && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}

// newHandler loads configuration and builds the API handler plus the printer
// shared by every command that talks to the service.
func newHandler() (*mts.Handler, *output.Printer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	handler, err := mts.NewHandler(cfg)
	if err != nil {
		return nil, nil, err
	}

	return handler, output.NewPrinter(os.Stdout, cfg.Output.Indent), nil
}
