package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cartomesh/atlasmap/pkg/logging"
)

var (
	configFile string
	verbose    bool
	quiet      bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
	// BuiltBy is the build system identifier.
	BuiltBy = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "atlasmap",
	Short: "Territory atlas consolidation CLI",
	Long: `Atlasmap consolidates multi-resolution administrative-boundary
geometry into one composite record per territory, reconciles it against an
externally supplied territory name list, and writes a unified,
deterministically ordered atlas file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date, builtBy string) {
	Version = version
	Commit = commit
	Date = date
	BuiltBy = builtBy

	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s by %s)", version, commit, date, builtBy)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.atlasmap.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("Failed to bind verbose flag: %v", err))
	}
	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		panic(fmt.Sprintf("Failed to bind quiet flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(configFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".atlasmap" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".atlasmap")
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up environment variable handling
	viper.SetEnvPrefix("atlasmap")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	configureLogging()
}

// configureLogging sets up the logging system based on configuration.
func configureLogging() {
	level := zerolog.InfoLevel
	if verbose || viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	if quiet || viper.GetBool("quiet") {
		level = zerolog.WarnLevel
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsed
		}
	}

	config := &logging.Config{
		Level:     level.String(),
		Format:    os.Getenv("LOG_FORMAT"),
		Output:    os.Getenv("LOG_OUTPUT"),
		AddCaller: level <= zerolog.DebugLevel,
	}

	if config.Format == "" {
		config.Format = "auto"
	}
	if config.Output == "" {
		config.Output = "stderr"
	}

	logging.Configure(config)
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}
