package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/webseer/webseer-go/config"
	"github.com/webseer/webseer-go/webseer"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *webseer.Client

	// Command flags
	apiKey     string
	baseURL    string
	reqTimeout time.Duration
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "webseer",
	Short: "Query the Webseer AI web search and fetch API",
	Long: `webseer is a CLI for the Webseer API. It can search the web for an
AI-written answer, fetch a page and run a prompt against its content, or
extract page content in a chosen format.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Webseer API key (overrides config file and "+config.EnvAPIKey+")")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL override")
	rootCmd.PersistentFlags().DurationVar(&reqTimeout, "timeout", 0, "per-request timeout override (e.g. 30s)")
}

// initializeApp initializes the configuration, logger, and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile, config.Overrides{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		TimeoutMS: int(reqTimeout / time.Millisecond),
	})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Webseer client
	client, err = webseer.NewClient(cfg.Webseer.APIKey, logger,
		webseer.WithBaseURL(cfg.Webseer.BaseURL),
		webseer.WithTimeout(time.Duration(cfg.Webseer.TimeoutMS)*time.Millisecond),
	)
	if err != nil {
		return fmt.Errorf("failed to create Webseer client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	noColor := !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
