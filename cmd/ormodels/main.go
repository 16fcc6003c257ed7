// Command ormodels browses and compares AI models from the OpenRouter
// catalog. A single query that exactly matches a model id prints the
// full record; anything else prints an aligned comparison table of all
// substring matches.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	orbrowser "github.com/janwychowaniak/openrouter-models-browser"
)

var (
	flagCents       bool
	flagRaw         bool
	flagPlainTokens bool
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "ormodels QUERY [QUERY...]",
	Short: "Browse and compare AI models from the OpenRouter API",
	Long: `Browse and compare AI models from the OpenRouter API.

Searches match against model id, name, and modality. A single query
equal to a model id (e.g. "openai/gpt-4") shows that model in full.
Pricing is shown per 1M tokens.`,
	Example: `  ormodels claude              Search for models matching "claude"
  ormodels openai/gpt-4        Exact ID match shows the full record
  ormodels "text->text"        Search by modality
  ormodels claude gemini       Combine multiple searches`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagCents, "cents", false, "show prices in cents per 1M tokens")
	rootCmd.Flags().BoolVar(&flagRaw, "raw", false, "dump the full record as-is in the detailed view")
	rootCmd.Flags().BoolVar(&flagPlainTokens, "plain-tokens", false, "show bare token counts without the thousands hint")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := orbrowser.LoadConfig()
	if err != nil {
		return err
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	unit, err := orbrowser.PriceUnitNamed(cfg.PriceUnit)
	if err != nil {
		return err
	}
	if flagCents {
		unit = orbrowser.Cents
	}

	browser := &orbrowser.Browser{
		Client: orbrowser.NewClient(cfg.APIURL, cfg.Timeout, log),
		Out:    cmd.OutOrStdout(),
		Opts: orbrowser.RenderOptions{
			Prices:     unit,
			TokenSplit: cfg.TokenSplit && !flagPlainTokens,
			Raw:        cfg.RawDetail || flagRaw,
		},
		Log: log,
	}
	return browser.Run(cmd.Context(), args)
}

func newLogger(level string) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.WarnLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
