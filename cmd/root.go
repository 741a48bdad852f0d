package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/greenbag/intervention-cli/internal/config"
	"github.com/greenbag/intervention-cli/internal/population"
)

var (
	cfg *config.Config

	// populations memoizes generated populations for the whole process.
	populations *population.Cache
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:          "greenbag",
	Short:        "Pre-delinquency intervention queue and dashboard tooling",
	Long:         "Generates the deterministic at-risk customer population, builds intervention queues and replays dashboard layout gestures.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			c.Log.Level = logLevel
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}

		populations = population.NewCache(cfg.Cache.Size,
			population.WithCurrency(cfg.Generator.CurrencyLocale, cfg.Generator.CurrencySymbol))

		zap.L().Debug("config loaded",
			zap.String("command", cmd.Name()),
			zap.String("config", cfgFile),
		)
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
