package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/olivierh59500/dustwind/internal/config"
	"github.com/olivierh59500/dustwind/internal/observability"
	"github.com/olivierh59500/dustwind/internal/sim"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// RunFunc starts the simulation once configuration and logging are ready.
type RunFunc func(cfg *config.Config, logger *zap.Logger) error

// NewRootCmd builds the dustwind command. Flags are bound onto v so they
// take precedence over the config file and environment.
func NewRootCmd(v *viper.Viper, run RunFunc) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "dustwind",
		Short:         "Interactive 2D particle playground with wind, explosions and curl",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			logger := observability.NewLogger(cfg.Logger, zapcore.Lock(zapcore.AddSync(cmd.OutOrStdout())))
			defer func() { _ = logger.Sync() }()

			logger.Info("starting dustwind", zap.String("version", Version))
			return run(cfg, logger)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./dustwind.yaml)")
	flags.IntP("particles", "n", sim.DefaultParticles, "particles per generation")
	flags.Int64("seed", 0, "random seed, 0 for a clock-derived seed")
	flags.Int("width", int(sim.DefaultWidth), "viewport width")
	flags.Int("height", int(sim.DefaultHeight), "viewport height")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	_ = v.BindPFlag("sim.particles", flags.Lookup("particles"))
	_ = v.BindPFlag("sim.seed", flags.Lookup("seed"))
	_ = v.BindPFlag("window.width", flags.Lookup("width"))
	_ = v.BindPFlag("window.height", flags.Lookup("height"))
	_ = v.BindPFlag("logger.level", flags.Lookup("log-level"))

	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	})
	return cmd
}
