package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/olivierh59500/dustwind/internal/cli"
	"github.com/olivierh59500/dustwind/internal/config"
	"github.com/olivierh59500/dustwind/internal/sim"
)

func main() {
	if err := cli.NewRootCmd(viper.New(), run).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds the world and hands it to Ebitengine until the window closes
func run(cfg *config.Config, logger *zap.Logger) error {
	seed := cfg.ResolveSeed()
	params := cfg.Params(seed)
	world := sim.NewWorld(params, sim.NewTurbulence(seed), logger)

	logger.Info("simulation ready",
		zap.Int64("seed", seed),
		zap.Int("particles", params.Particles),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Float64("turbulence", params.Turbulence),
	)

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowClosingHandled(true)

	// Run the game loop
	if err := ebiten.RunGame(NewGame(world, logger.Named("game"))); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
