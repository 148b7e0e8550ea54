package config

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/olivierh59500/dustwind/internal/sim"
)

// Config is the complete runtime configuration.
type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Sim    SimConfig    `mapstructure:"sim"`
	Logger LoggerConfig `mapstructure:"logger"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	TPS    int    `mapstructure:"tps"`
}

type SimConfig struct {
	Particles         int     `mapstructure:"particles"`
	Seed              int64   `mapstructure:"seed"` // 0 picks one from the clock
	Gravity           float64 `mapstructure:"gravity"`
	WindForce         float64 `mapstructure:"wind_force"`
	InteractionRadius float64 `mapstructure:"interaction_radius"`
	ExplosionScale    float64 `mapstructure:"explosion_scale"`
	CurlStep          float64 `mapstructure:"curl_step"`
	UIStripHeight     float64 `mapstructure:"ui_strip_height"`
	Turbulence        float64 `mapstructure:"turbulence"`
	TurbulenceScale   float64 `mapstructure:"turbulence_scale"`
}

type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	// -- Window --
	v.SetDefault("window.width", int(sim.DefaultWidth))
	v.SetDefault("window.height", int(sim.DefaultHeight))
	v.SetDefault("window.title", "Interactive Particle System with UI and Wind")
	v.SetDefault("window.tps", 60)

	// -- Simulation --
	v.SetDefault("sim.particles", sim.DefaultParticles)
	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.gravity", sim.DefaultGravity)
	v.SetDefault("sim.wind_force", sim.DefaultWindForce)
	v.SetDefault("sim.interaction_radius", sim.DefaultInteractionRadius)
	v.SetDefault("sim.explosion_scale", sim.DefaultExplosionScale)
	v.SetDefault("sim.curl_step", sim.DefaultCurlStep)
	v.SetDefault("sim.ui_strip_height", sim.DefaultUIStripHeight)
	v.SetDefault("sim.turbulence", 0.0)
	v.SetDefault("sim.turbulence_scale", sim.DefaultTurbulenceScale)

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
}

// NewDefaultConfig returns the configuration with nothing overridden.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load reads defaults, the optional config file and DUSTWIND_* environment
// variables from v. A missing file is only an error when path is explicit.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("dustwind")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("DUSTWIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the simulation cannot run
// with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, errors.New("window.tps must be a positive integer"))
	}
	if c.Sim.Particles < 0 {
		errs = append(errs, errors.New("sim.particles must not be negative"))
	}
	if c.Sim.InteractionRadius <= 0 {
		errs = append(errs, errors.New("sim.interaction_radius must be positive"))
	}
	if c.Sim.UIStripHeight <= 0 || c.Sim.UIStripHeight >= float64(c.Window.Height) {
		errs = append(errs, fmt.Errorf("sim.ui_strip_height must be in (0, %d)", c.Window.Height))
	}
	if c.Sim.ExplosionScale < 0 {
		errs = append(errs, errors.New("sim.explosion_scale must not be negative"))
	}
	if c.Sim.Turbulence < 0 {
		errs = append(errs, errors.New("sim.turbulence must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// ResolveSeed returns the configured seed, or a clock-derived one when the
// seed is zero.
func (c *Config) ResolveSeed() int64 {
	if c.Sim.Seed != 0 {
		return c.Sim.Seed
	}
	return time.Now().UnixNano()
}

// Params converts the configuration into simulation parameters drawing from
// the given seed.
func (c *Config) Params(seed int64) sim.Params {
	w, h := float64(c.Window.Width), float64(c.Window.Height)
	return sim.Params{
		Width:             w,
		Height:            h,
		Particles:         c.Sim.Particles,
		Gravity:           c.Sim.Gravity,
		WindForce:         c.Sim.WindForce,
		InteractionRadius: c.Sim.InteractionRadius,
		ExplosionScale:    c.Sim.ExplosionScale,
		CurlStep:          c.Sim.CurlStep,
		Turbulence:        c.Sim.Turbulence,
		TurbulenceScale:   c.Sim.TurbulenceScale,
		Layout:            sim.NewLayout(w, c.Sim.UIStripHeight),
		Rand:              rand.New(rand.NewSource(seed)),
	}
}
