package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every setting name when read from the environment
const EnvPrefix = "INVADERS_"

// Variants of the simulation
const (
	VariantArcade  = "arcade"
	VariantPhysics = "physics"
)

// Enemy spawn placement policies
const (
	SpawnRandom = "random"
	SpawnFixed  = "fixed"
)

// Config holds every tunable of one simulation run
type Config struct {
	// Viewport, centered on the origin
	Width  float64
	Height float64

	TickRate    int // Fixed ticks per second
	BaseSpeed   float64
	SpriteScale float64

	EnemyMax            int
	RespawnDelay        float64 // Seconds
	EnemySpawnInterval  float64 // Seconds
	PlayerSpawnInterval float64 // Seconds
	DespawnMargin       float64

	ExplosionPeriod time.Duration

	EnemyFireChance  float64 // One roll per tick for all aligned enemies, 0 disables enemy fire
	EnemyFireBand    float64
	EnemySpawnPolicy string
	EnemyWobble      bool

	PlayerLaserSpeed float64
	EnemyLaserSpeed  float64

	// Heading of sprite art relative to the stick angle
	HeadingOffset float64
	StickDeadzone float64

	Variant           string
	GravityConstant   float64
	GravityMultiplier float64
	Softening         float64 // Lower bound on squared distance
	ThrustForce       float64

	Seed uint64
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Width:               598,
		Height:              676,
		TickRate:            60,
		BaseSpeed:           500,
		SpriteScale:         0.5,
		EnemyMax:            2,
		RespawnDelay:        2.0,
		EnemySpawnInterval:  1.0,
		PlayerSpawnInterval: 0.5,
		DespawnMargin:       200,
		ExplosionPeriod:     50 * time.Millisecond,
		EnemyFireChance:     1.0 / 60.0,
		EnemyFireBand:       5,
		EnemySpawnPolicy:    SpawnRandom,
		EnemyWobble:         true,
		PlayerLaserSpeed:    2,
		EnemyLaserSpeed:     1.5,
		HeadingOffset:       math.Pi / 2,
		StickDeadzone:       0.2,
		Variant:             VariantArcade,
		GravityConstant:     6.674e-11,
		GravityMultiplier:   1e16,
		Softening:           100,
		ThrustForce:         400,
		Seed:                1,
	}
}

// TickDuration returns the length of one fixed tick
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// TickSeconds returns the length of one fixed tick in seconds
func (c *Config) TickSeconds() float64 {
	return 1.0 / float64(c.TickRate)
}

// Physics reports whether the rigid-body variant is selected
func (c *Config) Physics() bool {
	return c.Variant == VariantPhysics
}

// Validate checks that the configuration can drive a simulation
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %vx%v", c.Width, c.Height))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %d", c.TickRate))
	}
	if c.EnemyMax < 0 {
		errs = append(errs, fmt.Errorf("enemy max must not be negative, got %d", c.EnemyMax))
	}
	if c.SpriteScale <= 0 {
		errs = append(errs, fmt.Errorf("sprite scale must be positive, got %v", c.SpriteScale))
	}
	if c.BaseSpeed < 0 {
		errs = append(errs, fmt.Errorf("base speed must not be negative, got %v", c.BaseSpeed))
	}
	if c.DespawnMargin < 0 {
		errs = append(errs, fmt.Errorf("despawn margin must not be negative, got %v", c.DespawnMargin))
	}
	if c.EnemySpawnInterval <= 0 || c.PlayerSpawnInterval <= 0 {
		errs = append(errs, errors.New("spawn intervals must be positive"))
	}
	if c.ExplosionPeriod <= 0 {
		errs = append(errs, fmt.Errorf("explosion period must be positive, got %v", c.ExplosionPeriod))
	}
	if c.EnemyFireChance < 0 || c.EnemyFireChance > 1 {
		errs = append(errs, fmt.Errorf("enemy fire chance must be within [0, 1], got %v", c.EnemyFireChance))
	}
	if c.StickDeadzone < 0 || c.StickDeadzone >= 1 {
		errs = append(errs, fmt.Errorf("stick deadzone must be within [0, 1), got %v", c.StickDeadzone))
	}
	if c.Softening < 0 {
		errs = append(errs, fmt.Errorf("softening must not be negative, got %v", c.Softening))
	}
	switch c.Variant {
	case VariantArcade, VariantPhysics:
	default:
		errs = append(errs, fmt.Errorf("unknown variant %q", c.Variant))
	}
	switch c.EnemySpawnPolicy {
	case SpawnRandom, SpawnFixed:
	default:
		errs = append(errs, fmt.Errorf("unknown enemy spawn policy %q", c.EnemySpawnPolicy))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Load builds a configuration from defaults, then the env file (if it
// exists), then INVADERS_* environment variables, then overrides.
func Load(envFile string, overrides Overrides) (*Config, error) {
	cfg := Default()

	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", envFile, err)
		}
		if err := cfg.apply(vars, envFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.apply(environ(), "environment"); err != nil {
		return nil, err
	}

	if err := cfg.applyOverrides(overrides); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// environ returns INVADERS_* variables of the process environment
func environ() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(key, EnvPrefix) {
			vars[key] = value
		}
	}
	return vars
}

// apply sets every known setting present in vars, keyed by INVADERS_ name.
// Unknown INVADERS_ keys are rejected.
func (c *Config) apply(vars map[string]string, source string) error {
	known := make(map[string]setting)
	for _, s := range c.settings() {
		known[s.envKey()] = s
	}
	for key, value := range vars {
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		s, ok := known[key]
		if !ok {
			return fmt.Errorf("%s: unknown setting %s", source, key)
		}
		if err := s.set(value); err != nil {
			return fmt.Errorf("%s: %s: %w", source, key, err)
		}
	}
	return nil
}

func (c *Config) applyOverrides(overrides Overrides) error {
	if len(overrides) == 0 {
		return nil
	}
	known := make(map[string]setting)
	for _, s := range c.settings() {
		known[s.name] = s
	}
	for name, value := range overrides {
		s, ok := known[name]
		if !ok {
			return fmt.Errorf("unknown setting %s", name)
		}
		if err := s.set(value); err != nil {
			return fmt.Errorf("-%s: %w", name, err)
		}
	}
	return nil
}

// setting binds a name to one Config field
type setting struct {
	name  string
	usage string
	ptr   any
}

func (s setting) envKey() string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(s.name, "-", "_"))
}

func (s setting) set(value string) error {
	value = strings.TrimSpace(value)
	switch p := s.ptr.(type) {
	case *float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		*p = v
	case *int:
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		*p = v
	case *uint64:
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		*p = v
	case *bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		*p = v
	case *time.Duration:
		v, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*p = v
	case *string:
		*p = strings.ToLower(value)
	default:
		return fmt.Errorf("unsupported setting type %T", s.ptr)
	}
	return nil
}

func (s setting) String() string {
	switch p := s.ptr.(type) {
	case *float64:
		return strconv.FormatFloat(*p, 'g', -1, 64)
	case *int:
		return strconv.Itoa(*p)
	case *uint64:
		return strconv.FormatUint(*p, 10)
	case *bool:
		return strconv.FormatBool(*p)
	case *time.Duration:
		return p.String()
	case *string:
		return *p
	}
	return ""
}

func (c *Config) settings() []setting {
	return []setting{
		{"width", "viewport width", &c.Width},
		{"height", "viewport height", &c.Height},
		{"tick-rate", "fixed ticks per second", &c.TickRate},
		{"base-speed", "velocity multiplier in units per second", &c.BaseSpeed},
		{"sprite-scale", "uniform scale of every sprite", &c.SpriteScale},
		{"enemy-max", "maximum live enemies", &c.EnemyMax},
		{"respawn-delay", "seconds before the player respawns", &c.RespawnDelay},
		{"enemy-spawn-interval", "seconds between enemy spawn passes", &c.EnemySpawnInterval},
		{"player-spawn-interval", "seconds between player spawn passes", &c.PlayerSpawnInterval},
		{"despawn-margin", "distance beyond the viewport before lasers are removed", &c.DespawnMargin},
		{"explosion-period", "time per explosion frame", &c.ExplosionPeriod},
		{"enemy-fire-chance", "probability per tick that the aligned enemies fire, one roll for all", &c.EnemyFireChance},
		{"enemy-fire-band", "horizontal half-width within which enemies fire", &c.EnemyFireBand},
		{"enemy-spawn-policy", "enemy placement: random or fixed", &c.EnemySpawnPolicy},
		{"enemy-wobble", "enemies circle around their position", &c.EnemyWobble},
		{"player-laser-speed", "player laser speed in direction units", &c.PlayerLaserSpeed},
		{"enemy-laser-speed", "enemy laser speed in direction units", &c.EnemyLaserSpeed},
		{"heading-offset", "radians subtracted from the stick angle", &c.HeadingOffset},
		{"stick-deadzone", "stick magnitude below which input is ignored", &c.StickDeadzone},
		{"variant", "simulation variant: arcade or physics", &c.Variant},
		{"gravity-constant", "gravitational constant", &c.GravityConstant},
		{"gravity-multiplier", "scale applied to gravitational force", &c.GravityMultiplier},
		{"softening", "lower bound on squared distance between bodies", &c.Softening},
		{"thrust-force", "force applied by the player's thruster", &c.ThrustForce},
		{"seed", "random seed", &c.Seed},
	}
}
