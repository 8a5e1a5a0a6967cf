// Package config loads runtime settings from defaults, an optional config file, .env and FNF_ environment variables
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lixenwraith/flicknfire/engine"
	"github.com/lixenwraith/flicknfire/parameter"
)

// EnvPrefix namespaces environment overrides, arena.width reads FNF_ARENA_WIDTH
const EnvPrefix = "FNF"

// ConfigName is the config file base name searched in the load directory
const ConfigName = "flicknfire"

// Config is the typed view of every key
type Config struct {
	ArenaWidth   float64
	ArenaHeight  float64
	Mirror       bool
	FireCooldown time.Duration
	TickInterval time.Duration
	Seed         int64

	StorePath string
	StoreKey  string

	NetworkAddress    string
	BroadcastInterval time.Duration

	AudioEnabled bool
	AudioVolume  float64

	LogLevel  string
	LogPretty bool

	RenderEnabled bool

	// File is the config file that was read, empty when defaults and environment only
	File string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("arena.width", parameter.ArenaWidth)
	v.SetDefault("arena.height", parameter.ArenaHeight)
	v.SetDefault("gesture.mirror", true)
	v.SetDefault("fire.cooldown", parameter.FireCooldown)
	v.SetDefault("tick.interval", parameter.TickInterval)
	v.SetDefault("seed", int64(0))

	v.SetDefault("store.path", "flicknfire.db")
	v.SetDefault("store.key", parameter.BestScoreKey)

	v.SetDefault("network.address", parameter.NetworkAddress)
	v.SetDefault("network.broadcast_interval", parameter.NetworkBroadcastInterval)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.AudioVolume)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	v.SetDefault("render.enabled", false)
}

// Load reads configuration from dir
// A missing config file or .env is not an error; a malformed one is
func Load(dir string) (*Config, error) {
	envFile := filepath.Join(dir, ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigName)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		ArenaWidth:        v.GetFloat64("arena.width"),
		ArenaHeight:       v.GetFloat64("arena.height"),
		Mirror:            v.GetBool("gesture.mirror"),
		FireCooldown:      v.GetDuration("fire.cooldown"),
		TickInterval:      v.GetDuration("tick.interval"),
		Seed:              v.GetInt64("seed"),
		StorePath:         v.GetString("store.path"),
		StoreKey:          v.GetString("store.key"),
		NetworkAddress:    v.GetString("network.address"),
		BroadcastInterval: v.GetDuration("network.broadcast_interval"),
		AudioEnabled:      v.GetBool("audio.enabled"),
		AudioVolume:       v.GetFloat64("audio.volume"),
		LogLevel:          v.GetString("log.level"),
		LogPretty:         v.GetBool("log.pretty"),
		RenderEnabled:     v.GetBool("render.enabled"),
		File:              v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the engine cannot run with
func (c *Config) Validate() error {
	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		return fmt.Errorf("invalid arena size %gx%g", c.ArenaWidth, c.ArenaHeight)
	}
	if c.FireCooldown < 0 {
		return fmt.Errorf("invalid fire cooldown %s", c.FireCooldown)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("invalid tick interval %s", c.TickInterval)
	}
	if c.BroadcastInterval <= 0 {
		return fmt.Errorf("invalid broadcast interval %s", c.BroadcastInterval)
	}
	if c.StoreKey == "" {
		return errors.New("store key must not be empty")
	}
	return nil
}

// Settings converts the gameplay keys into engine settings
// Seed 0 picks a time-based seed
func (c *Config) Settings() engine.Settings {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return engine.Settings{
		ArenaWidth:   c.ArenaWidth,
		ArenaHeight:  c.ArenaHeight,
		FireCooldown: c.FireCooldown,
		Mirror:       c.Mirror,
		Seed:         seed,
	}
}
