// Package config holds the runtime configuration for nimtools. Values are
// layered: command-line flags override environment variables (prefixed
// NIMTOOLS_), which override the defaults.
package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "nimtools"

// Known configuration keys.
const (
	KeyMisere     = "misere"
	KeyFairStart  = "fairstart"
	KeyHumanStart = "humanstart"
	KeySeed       = "seed"
	KeyDebug      = "debug"
)

type Config struct {
	v *viper.Viper
}

// DefaultConfig returns a config with no flags parsed; only environment
// variables and defaults apply. Used by tests.
func DefaultConfig() Config {
	c := Config{}
	if err := c.Load(nil); err != nil {
		panic(err)
	}
	return c
}

// Load parses args (without the program name) into the configuration.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("nimtools", pflag.ContinueOnError)
	fs.Bool(KeyMisere, false, "play misère rules: whoever takes the last token loses")
	fs.Bool(KeyFairStart, true, "generate positions the first player can take control of")
	fs.Bool(KeyHumanStart, true, "the human makes the first move")
	fs.Int64(KeySeed, 0, "seed for position generation; 0 draws a fresh seed per game")
	fs.Bool(KeyDebug, false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.v = viper.New()
	c.v.SetEnvPrefix(EnvPrefix)
	c.v.AutomaticEnv()
	return c.v.BindPFlags(fs)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetInt64(key string) int64 {
	return c.v.GetInt64(key)
}

// Set overrides a single value; it wins over flags and environment.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// AllSettings returns every known setting, for logging at startup.
func (c *Config) AllSettings() map[string]interface{} {
	return c.v.AllSettings()
}
