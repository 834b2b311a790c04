package cmd

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/prakharpd/portfolio/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "PORTFOLIO_"

var replacer = strings.NewReplacer(".", "_", "-", "_")

type argType interface {
	string | bool | int | time.Duration
}

// boundEnvVar is a flag that overrides one configuration field. The flag
// wins over its environment variable, which wins over the config file.
type boundEnvVar[T argType] struct {
	Name, Description string
	Env, Short        *string
	// Count registers an int as a repeatable counter flag (-vvv).
	Count  bool
	Target func(*config.Config) *T
}

func (b boundEnvVar[T]) envName() string {
	if b.Env != nil {
		return *b.Env
	}
	return envPrefix + strings.ToUpper(replacer.Replace(b.Name))
}

func bindEnvMap[T argType](cmd *cobra.Command, vars []boundEnvVar[T]) {
	for _, cfg := range vars {
		desc := fmt.Sprintf("[%s] %s", cfg.envName(), cfg.Description)
		short := ""
		if cfg.Short != nil {
			short = *cfg.Short
		}

		flags := cmd.PersistentFlags()
		var zero T
		switch any(zero).(type) {
		case string:
			flags.StringP(cfg.Name, short, "", desc)
		case bool:
			flags.BoolP(cfg.Name, short, false, desc)
		case int:
			if cfg.Count {
				flags.CountP(cfg.Name, short, desc)
			} else {
				flags.IntP(cfg.Name, short, 0, desc)
			}
		case time.Duration:
			flags.DurationP(cfg.Name, short, 0, desc)
		default:
			log.Panicf("command-args parsing error: unhandled default case for type %T", zero)
		}

		_ = viper.BindPFlag(cfg.Name, flags.Lookup(cfg.Name))
		_ = viper.BindEnv(cfg.Name, cfg.envName())
	}
}

// applyEnvMap copies every flag or environment variable that was set onto c.
func applyEnvMap[T argType](c *config.Config, vars []boundEnvVar[T]) {
	for _, cfg := range vars {
		if !viper.IsSet(cfg.Name) {
			continue
		}
		switch target := any(cfg.Target(c)).(type) {
		case *string:
			*target = viper.GetString(cfg.Name)
		case *bool:
			*target = viper.GetBool(cfg.Name)
		case *int:
			*target = viper.GetInt(cfg.Name)
		case *time.Duration:
			*target = viper.GetDuration(cfg.Name)
		}
	}
}
