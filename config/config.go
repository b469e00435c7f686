// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/twitchkit/twitchkit/constant"
	"github.com/twitchkit/twitchkit/filesystem"
	"github.com/twitchkit/twitchkit/where"
)

// EnvKeyReplacer normalizes configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and file resolution.
func Setup() error {
	return setup(viper.GetViper(), where.Config())
}

func setup(v *viper.Viper, dir string) error {
	v.SetConfigName(constant.App)
	v.SetConfigType("toml")
	v.SetFs(filesystem.API())
	v.AddConfigPath(dir)

	v.SetEnvPrefix(constant.App)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		v.MustBindEnv(env)
	}

	v.SetTypeByDefaultValue(true)
	for name, field := range Default {
		v.SetDefault(name, field.Value)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}
