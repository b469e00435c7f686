package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings is the string key-value settings store shared with the host.
// Credentials, numeric UI settings and boolean flags all go through it.
type Settings interface {
	Get(key string) string
	Set(key, value string) error
}

type viperSettings struct {
	v *viper.Viper
}

// NewSettings adapts a viper instance to Settings. Set persists the config file.
func NewSettings(v *viper.Viper) Settings {
	return &viperSettings{v: v}
}

func (s *viperSettings) Get(key string) string {
	return s.v.GetString(key)
}

func (s *viperSettings) Set(key, value string) error {
	s.v.Set(key, value)

	err := s.v.WriteConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = s.v.SafeWriteConfig()
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
