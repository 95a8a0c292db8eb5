// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	DataDir      string `mapstructure:"DATA_DIR"`
	CounterFile  string `mapstructure:"COUNTER_FILE"`
	Environement string `mapstructure:"GO_ENV"`
}

// Load read configuration from file or environment variables.
// A missing config file is not an error; defaults and the environment apply.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("DATA_DIR", "customers")
	viper.SetDefault("COUNTER_FILE", "next_account_id.txt")
	viper.SetDefault("GO_ENV", "production")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
