package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig resolves the database location. Precedence: EISEN_PATH env,
// a .eisen config file in the working directory, then ~/.eisen.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.eisen.db")
	viper.SetConfigName(".eisen") // .yaml is implicit
	viper.SetEnvPrefix("EISEN")
	viper.AutomaticEnv()

	if override := os.Getenv("EISEN_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("error expanding db path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
