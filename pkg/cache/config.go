package cache

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the location of the durable layout cache.
type Config interface {
	BasePath() string
}

// LoadConfig discovers configuration from a .gridstate file in the
// working directory and GRIDSTATE_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.gridstate.db")
	viper.SetConfigName(".gridstate") // .yaml is implicit
	viper.SetEnvPrefix("GRIDSTATE")
	viper.AutomaticEnv()

	if override := os.Getenv("GRIDSTATE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{Path: viper.GetString("path")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	if expanded, err := homedir.Expand(f.Path); err == nil {
		return expanded
	}
	return f.Path
}
