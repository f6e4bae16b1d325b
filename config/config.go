package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/daedaleanai/buildroot/log"
)

// Config holds the user configuration of buildroot.
type Config struct {
	// BuildDir overrides the build directory of every project.
	BuildDir string `mapstructure:"build_dir"`
	// MinPluginVersions maps plugin artifact names to the lowest acceptable version.
	MinPluginVersions map[string]string `mapstructure:"min_plugin_versions"`
	// Spinner enables the progress spinner on interactive terminals.
	Spinner bool `mapstructure:"spinner"`
}

const configFileName = "config"
const configFileType = "yaml"
const envPrefix = "BUILDROOT"

func getConfigDir() (string, error) {
	if dir, ok := os.LookupEnv("BUILDROOT_CONFIG_DIR"); ok && dir != "" {
		return homedir.Expand(dir)
	}

	if xdgConfigHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "buildroot"), nil
	}

	homeDir, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("unable to locate the configuration directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "buildroot"), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(configFileType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("build_dir", "")
	v.SetDefault("min_plugin_versions", map[string]string{})
	v.SetDefault("spinner", true)
	return v
}

// Load reads the configuration from `configFile`, or from the default configuration
// directory when `configFile` is empty. A missing default configuration file is not an error.
func Load(configFile string) (Config, error) {
	v := newViper()

	if configFile != "" {
		expanded, err := homedir.Expand(configFile)
		if err != nil {
			return Config{}, err
		}
		v.SetConfigFile(expanded)
	} else {
		configDir, err := getConfigDir()
		if err != nil {
			log.Debug("%s. Using default configuration.\n", err)
		} else {
			v.SetConfigName(configFileName)
			v.AddConfigPath(configDir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading configuration: %w", err)
		}
		log.Debug("No configuration file found. Using default configuration.\n")
	} else {
		log.Debug("Loaded configuration from '%s'.\n", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("error decoding configuration: %w", err)
	}
	if config.MinPluginVersions == nil {
		config.MinPluginVersions = map[string]string{}
	}
	log.Debug("Running with configuration: %+v\n", config)
	return config, nil
}
