package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// AccountSeed provisions one demo account at startup.
type AccountSeed struct {
	Name  string   `yaml:"name"  mapstructure:"name"`
	Roles []string `yaml:"roles" mapstructure:"roles"` // allowed role names, empty = any
}

type Config struct {
	Listen            string        `yaml:"listen"              mapstructure:"listen"`
	PolicyPath        string        `yaml:"policy_path"         mapstructure:"policy_path"`
	UseOperatorGroups bool          `yaml:"use_operator_groups" mapstructure:"use_operator_groups"`
	EnableCORS        bool          `yaml:"enable_cors"         mapstructure:"enable_cors"`
	Accounts          []AccountSeed `yaml:"accounts"            mapstructure:"accounts"`
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".rbacd"), nil
}

func loadConfig(path string) (*Config, error) {
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("listen", ":8086")
	v.SetDefault("policy_path", "rbac.yaml")
	v.SetDefault("use_operator_groups", true)
	v.SetDefault("enable_cors", false)

	// Env overrides: RBAC_LISTEN, RBAC_POLICY_PATH, etc.
	v.SetEnvPrefix("RBAC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Read file if it exists, otherwise return defaults without error
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
