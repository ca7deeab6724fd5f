package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	// DefaultConfigFile is the config file read when none is given
	DefaultConfigFile = "config.yaml"
	// DefaultEnvFile is loaded into the environment when it exists
	DefaultEnvFile = ".env"

	defaultRegion         = "us-east-1"
	defaultBookmarkPrefix = "bookmarks"
	defaultBookmarkDir    = ".gluego/bookmarks"
)

// Config represents the configuration file specified by the user
type Config struct {
	Region         string `yaml:"region"`
	Local          bool   `yaml:"local"`
	LocalEndpoint  string `yaml:"localEndpoint"`
	LogLevel       int    `yaml:"logLevel"`
	AccountID      string `yaml:"accountID"`
	AssetsBucket   string `yaml:"assetsBucket"`
	BookmarkBucket string `yaml:"bookmarkBucket"`
	BookmarkPrefix string `yaml:"bookmarkPrefix"`
	BookmarkDir    string `yaml:"bookmarkDir"`
	NotifyQueue    string `yaml:"notifyQueue"`
	LogGroup       string `yaml:"logGroup"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	conf := &Config{}
	conf.setDefaults()
	return conf
}

// ReadLocalConfigFile reads the config file from the driver's file system
// note that the path can be absolute or relative path
func ReadLocalConfigFile(path string) (*Config, error) {
	var conf Config

	confFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(confFile, &conf)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	conf.setDefaults()
	return &conf, nil
}

// Load loads the env file and then the config file. A missing config file
// is not an error when it is the default one.
func Load(path string) (*Config, error) {
	if err := LoadEnv(DefaultEnvFile); err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigFile
	}

	conf, err := ReadLocalConfigFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultConfigFile {
			return Default(), nil
		}
		return nil, err
	}

	return conf, nil
}

// LoadEnv loads the variables in the env file into the process environment
// without overriding variables that are already set
func LoadEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// UsesAWS reports whether a job run needs aws clients
func (c *Config) UsesAWS() bool {
	return c.BookmarkBucket != "" || c.NotifyQueue != "" || c.LogGroup != ""
}

func (c *Config) setDefaults() {
	if c.Region == "" {
		c.Region = os.Getenv("AWS_REGION")
	}
	if c.Region == "" {
		c.Region = defaultRegion
	}
	if c.BookmarkPrefix == "" {
		c.BookmarkPrefix = defaultBookmarkPrefix
	}
	if c.BookmarkDir == "" {
		c.BookmarkDir = defaultBookmarkDir
	}
}
