package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings of one archival run. Empty directory fields are
// derived from OutDir and DataDir by Load.
type Config struct {
	Token          string `mapstructure:"token"`
	Cookie         string `mapstructure:"cookie"`
	NoSlackConnect bool   `mapstructure:"no_slack_connect"`

	LogLevel string `mapstructure:"log_level"`
	LogDir   string `mapstructure:"log_dir"`

	OutDir        string `mapstructure:"out_dir"`
	DataDir       string `mapstructure:"data_dir"`
	EmojiDir      string `mapstructure:"emoji_dir"`
	BasicEmojiDir string `mapstructure:"basic_emoji_dir"`

	BasicTable    string `mapstructure:"basic_table"`
	BasicImageDir string `mapstructure:"basic_image_dir"`

	Workers            int     `mapstructure:"workers"`
	DownloadsPerSecond float64 `mapstructure:"downloads_per_second"`
	ProxyURL           string  `mapstructure:"proxy_url"`

	MetricsAddr string `mapstructure:"metrics_addr"`
	IndexFile   string `mapstructure:"index_file"`
	IndexDB     string `mapstructure:"index_db"`
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"log-level":        "log_level",
	"out-dir":          "out_dir",
	"no-slack-connect": "no_slack_connect",
	"workers":          "workers",
	"index-db":         "index_db",
}

// Load reads configPath (or config.yaml from the usual places), environment
// variables prefixed SLACK_ARCHIVE_ and the flags that were set.
// SLACK_TOKEN and SLACK_COOKIE are honoured as well.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("token", "")
	v.SetDefault("cookie", "")
	v.SetDefault("no_slack_connect", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_dir", "")
	v.SetDefault("data_dir", "")
	v.SetDefault("emoji_dir", "")
	v.SetDefault("basic_emoji_dir", "")
	v.SetDefault("proxy_url", "")
	v.SetDefault("metrics_addr", "")
	v.SetDefault("index_file", "")
	v.SetDefault("index_db", "")
	v.SetDefault("out_dir", "slack-archive")
	v.SetDefault("basic_table", "emoji.json")
	v.SetDefault("basic_image_dir", filepath.Join("img", "google", "64"))
	v.SetDefault("workers", 4)
	v.SetDefault("downloads_per_second", 10)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.slack-archive")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("SLACK_ARCHIVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("token", "SLACK_ARCHIVE_TOKEN", "SLACK_TOKEN"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("cookie", "SLACK_ARCHIVE_COOKIE", "SLACK_COOKIE"); err != nil {
		return nil, err
	}

	if flags != nil {
		for flag, key := range flagKeys {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyDerived()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDerived() {
	if c.DataDir == "" {
		c.DataDir = filepath.Join(c.OutDir, "data")
	}
	if c.EmojiDir == "" {
		c.EmojiDir = filepath.Join(c.DataDir, "emojis")
	}
	if c.BasicEmojiDir == "" {
		c.BasicEmojiDir = filepath.Join(c.DataDir, "emojis-basic")
	}
	if c.LogDir == "" {
		c.LogDir = filepath.Join(c.OutDir, "logs")
	}
	if c.IndexFile == "" {
		c.IndexFile = filepath.Join(c.DataDir, "emojis.json")
	}
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	if c.OutDir == "" {
		return fmt.Errorf("out_dir is not configured")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.DownloadsPerSecond < 0 {
		return fmt.Errorf("downloads_per_second must not be negative")
	}
	if !c.NoSlackConnect && c.Token == "" {
		return fmt.Errorf("token is not configured: set SLACK_TOKEN or run with --no-slack-connect")
	}
	return nil
}
