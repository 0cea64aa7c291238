package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/hoangtien79/FunBuyPlace/internal/platform/logger"
)

type Config struct {
	Logger  logger.Config `mapstructure:"logger"`
	Chat    ChatConfig    `mapstructure:"chat"`
	TabBar  TabBarConfig  `mapstructure:"tab_bar"`
	Search  SearchConfig  `mapstructure:"search"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ChatConfig drives the conversation sessions: how long the simulated
// counterparty waits before answering, what it says, and the message
// length cap.
type ChatConfig struct {
	ReplyDelay       time.Duration `mapstructure:"reply_delay"`
	ReplyText        string        `mapstructure:"reply_text"`
	MaxMessageLength int           `mapstructure:"max_message_length"`
}

// TabBarConfig lists the configured tabs in display order plus the
// spring parameters the animation driver uses to move the indicator.
// The core only resolves the target index; the spring values are passed
// through untouched.
type TabBarConfig struct {
	Tabs   []TabConfig  `mapstructure:"tabs"`
	Spring SpringConfig `mapstructure:"spring"`
}

type TabConfig struct {
	Name  string `mapstructure:"name"`
	Route string `mapstructure:"route"`
	Icon  string `mapstructure:"icon"`
	Label string `mapstructure:"label"`
}

type SpringConfig struct {
	Damping   float64 `mapstructure:"damping"`
	Stiffness float64 `mapstructure:"stiffness"`
}

type SearchConfig struct {
	RecentLimit int `mapstructure:"recent_limit"`
}

type MetricsConfig struct {
	Port string `mapstructure:"port"`
}

// Load reads configuration from the given path (file or directory),
// falling back to defaults when no config file exists.
func Load(path string) (*Config, error) {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "json")

	viper.SetDefault("chat.reply_delay", "2s")
	viper.SetDefault("chat.reply_text", "Sure! I'm available this weekend. Would Saturday afternoon work for you?")
	viper.SetDefault("chat.max_message_length", 500)

	viper.SetDefault("tab_bar.spring.damping", 15.0)
	viper.SetDefault("tab_bar.spring.stiffness", 150.0)

	viper.SetDefault("search.recent_limit", 10)

	viper.SetDefault("metrics.port", "")

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		if fi, statErr := os.Stat(path); statErr == nil && !fi.IsDir() {
			viper.SetConfigFile(path)
		} else {
			viper.AddConfigPath(path)
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if len(cfg.TabBar.Tabs) == 0 {
		cfg.TabBar.Tabs = DefaultTabs()
	}

	return &cfg, nil
}

// DefaultTabs mirrors the four tabs of the mobile shell.
func DefaultTabs() []TabConfig {
	return []TabConfig{
		{Name: "home", Route: "/", Icon: "house", Label: "Home"},
		{Name: "search", Route: "/search", Icon: "magnifyingglass", Label: "Search"},
		{Name: "messages", Route: "/messages", Icon: "message", Label: "Messages"},
		{Name: "profile", Route: "/profile", Icon: "person", Label: "Profile"},
	}
}
