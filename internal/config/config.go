// Package config loads dockmon settings from defaults, an optional YAML
// config file and DOCKMON_* environment variables, in that order.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".dockmon.yaml"
	// GlobalConfigDir holds the global config, relative to $HOME.
	GlobalConfigDir = ".config/dockmon"
)

// Config holds all runtime settings.
type Config struct {
	Session string // tmux session name
	LogFile string
	Verbose bool

	ProcessInterval time.Duration // docker ps poll interval
	StatsInterval   time.Duration // docker stats poll interval
	SummaryInterval time.Duration // summary recompute interval
	QueryTimeout    time.Duration // per external command
	RedrawMaxWait   time.Duration // redraw even without data changes

	CPUYellow float64
	CPURed    float64
	MemYellow float64
	MemRed    float64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("session", "docker-monitor")
	v.SetDefault("log_file", "/tmp/docker_monitor.log")
	v.SetDefault("verbose", false)
	v.SetDefault("process_interval", 5*time.Second)
	v.SetDefault("stats_interval", 5*time.Second)
	v.SetDefault("summary_interval", 5*time.Second)
	v.SetDefault("query_timeout", 5*time.Second)
	v.SetDefault("redraw_max_wait", 20*time.Second)
	v.SetDefault("thresholds.cpu_yellow", 50.0)
	v.SetDefault("thresholds.cpu_red", 80.0)
	v.SetDefault("thresholds.mem_yellow", 50.0)
	v.SetDefault("thresholds.mem_red", 80.0)
}

// Load reads the configuration. An explicit path (from --config) must
// exist; otherwise the file is optional and searched in the current
// directory, then ~/.config/dockmon/config.yaml.
func Load(explicit string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("DOCKMON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := findConfigFile(explicit); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else if explicit != "" {
		// Explicit paths must exist; surface the stat error.
		_, err := os.Stat(explicit)
		return nil, err
	}

	return &Config{
		Session:         v.GetString("session"),
		LogFile:         v.GetString("log_file"),
		Verbose:         v.GetBool("verbose"),
		ProcessInterval: v.GetDuration("process_interval"),
		StatsInterval:   v.GetDuration("stats_interval"),
		SummaryInterval: v.GetDuration("summary_interval"),
		QueryTimeout:    v.GetDuration("query_timeout"),
		RedrawMaxWait:   v.GetDuration("redraw_max_wait"),
		CPUYellow:       v.GetFloat64("thresholds.cpu_yellow"),
		CPURed:          v.GetFloat64("thresholds.cpu_red"),
		MemYellow:       v.GetFloat64("thresholds.mem_yellow"),
		MemRed:          v.GetFloat64("thresholds.mem_red"),
	}, nil
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		global := filepath.Join(home, GlobalConfigDir, "config.yaml")
		if _, err := os.Stat(global); err == nil {
			return global
		}
	}
	return ""
}
