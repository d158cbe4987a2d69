package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string `yaml:"addr"`          // status API bind address
	LogDir       string `yaml:"log_dir"`       // logs directory
	RendererBin  string `yaml:"renderer"`      // WeasyPrint executable name or path
	AlertWebhook string `yaml:"alert_webhook"` // Slack webhook pinged when a host fails the probe
}

func FromEnv() Config {
	// Bind address (Windows-friendly default)
	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	renderer := os.Getenv("RENDERER_BIN")
	if renderer == "" {
		renderer = "weasyprint"
	}

	return Config{
		Addr:         addr,
		LogDir:       logDir,
		RendererBin:  renderer,
		AlertWebhook: os.Getenv("ALERT_WEBHOOK"),
	}
}

// Load overlays a YAML file onto the env defaults. An empty path means env
// only; keys absent from the file keep their env values.
func Load(path string) (Config, error) {
	cfg := FromEnv()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
