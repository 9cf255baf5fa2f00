package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"InkBoard/internal/state"
)

const appName = "inkboard"

// DefaultSharePort is where the LAN mirror listens when enabled.
const DefaultSharePort = 8420

type Config struct {
	Theme       string            `json:"theme"`
	Invert      bool              `json:"invert"`
	DesktopMode bool              `json:"desktopMode"`
	Paper       bool              `json:"paper"`
	Pen         state.StrokeStyle `json:"pen"`
	Share       Share             `json:"share"`
	Document    string            `json:"document"`
}

type Share struct {
	Enabled bool   `json:"enabled"`
	Port    int    `json:"port"`
	Name    string `json:"name"`
}

// Default is the configuration written on first start.
func Default() *Config {
	return &Config{
		Theme:       "Default",
		DesktopMode: true,
		Paper:       true,
		Pen:         state.DefaultStyle(),
		Share:       Share{Port: DefaultSharePort, Name: appName},
	}
}

// GetAppConfig loads the configuration from the user config directory,
// creating it with defaults when missing.
func GetAppConfig() (*Config, error) {
	path, err := appPath()
	if err != nil {
		return nil, errors.Wrap(err, "GetAppConfig: failed to access config path")
	}
	return Load(path)
}

// Load reads path, creating it with defaults when it does not exist.
func Load(path string) (*Config, error) {
	cfgfile, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "config: failed to open config")
		}
		conf := Default()
		conf.Document = defaultDocument(path)
		if err := conf.Save(path); err != nil {
			return nil, err
		}
		return conf, nil
	}
	defer cfgfile.Close()

	conf := Default()
	if err := json.NewDecoder(cfgfile).Decode(conf); err != nil {
		return nil, errors.Wrap(err, "config: failed to decode config")
	}
	conf.normalize(path)
	return conf, nil
}

func (c *Config) normalize(path string) {
	c.Pen = c.Pen.Clamp()
	if c.Share.Port <= 0 || c.Share.Port > 65535 {
		c.Share.Port = DefaultSharePort
	}
	if c.Share.Name == "" {
		c.Share.Name = appName
	}
	if c.Document == "" {
		c.Document = defaultDocument(path)
	}
}

// Save writes c to path.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "config: failed to create config directory")
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "config: failed to marshal config")
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.Wrap(err, "config: failed to write config")
	}
	return nil
}

// SaveAppConfig stores c in the user config directory.
func (c *Config) SaveAppConfig() error {
	path, err := appPath()
	if err != nil {
		return errors.Wrap(err, "SaveAppConfig: failed to access config path")
	}
	return c.Save(path)
}

// Scheme maps the theme name to a color scheme. "Default" follows the
// caller supplied system variant.
func (c *Config) Scheme(system state.ColorScheme) state.ColorScheme {
	switch c.Theme {
	case "Dark":
		return state.Dark
	case "Light":
		return state.Light
	}
	return system
}

func appPath() (string, error) {
	oscfg, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "appPath: failed to get config dir")
	}
	return filepath.Join(oscfg, appName, "settings.json"), nil
}

func defaultDocument(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "surface.json")
}
