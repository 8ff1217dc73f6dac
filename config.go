// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cybrota/avltree/avl"
	ui "github.com/gizak/termui/v3"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

// smallest rotation settings bitmark-inc/logger accepts
const (
	minLogSize  = 20000
	minLogCount = 10
)

type TraversalConfig struct {
	DefaultOrder string `yaml:"default_order"`
}

type RenderConfig struct {
	Color      bool `yaml:"color"`
	ShowHeight bool `yaml:"show_height"`
	// role name to termui style, e.g. key: "fg:green,mod:bold"
	Theme map[string]string `yaml:"theme,omitempty"`
}

type CacheConfig struct {
	TTLMinutes     int `yaml:"ttl_minutes"`
	CleanupMinutes int `yaml:"cleanup_minutes"`
}

type IngestConfig struct {
	BloomSize   uint `yaml:"bloom_size"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

type LoggingConfig struct {
	Directory string `yaml:"directory"`
	File      string `yaml:"file"`
	Size      int    `yaml:"size"`
	Count     int    `yaml:"count"`
	Console   bool   `yaml:"console"`
	Level     string `yaml:"level"`
}

type Config struct {
	Traversal TraversalConfig `yaml:"traversal"`
	Render    RenderConfig    `yaml:"render"`
	Cache     CacheConfig     `yaml:"cache"`
	Ingest    IngestConfig    `yaml:"ingest"`
	Logging   LoggingConfig   `yaml:"logging"`
}

var defaultConfig = Config{
	Traversal: TraversalConfig{
		DefaultOrder: "in",
	},
	Render: RenderConfig{
		Color:      true,
		ShowHeight: true,
	},
	Cache: CacheConfig{
		TTLMinutes:     30,
		CleanupMinutes: 5,
	},
	Ingest: IngestConfig{
		BloomSize:   1 << 16,
		BloomHashes: 4,
	},
	Logging: LoggingConfig{
		Directory: "", // filled in from the home directory
		File:      "avltree.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Level:     "info",
	},
}

// DefaultConfig returns a fresh copy of the built-in settings.
func DefaultConfig() *Config {
	config := defaultConfig
	if config.Logging.Directory == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			config.Logging.Directory = filepath.Join(homeDir, ".avltree", "log")
		} else {
			config.Logging.Directory = filepath.Join(os.TempDir(), "avltree")
		}
	}
	return &config
}

// LoadConfig reads ~/.avltree.yaml. A missing or unreadable file yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return config, nil
	}

	// fields absent from the file keep their defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), nil
	}

	if _, err := avl.ParseOrder(config.Traversal.DefaultOrder); err != nil {
		config.Traversal.DefaultOrder = defaultConfig.Traversal.DefaultOrder
	}
	if config.Cache.TTLMinutes <= 0 {
		config.Cache.TTLMinutes = defaultConfig.Cache.TTLMinutes
	}
	if config.Cache.CleanupMinutes <= 0 {
		config.Cache.CleanupMinutes = defaultConfig.Cache.CleanupMinutes
	}
	if config.Ingest.BloomSize == 0 {
		config.Ingest.BloomSize = defaultConfig.Ingest.BloomSize
	}
	if config.Ingest.BloomHashes == 0 {
		config.Ingest.BloomHashes = defaultConfig.Ingest.BloomHashes
	}
	clampLogRotation(&config.Logging)
	if len(config.Render.Theme) > 0 {
		theme := make(map[string]string, len(config.Render.Theme))
		for role, spec := range config.Render.Theme {
			role = strings.ToLower(role)
			if createDarkColorScheme().role(role) == nil {
				continue
			}
			if _, err := parseStyleSpec(spec, ui.StyleClear); err != nil {
				continue
			}
			theme[role] = spec
		}
		config.Render.Theme = theme
	}

	return config, nil
}

// clampLogRotation raises the log file size and count to what the logger
// accepts.
func clampLogRotation(c *LoggingConfig) {
	if c.Size < minLogSize {
		c.Size = minLogSize
	}
	if c.Count < minLogCount {
		c.Count = minLogCount
	}
}

// DefaultOrder is the traversal order used when --order is not given.
func (c *Config) DefaultOrder() avl.Order {
	order, err := avl.ParseOrder(c.Traversal.DefaultOrder)
	if err != nil {
		return avl.InOrder
	}
	return order
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}

func (c *Config) CacheCleanup() time.Duration {
	return time.Duration(c.Cache.CleanupMinutes) * time.Minute
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer, configPath string) error {
	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 avltree Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	fmt.Fprintf(w, "🌳 %sTraversal:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sdefault_order%s: %s\n\n", Green, Reset, config.DefaultOrder())

	fmt.Fprintf(w, "🎨 %sRender:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %scolor%s: %t\n", Green, Reset, config.Render.Color)
	fmt.Fprintf(w, "  • %sshow_height%s: %t\n", Green, Reset, config.Render.ShowHeight)
	for _, role := range themeRoles {
		if spec, ok := config.Render.Theme[role]; ok {
			fmt.Fprintf(w, "  • %stheme.%s%s: %s\n", Green, role, Reset, spec)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "🗂  %sCache:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sttl_minutes%s: %d\n", Green, Reset, config.Cache.TTLMinutes)
	fmt.Fprintf(w, "  • %scleanup_minutes%s: %d\n\n", Green, Reset, config.Cache.CleanupMinutes)

	fmt.Fprintf(w, "📥 %sIngest:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sbloom_size%s: %d\n", Green, Reset, config.Ingest.BloomSize)
	fmt.Fprintf(w, "  • %sbloom_hashes%s: %d\n\n", Green, Reset, config.Ingest.BloomHashes)

	fmt.Fprintf(w, "📜 %sLogging:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sdirectory%s: %s\n", Green, Reset, config.Logging.Directory)
	fmt.Fprintf(w, "  • %sfile%s: %s\n", Green, Reset, config.Logging.File)
	fmt.Fprintf(w, "  • %ssize%s: %d\n", Green, Reset, config.Logging.Size)
	fmt.Fprintf(w, "  • %scount%s: %d\n", Green, Reset, config.Logging.Count)
	fmt.Fprintf(w, "  • %slevel%s: %s\n", Green, Reset, config.Logging.Level)
	fmt.Fprintf(w, "  • %sconsole%s: %t\n\n", Green, Reset, config.Logging.Console)

	fmt.Fprintf(w, "💡 To change a setting, edit %s\n", configPath)
	return nil
}
