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
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ModeMenu = "menu"
	ModeTUI  = "tui"

	configFileName = ".roster.yaml"
)

type ShellConfig struct {
	Mode   string `yaml:"mode"`
	Verify bool   `yaml:"verify"`
}

type DisplayConfig struct {
	Markdown bool `yaml:"markdown"`
	WordWrap int  `yaml:"word_wrap"`
}

type CacheConfig struct {
	Expiration time.Duration `yaml:"expiration"`
	Cleanup    time.Duration `yaml:"cleanup"`
}

type Config struct {
	Shell   ShellConfig   `yaml:"shell"`
	Display DisplayConfig `yaml:"display"`
	Cache   CacheConfig   `yaml:"cache"`
}

var defaultConfig = Config{
	Shell: ShellConfig{
		Mode:   ModeMenu,
		Verify: false,
	},
	Display: DisplayConfig{
		Markdown: true,
		WordWrap: 72,
	},
	Cache: CacheConfig{
		Expiration: detailCacheExpiration,
		Cleanup:    detailCacheCleanup,
	},
}

// LoadConfig reads ~/.roster.yaml. Any problem reading it yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the config at path, filling unset keys from the defaults.
func LoadConfigFrom(configPath string) (*Config, error) {
	cfg := defaultConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read %s: %v. Using default settings.", configPath, err)
		}
		return &cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("Failed to parse %s: %v. Using default settings.", configPath, err)
		cfg = defaultConfig
		return &cfg, nil
	}

	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	if c.Shell.Mode != ModeMenu && c.Shell.Mode != ModeTUI {
		log.Printf("Unknown shell mode %q, falling back to %q", c.Shell.Mode, ModeMenu)
		c.Shell.Mode = ModeMenu
	}
	if c.Display.WordWrap <= 0 {
		c.Display.WordWrap = defaultConfig.Display.WordWrap
	}
	if c.Cache.Expiration <= 0 {
		c.Cache.Expiration = defaultConfig.Cache.Expiration
	}
	if c.Cache.Cleanup <= 0 {
		c.Cache.Cleanup = defaultConfig.Cache.Cleanup
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfigFile(configPath); err != nil {
			fmt.Fprintf(w, "❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Fprintf(w, "🔧 Roster Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	fmt.Fprintf(w, "🐚 %sShell:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %smode%s: %s\n", Green, Reset, config.Shell.Mode)
	fmt.Fprintf(w, "  • %sverify%s: %t\n\n", Green, Reset, config.Shell.Verify)

	fmt.Fprintf(w, "🖥  %sDisplay:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %smarkdown%s: %t\n", Green, Reset, config.Display.Markdown)
	fmt.Fprintf(w, "  • %sword_wrap%s: %d\n\n", Green, Reset, config.Display.WordWrap)

	fmt.Fprintf(w, "🗄  %sDetail cache:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sexpiration%s: %s\n", Green, Reset, config.Cache.Expiration)
	fmt.Fprintf(w, "  • %scleanup%s: %s\n\n", Green, Reset, config.Cache.Cleanup)

	if config.Shell.Mode == ModeMenu {
		fmt.Fprintf(w, "💡 To start in the full-screen browser by default, edit %s:\n", configPath)
		fmt.Fprintf(w, "   shell:\n     mode: tui\n")
	} else {
		fmt.Fprintf(w, "💡 To start in the numbered menu by default, edit %s:\n", configPath)
		fmt.Fprintf(w, "   shell:\n     mode: menu\n")
	}
}
