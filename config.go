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
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlstore.yaml"

type StoreConfig struct {
	DataFile     string `yaml:"data_file"`
	ShowProgress bool   `yaml:"show_progress"`
}

type CacheConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Expiration time.Duration `yaml:"expiration"`
	Cleanup    time.Duration `yaml:"cleanup"`
}

type BloomConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    uint `yaml:"size"`
	Hashes  uint `yaml:"hashes"`
}

type Config struct {
	Store StoreConfig `yaml:"store"`
	Cache CacheConfig `yaml:"cache"`
	Bloom BloomConfig `yaml:"bloom"`
}

var defaultConfig = Config{
	Store: StoreConfig{
		ShowProgress: true,
	},
	Cache: CacheConfig{
		Enabled:    true,
		Expiration: lookupCacheExpiration,
		Cleanup:    lookupCacheCleanup,
	},
	Bloom: BloomConfig{
		Enabled: true,
		Size:    1 << 16,
		Hashes:  4,
	},
}

// LoadConfig reads ~/.avlstore.yaml. Any problem reading the file yields the
// default configuration.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFile(configPath)
}

func defaults() *Config {
	config := defaultConfig
	return &config
}

// loadConfigFile decodes path over the defaults, so settings missing from
// the file keep their default values.
func loadConfigFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return defaults(), nil
	}

	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), fmt.Errorf("invalid config %s: %v", path, err)
	}

	return config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeConfigFile(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("%sFailed to get config path: %v%s\n", Error, err, Reset)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("Configuration file not found. Creating default configuration...\n\n")

		if err := writeConfigFile(configPath, &defaultConfig); err != nil {
			fmt.Printf("%sFailed to create default config file: %v%s\n", Error, err, Reset)
			return
		}
		fmt.Printf("%sCreated default configuration at: %s%s\n\n", Green, configPath, Reset)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("%sFailed to load configuration: %v%s\n", Error, err, Reset)
		return
	}

	fmt.Printf("avlstore configuration\n")
	fmt.Printf("══════════════════════\n\n")

	if configExists {
		fmt.Printf("Config file: %s\n\n", configPath)
	} else {
		fmt.Printf("Config file: %s (newly created)\n\n", configPath)
	}

	dataFile := config.Store.DataFile
	if dataFile == "" {
		dataFile = "(none, pass --file)"
	}

	fmt.Printf("%sStore:%s\n", Green, Reset)
	fmt.Printf("  • data_file: %s\n", dataFile)
	fmt.Printf("  • show_progress: %t\n\n", config.Store.ShowProgress)

	fmt.Printf("%sLookup cache:%s\n", Green, Reset)
	fmt.Printf("  • enabled: %t\n", config.Cache.Enabled)
	fmt.Printf("  • expiration: %s\n", config.Cache.Expiration)
	fmt.Printf("  • cleanup: %s\n\n", config.Cache.Cleanup)

	fmt.Printf("%sBloom filter:%s\n", Green, Reset)
	fmt.Printf("  • enabled: %t\n", config.Bloom.Enabled)
	fmt.Printf("  • size: %d bits\n", config.Bloom.Size)
	fmt.Printf("  • hashes: %d\n", config.Bloom.Hashes)
}
