/*
 *     Copyright 2025 The Pigeonhole Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"errors"
	"path/filepath"
	"time"
)

// Config holds the options of the pigeonhole command.
type Config struct {
	// Count is the number of random items fetched from the provider
	// before the named identifiers are processed.
	Count int `mapstructure:"count" yaml:"count"`

	// Seed drives the provider's random picks; 0 uses the current
	// time so every run differs.
	Seed int64 `mapstructure:"seed" yaml:"seed"`

	// Console logs to the terminal instead of rotating files.
	Console bool `mapstructure:"console" yaml:"console"`

	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`

	// LogDir is the directory for log files when Console is off.
	LogDir string `mapstructure:"logDir" yaml:"logDir"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Count:   10,
		Console: true,
		LogDir:  filepath.Join(".", "logs"),
	}
}

func (c *Config) Validate() error {
	if c.Count < 0 {
		return errors.New("count must not be negative")
	}

	if !c.Console && c.LogDir == "" {
		return errors.New("logDir is required when console logging is disabled")
	}

	return nil
}

// ProviderSeed resolves the effective seed for this run.
func (c *Config) ProviderSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}

	return time.Now().UnixNano()
}
