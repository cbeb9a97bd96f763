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
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	logger "github.com/pigeonhole-io/pigeonhole/internal/phlog"
)

// Initialize default pigeonhole config.
var cfg = NewConfig()

var cfgFile string

var pigeonholeDescription = `
pigeonhole is a demo client for the in-memory pigeonhole store. It
fetches items from the item provider, files them into the two-level
container keyed by their "FirstWord SecondWord" identifiers, and
prints the container in its deterministic display order.
`

// rootCmd represents the pigeonhole command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:               "pigeonhole [identifiers...] [flags]",
	Short:             "demo client of the pigeonhole in-memory item store",
	Long:              pigeonholeDescription,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := logger.InitCLI(cfg.Verbose, cfg.Console, cfg.LogDir); err != nil {
			return err
		}

		return runPigeonhole(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file path")
	flags.IntVar(&cfg.Count, "count", cfg.Count, "number of random items to fetch from the provider")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the provider's random picks, 0 uses the current time")
	flags.BoolVar(&cfg.Console, "console", cfg.Console, "log to the terminal instead of rotating files")
	flags.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	flags.StringVar(&cfg.LogDir, "logdir", cfg.LogDir, "directory for log files")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(versionCmd)
}

// loadConfig overlays the optional config file onto the flag values.
func loadConfig() error {
	if cfgFile == "" {
		return nil
	}

	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrap(err, "read config file")
	}

	return viper.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
}
