/*
Copyright © 2020 Mars Galactic <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xoviat/capcode/lib"
	"github.com/xoviat/capcode/parts/capacitors"
	_ "github.com/xoviat/capcode/parts/capacitors/murata"
)

var (
	cfgFile string
	logger  = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "capcode",
	Short: "Decode ceramic capacitor part numbers.",
	Long: `capcode decodes manufacturer part numbers of multilayer ceramic
capacitors into size, height, dielectric, rated voltage, capacitance and
tolerance, and renders them as a description or a compact code.

	Example:
		- capcode decode GRM033R61A224ME90#
		- capcode bom parts.xlsx decoded.xlsx --column 2 --header
		- capcode sizes --manufacturer murata
		- capcode shell
	`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := lib.NewLogger(viper.GetString("log.level"), viper.GetString("log.format"))
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}

		logger = l
		if path := viper.ConfigFileUsed(); path != "" {
			logger.Debug("using config file", zap.String("path", path))
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() { logger.Sync() }()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.capcode.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "console", "log format: console or json")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".capcode")
	}

	viper.SetEnvPrefix("capcode")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			fmt.Fprintf(os.Stderr, "failed to read config: %s\n", err)
		}
	}
}

// dispatcher decodes with every registered manufacturer, logging through
// the command logger
func dispatcher() *capacitors.Dispatcher {
	return capacitors.NewDispatcher(logger, capacitors.Decoders()...)
}
