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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xoviat/capcode/lib"
)

var metricsFile string

// bomCmd represents the bom command
var bomCmd = &cobra.Command{
	Use:   "bom <src> <dst>",
	Short: "Decode a column of part numbers in a bill of materials.",
	Long: `Decode the part numbers in one column of a bill of materials and write
one row per part number with the decoded fields, or the reason it failed.

	src and dst may each be a .csv or an .xlsx file. For .xlsx files the first
	sheet is read.
	`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := lib.Normalize(args[0])
		if err != nil {
			return fmt.Errorf("failed to normalize path: %s", args[0])
		}
		if !lib.Exists(src) {
			return fmt.Errorf("failed to stat file: %s", src)
		}

		column, header := viper.GetInt("bom.column"), viper.GetBool("bom.header")
		entries, err := lib.ReadPartNumbers(src, column, header)
		if err != nil {
			return fmt.Errorf("failed to read part numbers: %w", err)
		}
		logger.Info("read part numbers",
			zap.String("src", src),
			zap.Int("column", column),
			zap.Int("count", len(entries)),
		)

		var metrics *lib.DecodeMetrics
		if metricsFile != "" {
			metrics = lib.NewDecodeMetrics()
		}

		failed := lib.DecodeBOM(dispatcher(), entries, metrics)
		for _, entry := range entries {
			if entry.Err != nil {
				logger.Warn("decode failed", zap.Int("row", entry.Row), zap.Error(entry.Err))
			}
		}

		if err := lib.WriteBOM(args[1], entries); err != nil {
			return fmt.Errorf("failed to write bom: %w", err)
		}
		if metrics != nil {
			if err := metrics.WriteTextfile(metricsFile); err != nil {
				return fmt.Errorf("failed to write metrics: %w", err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "decoded %d of %d part numbers\n", len(entries)-failed, len(entries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bomCmd)

	bomCmd.Flags().IntP("column", "c", 0, "0-based column holding the part numbers")
	bomCmd.Flags().Bool("header", false, "skip the first row")
	bomCmd.Flags().StringVar(&metricsFile, "metrics", "", "write decode metrics to this prometheus textfile")

	viper.BindPFlag("bom.column", bomCmd.Flags().Lookup("column"))
	viper.BindPFlag("bom.header", bomCmd.Flags().Lookup("header"))
}
