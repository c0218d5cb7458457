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
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xoviat/capcode/parts"
	"github.com/xoviat/capcode/parts/capacitors"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <part number>...",
	Short: "Decode part numbers.",
	Long: `Decode one or more part numbers and print each one.

	Styles are:
		- verbose: CAP 220nF±20% 10V X5R 0201(0603 Metric) Height=0.3mm
		- compact: C0201_220NC10VX5R
		- debug:   every decoded field on its own line
	`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := viper.GetString("style")
		debug := name == "debug"

		style := parts.Verbose
		if !debug {
			var err error
			if style, err = parts.ParseStyle(name); err != nil {
				return err
			}
		}

		d := dispatcher()
		failed := 0
		for _, pn := range args {
			capacitor, err := d.Decode(pn)
			if err != nil {
				logger.Debug("decode failed", zap.String("part_number", pn), zap.Error(err))
				fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", err)
				failed++
				continue
			}

			if debug {
				printFields(cmd.OutOrStdout(), capacitor)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), capacitor.Format(style))
		}

		if failed > 0 {
			return fmt.Errorf("failed to decode %d of %d part numbers", failed, len(args))
		}
		return nil
	},
}

func printFields(w io.Writer, c capacitors.Capacitor) {
	fmt.Fprintf(w, "%s\n", c.PartNumber)
	fmt.Fprintf(w, "\tmanufacturer: %s\n", c.Manufacturer())
	fmt.Fprintf(w, "\tseries:       %s\n", c.Series)
	fmt.Fprintf(w, "\tsize:         %s / %s\n", c.Size.Long(), c.Size.IEC().Long())
	fmt.Fprintf(w, "\theight:       %s\n", c.MaxHeight)
	fmt.Fprintf(w, "\tdielectric:   %s\n", c.Dielectric)
	fmt.Fprintf(w, "\tvoltage:      %s\n", c.Voltage)
	fmt.Fprintf(w, "\tcapacitance:  %s\n", c.Capacitance)
	fmt.Fprintf(w, "\ttolerance:    %s (%s)\n", c.Tolerance, c.Tolerance.Class())
	fmt.Fprintf(w, "\tother:        %q\n", c.Other)
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringP("style", "s", "verbose", "output style: verbose, compact or debug")
	viper.BindPFlag("style", decodeCmd.Flags().Lookup("style"))
}
