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
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xoviat/capcode/parts"
	"github.com/xoviat/capcode/parts/capacitors/murata"
	"github.com/xoviat/capcode/parts/capacitors/samsung"
)

var manufacturer string

type vendorColumn struct {
	name string
	code func(parts.EIAInchCode) (string, bool)
}

var vendorColumns = []vendorColumn{
	{"murata", func(size parts.EIAInchCode) (string, bool) { return parts.VendorCode(murata.Sizes, size) }},
	{"samsung", func(size parts.EIAInchCode) (string, bool) { return parts.VendorCode(samsung.Sizes, size) }},
}

// sizesCmd represents the sizes command
var sizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "List EIA inch and IEC metric size codes.",
	Long: `List every EIA inch size code with its IEC metric equivalent and the
manufacturer dimension codes for it. Sizes marked with * have two metric codes
in use.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		columns := []vendorColumn{}
		for _, column := range vendorColumns {
			if manufacturer == "" || strings.EqualFold(manufacturer, column.name) {
				columns = append(columns, column)
			}
		}
		if len(columns) == 0 {
			return fmt.Errorf("unknown manufacturer: %s", manufacturer)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		heading := []string{"EIA", "IEC"}
		for _, column := range columns {
			heading = append(heading, column.name)
		}
		fmt.Fprintln(w, strings.Join(heading, "\t"))

		for _, size := range parts.AllEIAInchCodes() {
			metric := []string{}
			for _, m := range size.IECCandidates() {
				metric = append(metric, m.String())
			}

			row := []string{size.String(), strings.Join(metric, "/")}
			if size.Ambiguous() {
				row[1] += " *"
			}
			for _, column := range columns {
				code, ok := column.code(size)
				if !ok {
					code = "-"
				}
				row = append(row, code)
			}
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(sizesCmd)

	sizesCmd.Flags().StringVarP(&manufacturer, "manufacturer", "m", "", "only show this manufacturer: murata or samsung")
}
