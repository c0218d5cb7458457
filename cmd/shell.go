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

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xoviat/capcode/parts"
	"github.com/xoviat/capcode/parts/capacitors/murata"
)

func seriesSuggestions() []prompt.Suggest {
	suggestions := []prompt.Suggest{}
	for _, series := range murata.AllSeries() {
		suggestions = append(suggestions, prompt.Suggest{
			Text:        series.String(),
			Description: series.Manufacturer(),
		})
	}

	return suggestions
}

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Decode part numbers interactively.",
	Long: `Decode part numbers as they are typed. Series prefixes are suggested
while typing.

		- :compact or :verbose switches the output style
		- exit or quit leaves the shell
	`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := parts.ParseStyle(viper.GetString("style"))
		if err != nil {
			style = parts.Verbose
		}

		d := dispatcher()
		suggestions := seriesSuggestions()
		for {
			line := prompt.Input("> ", func(doc prompt.Document) []prompt.Suggest {
				return prompt.FilterHasPrefix(suggestions, doc.GetWordBeforeCursor(), false)
			})

			pn := strings.TrimSpace(line)
			switch pn {
			case "":
				continue
			case "exit", "quit":
				return nil
			case ":compact":
				style = parts.Compact
				continue
			case ":verbose":
				style = parts.Verbose
				continue
			}

			capacitor, err := d.Decode(pn)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), err)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), capacitor.Format(style))
		}
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
