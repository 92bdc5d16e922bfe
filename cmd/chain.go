/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getChainCmd returns the chain command.
func getChainCmd() *cobra.Command {
	var lang, format string

	chainCmd := &cobra.Command{
		Use:   "chain <identifier>",
		Short: "Show the evolution line of a species",
		Long: `Print the evolution line a species belongs to.

Species are listed breadth-first from the root of the evolution chain,
species of the same stage in ascending dex order.

Examples:
  gnpokedex chain ivysaur
  gnpokedex chain 133 -l de`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runChain(cmd, args[0], lang, format)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	languageFlag(chainCmd, &lang)
	outputFlag(chainCmd, &format)

	return chainCmd
}

func runChain(cmd *cobra.Command, identifier, lang, format string) error {
	d, err := loadDex(context.Background())
	if err != nil {
		return err
	}

	langID, err := parseLanguage(d, lang)
	if err != nil {
		return err
	}

	form, err := d.Resolve(identifier, "")
	if err != nil {
		return err
	}

	line, err := d.EvolutionLine(form.SpeciesID, langID)
	if err != nil {
		return err
	}

	return output(cmd.OutOrStdout(), line, format)
}
